package validator

import (
	"fmt"
	"reflect"
	"slices"
)

// Strings restricts a value, or every member of a collection, to an
// allow-list. For collections all unexpected members are reported at once.
func Strings(values ...string) FieldValidator {
	allowed := slices.Clone(values)
	return FieldValidatorFunc(func(field string, value any) error {
		if IsAbsent(value) {
			return nil
		}

		if !isCollection(value) {
			s, ok := asString(value)
			if ok && slices.Contains(allowed, s) {
				return nil
			}
			return fieldError(field,
				fmt.Sprintf("Expected values %s, got '%s'", quoteAll(allowed), stringOf(value)),
				"validation.in_list",
				map[string]any{"allowed_values": allowed, "value": value},
			)
		}

		var unexpected []string
		for _, item := range items(value) {
			s, ok := asString(item)
			if !ok || !slices.Contains(allowed, s) {
				unexpected = append(unexpected, stringOf(item))
			}
		}
		if len(unexpected) == 0 {
			return nil
		}
		return fieldError(field,
			fmt.Sprintf("Expected values %s, got unexpected %s", quoteAll(allowed), quoteAll(unexpected)),
			"validation.in_list",
			map[string]any{"allowed_values": allowed, "unexpected": unexpected},
		)
	})
}

// asString accepts string and named string types such as enum constants.
func asString(value any) (string, bool) {
	if value == nil {
		return "", false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}
