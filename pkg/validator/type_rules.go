package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// Required fails when the value was never provided.
func Required() FieldValidator {
	return FieldValidatorFunc(func(field string, value any) error {
		if value == nil {
			return fieldError(field, "Value is required", "validation.required", nil)
		}
		rv := reflect.ValueOf(value)
		if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
			return fieldError(field, "Value is required", "validation.required", nil)
		}
		return nil
	})
}

// TypeOf returns the reflect.Type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Typed checks that the value, or each element of a collection, is of one of
// the given types. Interface types match any implementation.
func Typed(types ...reflect.Type) FieldValidator {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = displayType(t)
	}
	return FieldValidatorFunc(func(field string, value any) error {
		if IsAbsent(value) {
			return nil
		}
		for _, item := range items(value) {
			if matchesType(item, types) {
				continue
			}
			noun := "type"
			if len(names) > 1 {
				noun = "types"
			}
			return fieldError(field,
				fmt.Sprintf("Expected %s %s, got '%s'", noun, quoteAll(names), typeName(item)),
				"validation.type",
				map[string]any{"expected": strings.Join(names, ", "), "got": typeName(item)},
			)
		}
		return nil
	})
}

func matchesType(value any, types []reflect.Type) bool {
	if IsAbsent(value) {
		return false
	}
	vt := reflect.TypeOf(value)
	for _, t := range types {
		if vt == t {
			return true
		}
		if t.Kind() == reflect.Interface && vt.Implements(t) {
			return true
		}
	}
	return false
}
