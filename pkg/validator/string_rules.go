package validator

import (
	"fmt"
	"regexp"
)

const (
	// DefaultMinLength and DefaultMaxLength bound Length when callers have no
	// tighter range in mind.
	DefaultMinLength = 0
	DefaultMaxLength = 999999

	plainTextType = "plain_text"
)

var hexColorPattern = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// TextTyper is implemented by text objects exposing their variant discriminant.
type TextTyper interface {
	TextType() string
}

// Length checks the length of strings (in runes), text objects (via Len) and
// collections (element count). An empty collection counts as absent.
func Length(min, max int) FieldValidator {
	return FieldValidatorFunc(func(field string, value any) error {
		if IsAbsent(value) {
			return nil
		}
		n, ok := lengthOf(value)
		if !ok {
			return fieldError(field,
				fmt.Sprintf("Length can't be measured for type '%s'", typeName(value)),
				"validation.length_unsupported",
				map[string]any{"type": typeName(value)},
			)
		}
		if n < min || n > max {
			return fieldError(field,
				fmt.Sprintf("Length must be between %d and %d (got %d)", min, max, n),
				"validation.length",
				map[string]any{"min": min, "max": max, "length": n},
			)
		}
		return nil
	})
}

// MaxLength is Length with the default lower bound.
func MaxLength(max int) FieldValidator {
	return Length(DefaultMinLength, max)
}

// HexColor accepts #RRGGBB or #RGB, with or without the leading hash.
func HexColor() FieldValidator {
	return FieldValidatorFunc(func(field string, value any) error {
		if IsAbsent(value) {
			return nil
		}
		s, ok := value.(string)
		if !ok || !hexColorPattern.MatchString(s) {
			return fieldError(field,
				fmt.Sprintf("Invalid HEX color, got %s", stringOf(value)),
				"validation.hex_color",
				map[string]any{"value": value},
			)
		}
		return nil
	})
}

// Plain restricts a text field to the plain_text variant.
func Plain() FieldValidator {
	return FieldValidatorFunc(func(field string, value any) error {
		if IsAbsent(value) {
			return nil
		}
		if t, ok := value.(TextTyper); ok && t.TextType() == plainTextType {
			return nil
		}
		return fieldError(field, "Only plain_text is allowed", "validation.plain",
			map[string]any{"type": typeName(value)})
	})
}
