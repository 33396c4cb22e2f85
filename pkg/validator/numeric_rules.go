package validator

import "fmt"

const (
	// DefaultMinInt and DefaultMaxInt bound Ints when callers have no tighter
	// range in mind.
	DefaultMinInt = 0
	DefaultMaxInt = 999999
)

// Ints checks that a numeric value falls within [min, max].
func Ints(min, max int) FieldValidator {
	return FieldValidatorFunc(func(field string, value any) error {
		if IsAbsent(value) {
			return nil
		}
		if !isNumber(value) {
			return fieldError(field,
				fmt.Sprintf("Expected a number, got '%s'", typeName(value)),
				"validation.numeric",
				map[string]any{"type": typeName(value)},
			)
		}
		f, _ := toFloat(value)
		if f < float64(min) || f > float64(max) {
			return fieldError(field,
				fmt.Sprintf("Value must be between %d and %d (got %s)", min, max, formatNumber(f)),
				"validation.between",
				map[string]any{"min": min, "max": max, "value": value},
			)
		}
		return nil
	})
}

// MinInt is Ints with the default upper bound.
func MinInt(min int) FieldValidator {
	return Ints(min, DefaultMaxInt)
}

// Numeric checks that the value is a number of any range. Strings are
// reported by their content.
func Numeric() FieldValidator {
	return FieldValidatorFunc(func(field string, value any) error {
		if IsAbsent(value) || isNumber(value) {
			return nil
		}
		got := typeName(value)
		if s, ok := value.(string); ok {
			got = s
		}
		return fieldError(field,
			fmt.Sprintf("Expected a number, got '%s'", got),
			"validation.numeric",
			map[string]any{"type": typeName(value)},
		)
	})
}
