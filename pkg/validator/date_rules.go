package validator

import (
	"fmt"
	"time"
)

const (
	isoDateLayout   = "2006-01-02"
	timeOfDayLayout = "15:04"

	// Unix range of years 1 through 9999.
	minUnixTimestamp = -62135596800
	maxUnixTimestamp = 253402300799
)

// IsoDate accepts a time.Time or a YYYY-MM-DD string.
func IsoDate() FieldValidator {
	return FieldValidatorFunc(func(field string, value any) error {
		if IsAbsent(value) {
			return nil
		}
		switch v := value.(type) {
		case time.Time:
			return nil
		case string:
			if _, err := time.Parse(isoDateLayout, v); err == nil {
				return nil
			}
		}
		return fieldError(field,
			fmt.Sprintf("Expected ISO date format 'YYYY-MM-DD', got '%s'", stringOf(value)),
			"validation.iso_date",
			map[string]any{"value": value},
		)
	})
}

// UnixTimestamp accepts a time.Time or an integral epoch within the
// representable calendar range.
func UnixTimestamp() FieldValidator {
	return FieldValidatorFunc(func(field string, value any) error {
		if IsAbsent(value) {
			return nil
		}
		if _, ok := value.(time.Time); ok {
			return nil
		}
		if isNumber(value) {
			f, _ := toFloat(value)
			if isIntegral(f) && f >= minUnixTimestamp && f <= maxUnixTimestamp {
				return nil
			}
		}
		return fieldError(field,
			fmt.Sprintf("Expected Unix timestamp, got '%s'", stringOf(value)),
			"validation.unix_timestamp",
			map[string]any{"value": value},
		)
	})
}

// TimeOfDay accepts a time.Time or an HH:MM string.
func TimeOfDay() FieldValidator {
	return FieldValidatorFunc(func(field string, value any) error {
		if IsAbsent(value) {
			return nil
		}
		switch v := value.(type) {
		case time.Time:
			return nil
		case string:
			if _, err := time.Parse(timeOfDayLayout, v); err == nil {
				return nil
			}
		}
		return fieldError(field,
			fmt.Sprintf("Expected time format 'HH:MM', got '%s'", stringOf(value)),
			"validation.time_of_day",
			map[string]any{"value": value},
		)
	})
}
