package validator

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FieldValidator checks a single field value.
type FieldValidator interface {
	Validate(field string, value any) error
}

// FieldValidatorFunc adapts a plain function to FieldValidator.
type FieldValidatorFunc func(field string, value any) error

func (f FieldValidatorFunc) Validate(field string, value any) error {
	return f(field, value)
}

// FieldReader gives cross-field rules read access to a component's current
// field values. Get must return an error wrapping ErrUnknownField for names
// that were never declared, and (nil, nil) for declared fields holding nil.
type FieldReader interface {
	Get(name string) (any, error)
}

// ComponentValidator checks invariants spanning several fields of a component.
type ComponentValidator interface {
	Validate(c FieldReader) error
}

// ComponentValidatorFunc adapts a plain function to ComponentValidator.
type ComponentValidatorFunc func(c FieldReader) error

func (f ComponentValidatorFunc) Validate(c FieldReader) error {
	return f(c)
}

// Lengther is implemented by values with a natural length, such as text objects.
type Lengther interface {
	Len() int
}

// Fingerprinter is implemented by values that compare by their serialized form.
type Fingerprinter interface {
	Fingerprint() (string, error)
}

// Apply runs validators in order and returns the first failure.
func Apply(field string, value any, validators ...FieldValidator) error {
	for _, v := range validators {
		if v == nil {
			continue
		}
		if err := v.Validate(field, value); err != nil {
			return err
		}
	}
	return nil
}

// ApplyComponent runs component validators in order and returns the first failure.
func ApplyComponent(c FieldReader, validators ...ComponentValidator) error {
	for _, v := range validators {
		if v == nil {
			continue
		}
		if err := v.Validate(c); err != nil {
			return err
		}
	}
	return nil
}

// IsAbsent reports whether value counts as "not provided": nil, a nil pointer
// or interface, or an empty slice, array or map.
func IsAbsent(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Array:
		return rv.Len() == 0
	}
	return false
}

// Truthy mirrors the loose notion of "set" used by cross-field rules: nil,
// false, zero numbers, empty strings and empty collections are all unset.
func Truthy(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

func isCollection(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// items returns the elements of a slice or array, or the value itself as a
// single-element list.
func items(value any) []any {
	if !isCollection(value) {
		return []any{value}
	}
	if list, ok := value.([]any); ok {
		return list
	}
	rv := reflect.ValueOf(value)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func lengthOf(value any) (int, bool) {
	if l, ok := value.(Lengther); ok {
		return l.Len(), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

// toFloat converts numeric kinds and numeric strings into float64.
func toFloat(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func isNumber(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isIntegral(f float64) bool {
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}

// fingerprint gives a comparable key for membership checks: the serialized
// form for components, the plain value for scalars.
func fingerprint(value any) (any, error) {
	if fp, ok := value.(Fingerprinter); ok {
		return fp.Fingerprint()
	}
	rv := reflect.ValueOf(value)
	if rv.IsValid() && rv.Comparable() {
		return value, nil
	}
	return reflect.TypeOf(value).String() + ":" + strconv.Quote(stringOf(value)), nil
}
