package validator

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrFieldValidation matches every FieldValidationError via errors.Is.
	ErrFieldValidation = errors.New("field validation failed")

	// ErrComponentValidation matches every ComponentValidationError via errors.Is.
	ErrComponentValidation = errors.New("component validation failed")

	// ErrUnknownField is returned when a rule reads a field the component never
	// declared. It signals a programming error, not invalid input.
	ErrUnknownField = errors.New("unknown field")
)

// FieldValidationError describes a single field that failed a rule.
type FieldValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("Field '%s': %s", e.Field, e.Message)
}

func (e *FieldValidationError) Is(target error) bool {
	return target == ErrFieldValidation
}

// ComponentValidationError describes a cross-field rule violated by a component.
type ComponentValidationError struct {
	Component         any
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e *ComponentValidationError) Error() string {
	return fmt.Sprintf("Component '%s': %s", componentName(e.Component), e.Message)
}

func (e *ComponentValidationError) Is(target error) bool {
	return target == ErrComponentValidation
}

func fieldError(field, message, key string, values map[string]any) error {
	if values == nil {
		values = map[string]any{}
	}
	values["field"] = field
	return &FieldValidationError{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

func componentError(c FieldReader, message, key string, values map[string]any) error {
	return &ComponentValidationError{
		Component:         c,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}

func componentName(c any) string {
	if c == nil {
		return "<nil>"
	}
	t := reflect.TypeOf(c)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

// typeName renders the dynamic type of a value the way error messages show it.
func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "nil"
	}
	return displayType(reflect.TypeOf(value))
}

func displayType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

func stringOf(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if f, ok := value.(float64); ok {
		return formatNumber(f)
	}
	return fmt.Sprint(value)
}
