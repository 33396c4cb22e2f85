// Package validator provides the stateless rule values used to validate
// block kit components.
//
// Two families of rules exist. A FieldValidator checks a single field value
// and reports a *FieldValidationError naming the field. A ComponentValidator
// reads several fields of an assembled component through the FieldReader
// interface and reports a *ComponentValidationError carrying the component.
// Every rule treats nil as "not provided" and skips it, except Required.
//
// # Architecture
//
// Each source file groups a family of rules:
//   - type_rules.go      – Required, Typed
//   - string_rules.go    – Length, MaxLength, HexColor, Plain
//   - choice_rules.go    – Strings
//   - numeric_rules.go   – Ints, MinInt
//   - date_rules.go      – IsoDate, UnixTimestamp, TimeOfDay
//   - component_rules.go – AtLeastOne, OnlyOne, OnlyIf, Within, Ranging, DecimalAllowed
//   - style_rules.go     – StyledCorrectly
//
// Rules hold no mutable state and are safe to share between components and
// goroutines.
//
// # Usage
//
//	err := validator.Apply("title", title,
//	    validator.Required(),
//	    validator.Plain(),
//	    validator.Length(1, 100),
//	)
//
// Apply and ApplyComponent stop at the first failing rule; validation never
// aggregates multiple errors.
//
// # Error Handling
//
// Both error types carry a TranslationKey and TranslationValues for callers
// that localize messages. Use errors.Is with ErrFieldValidation or
// ErrComponentValidation to classify failures, and errors.As to inspect them:
//
//	var fieldErr *validator.FieldValidationError
//	if errors.As(err, &fieldErr) {
//	    fmt.Println(fieldErr.Field, fieldErr.Message)
//	}
//
// A rule reading a field the component never declared returns an error
// wrapping ErrUnknownField, which is neither of the validation errors.
package validator
