package blockkit

import (
	"errors"

	"github.com/imryche/blockkit-sub000/pkg/validator"
)

var (
	ErrUnknownType   = errors.New("unknown component type")
	ErrDuplicateType = errors.New("component type already registered")
	ErrNotBuildable  = errors.New("value is neither buildable nor a built payload")
)

// Re-exported so callers can match validation failures without importing
// the validator package.
var (
	ErrFieldValidation     = validator.ErrFieldValidation
	ErrComponentValidation = validator.ErrComponentValidation
	ErrUnknownField        = validator.ErrUnknownField
)

type (
	FieldValidationError     = validator.FieldValidationError
	ComponentValidationError = validator.ComponentValidationError
)
