package validator

import "fmt"

const styleField = "style"

var extendedStyles = []string{"highlight", "client_highlight", "unlink"}

// StyledCorrectly checks the nested "style" object of a rich text element.
// Mentions (extended) may not use "code"; every other element may not use
// the extended highlight/unlink flags.
func StyledCorrectly(extended bool) ComponentValidator {
	return ComponentValidatorFunc(func(c FieldReader) error {
		value, err := c.Get(styleField)
		if err != nil {
			return err
		}
		if IsAbsent(value) {
			return nil
		}
		style, ok := value.(FieldReader)
		if !ok {
			return componentError(c,
				fmt.Sprintf("'%s' must be a style object, got '%s'", styleField, typeName(value)),
				"validation.style_type",
				map[string]any{"type": typeName(value)},
			)
		}

		if extended {
			code, err := style.Get("code")
			if err != nil {
				return err
			}
			if Truthy(code) {
				return componentError(c, "'code' style is not allowed", "validation.style_code", nil)
			}
			return nil
		}

		for _, name := range extendedStyles {
			flag, err := style.Get(name)
			if err != nil {
				return err
			}
			if Truthy(flag) {
				return componentError(c,
					quoteAll(extendedStyles)+" styles are not allowed",
					"validation.style_extended",
					map[string]any{"styles": extendedStyles},
				)
			}
		}
		return nil
	})
}
