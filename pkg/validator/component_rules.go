package validator

import (
	"fmt"
	"reflect"
	"slices"
)

// AtLeastOne requires at least one of the named fields to be set.
func AtLeastOne(names ...string) ComponentValidator {
	names = slices.Clone(names)
	return ComponentValidatorFunc(func(c FieldReader) error {
		for _, name := range names {
			value, err := c.Get(name)
			if err != nil {
				return err
			}
			if Truthy(value) {
				return nil
			}
		}
		return componentError(c,
			"At least one of the following fields is required "+quoteAll(names),
			"validation.at_least_one",
			map[string]any{"fields": names},
		)
	})
}

// OnlyOne requires exactly one of the named fields to be set.
func OnlyOne(names ...string) ComponentValidator {
	names = slices.Clone(names)
	return ComponentValidatorFunc(func(c FieldReader) error {
		set := 0
		for _, name := range names {
			value, err := c.Get(name)
			if err != nil {
				return err
			}
			if Truthy(value) {
				set++
			}
		}
		if set == 1 {
			return nil
		}
		return componentError(c,
			"Only one of the following fields is required "+quoteAll(names),
			"validation.only_one",
			map[string]any{"fields": names, "set": set},
		)
	})
}

// OnlyIf allows dependent to be set only while required holds requiredValue.
func OnlyIf(dependent, required string, requiredValue any) ComponentValidator {
	return ComponentValidatorFunc(func(c FieldReader) error {
		value, err := c.Get(dependent)
		if err != nil {
			return err
		}
		current, err := c.Get(required)
		if err != nil {
			return err
		}
		if IsAbsent(value) || reflect.DeepEqual(current, requiredValue) {
			return nil
		}
		return componentError(c,
			fmt.Sprintf("'%s' is only allowed when '%s' is '%s'", dependent, required, stringOf(requiredValue)),
			"validation.only_if",
			map[string]any{"field": dependent, "required": required, "value": requiredValue},
		)
	})
}

// Within requires every item of source to be present in target. Scalars are
// treated as single-item collections. Nothing is checked while either side is
// empty, so a selection against an absent option list passes.
func Within(source, target string) ComponentValidator {
	return ComponentValidatorFunc(func(c FieldReader) error {
		selected, err := c.Get(source)
		if err != nil {
			return err
		}
		offered, err := c.Get(target)
		if err != nil {
			return err
		}
		if !Truthy(selected) || !Truthy(offered) {
			return nil
		}

		known := make(map[any]struct{})
		for _, item := range items(offered) {
			key, err := fingerprint(item)
			if err != nil {
				return err
			}
			known[key] = struct{}{}
		}
		for _, item := range items(selected) {
			key, err := fingerprint(item)
			if err != nil {
				return err
			}
			if _, ok := known[key]; !ok {
				return componentError(c,
					fmt.Sprintf("'%s' has items that aren't present in the '%s'", source, target),
					"validation.within",
					map[string]any{"field": source, "target": target},
				)
			}
		}
		return nil
	})
}

// Ranging bounds a numeric source, or the length of a textual one, by the
// values of two other fields. Only the bounds that are set are enforced.
func Ranging(source, minField, maxField string) ComponentValidator {
	return ComponentValidatorFunc(func(c FieldReader) error {
		value, err := c.Get(source)
		if err != nil {
			return err
		}
		lower, err := c.Get(minField)
		if err != nil {
			return err
		}
		upper, err := c.Get(maxField)
		if err != nil {
			return err
		}
		if IsAbsent(value) {
			return nil
		}

		noun, got := "value", stringOf(value)
		var current float64
		switch {
		case isNumber(value):
			current, _ = toFloat(value)
		default:
			n, ok := lengthOf(value)
			if !ok {
				return nil
			}
			current, noun, got = float64(n), "length", fmt.Sprint(n)
		}

		if bound, ok := toFloat(lower); ok && !IsAbsent(lower) && current < bound {
			return componentError(c,
				fmt.Sprintf("'%s' %s must be greater than or equal to '%s', got '%s'", source, noun, stringOf(lower), got),
				"validation.min",
				map[string]any{"field": source, "min": lower, "value": value},
			)
		}
		if bound, ok := toFloat(upper); ok && !IsAbsent(upper) && current > bound {
			return componentError(c,
				fmt.Sprintf("'%s' %s must be less than or equal to '%s', got '%s'", source, noun, stringOf(upper), got),
				"validation.max",
				map[string]any{"field": source, "max": upper, "value": value},
			)
		}
		return nil
	})
}

// DecimalAllowed forbids non-integral numbers in targets unless flagField is set.
func DecimalAllowed(flagField string, targets ...string) ComponentValidator {
	targets = slices.Clone(targets)
	return ComponentValidatorFunc(func(c FieldReader) error {
		flag, err := c.Get(flagField)
		if err != nil {
			return err
		}
		if Truthy(flag) {
			return nil
		}
		for _, name := range targets {
			value, err := c.Get(name)
			if err != nil {
				return err
			}
			if IsAbsent(value) {
				continue
			}
			if f, ok := toFloat(value); ok && !isIntegral(f) {
				return componentError(c,
					fmt.Sprintf("'%s' decimal values are not allowed, got '%s'", name, stringOf(value)),
					"validation.decimal",
					map[string]any{"field": name, "value": value},
				)
			}
		}
		return nil
	})
}
