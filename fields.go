package blockkit

import (
	"reflect"

	"github.com/imryche/blockkit-sub000/pkg/validator"
)

// Registration helpers for fields that recur across the catalog. Each
// concrete type still lists its fields explicitly, in output order.

func (c *component) actionIDField() {
	c.field("action_id", validator.Length(1, 255))
}

func (c *component) blockIDField() {
	c.field("block_id", validator.Length(1, 255))
}

func (c *component) confirmField() {
	c.field("confirm", validator.Typed(validator.TypeOf[*Confirm]()))
}

func (c *component) focusOnLoadField() {
	c.field("focus_on_load")
}

func (c *component) placeholderField() {
	c.plainTextField("placeholder", 1, 150, false)
}

func (c *component) dispatchActionConfigField() {
	c.field("dispatch_action_config", validator.Typed(validator.TypeOf[*DispatchActionConfig]()))
}

func (c *component) maxSelectedItemsField() {
	c.field("max_selected_items", validator.MinInt(1))
}

// listField declares a list field whose items must be one of types.
func (c *component) listField(name string, required bool, min, max int, types ...reflect.Type) {
	var validators []validator.FieldValidator
	if required {
		validators = append(validators, validator.Required())
	}
	validators = append(validators, validator.Typed(types...), validator.Length(min, max))
	c.field(name, validators...)
}

// list converts typed variadic arguments into the []any form stored in fields.
func list[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func typesOf(values ...any) []reflect.Type {
	out := make([]reflect.Type, len(values))
	for i, v := range values {
		out[i] = reflect.TypeOf(v)
	}
	return out
}
