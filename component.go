package blockkit

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/imryche/blockkit-sub000/pkg/validator"
)

// Payload is the plain, order-preserving output of Build. It marshals to a
// JSON object whose keys follow field declaration order.
type Payload = orderedmap.OrderedMap[string, any]

// NewPayload returns an empty Payload.
func NewPayload() *Payload {
	return orderedmap.New[string, any]()
}

// Buildable is implemented by every component and composition object.
type Buildable interface {
	Build() (*Payload, error)
}

// fieldKind selects the normalization applied to a field value on build.
type fieldKind int

const (
	kindPlain fieldKind = iota
	kindDate
	kindTime
	kindDatetime
	kindTimezone
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Field is a named, validated slot holding a piece of component state.
type Field struct {
	Name       string
	Value      any
	Validators []validator.FieldValidator

	// Stringify renders numeric values as strings in the built output.
	Stringify bool

	kind fieldKind
}

// Validate runs the field's validators in order and returns the first failure.
func (f *Field) Validate() error {
	return validator.Apply(f.Name, f.Value, f.Validators...)
}

func (f *Field) normalize() (any, bool) {
	value := f.Value
	switch f.kind {
	case kindDate:
		if t, ok := value.(time.Time); ok {
			return t.Format(dateLayout), true
		}
	case kindTime:
		if t, ok := value.(time.Time); ok {
			return t.Format(timeLayout), true
		}
	case kindDatetime:
		if t, ok := value.(time.Time); ok {
			return t.Unix(), true
		}
	case kindTimezone:
		if loc, ok := value.(*time.Location); ok {
			return loc.String(), true
		}
	}
	if f.Stringify {
		if s, ok := stringify(value); ok {
			return s, false
		}
	}
	return value, false
}

// component is embedded by every concrete type. It owns the ordered field
// table and the cross-field validators.
type component struct {
	self       validator.FieldReader
	fields     []*Field
	index      map[string]int
	validators []validator.ComponentValidator
}

// init binds the component to its outer type so component errors name it.
func (c *component) init(self validator.FieldReader) {
	c.self = self
	c.index = make(map[string]int)
}

// field declares a field. Declaring the same name twice is a programming
// error and panics.
func (c *component) field(name string, validators ...validator.FieldValidator) *Field {
	if _, ok := c.index[name]; ok {
		panic(fmt.Sprintf("blockkit: field %q declared twice", name))
	}
	f := &Field{Name: name, Validators: validators}
	c.index[name] = len(c.fields)
	c.fields = append(c.fields, f)
	return f
}

// fixed declares a field holding a constant, such as the "type" discriminant.
func (c *component) fixed(name string, value any) {
	c.field(name, validator.Required()).Value = value
}

func (c *component) validate(validators ...validator.ComponentValidator) {
	c.validators = append(c.validators, validators...)
}

func (c *component) lookup(name string) *Field {
	i, ok := c.index[name]
	if !ok {
		panic(fmt.Sprintf("blockkit: field %q is not declared", name))
	}
	return c.fields[i]
}

// set assigns a declared field. Typed nil pointers are stored as nil.
func (c *component) set(name string, value any) {
	if isNilPointer(value) {
		value = nil
	}
	c.lookup(name).Value = value
}

// appendTo adds items to a list field, keeping what is already there.
func (c *component) appendTo(name string, items ...any) {
	f := c.lookup(name)
	current, _ := f.Value.([]any)
	f.Value = append(current, items...)
}

func (c *component) value(name string) any {
	return c.lookup(name).Value
}

// Get returns the current value of a declared field. Declared fields holding
// nothing return (nil, nil); undeclared names return ErrUnknownField.
func (c *component) Get(name string) (any, error) {
	i, ok := c.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", validator.ErrUnknownField, name)
	}
	return c.fields[i].Value, nil
}

// Validate checks every field in declaration order, then the component
// rules in attachment order. The first violation is returned.
func (c *component) Validate() error {
	for _, f := range c.fields {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return validator.ApplyComponent(c.self, c.validators...)
}

// Build validates the component and lowers it into a Payload. Unset fields
// and empty lists are omitted. Date, time, datetime and timezone values in
// the whole tree are rewritten in their normalized form once every nested
// component has built.
func (c *component) Build() (*Payload, error) {
	rewrites := make(map[*Field]any)
	out, err := c.build(rewrites)
	if err != nil {
		return nil, err
	}
	for f, value := range rewrites {
		f.Value = value
	}
	return out, nil
}

// builder is implemented by every component of this package. build lowers the
// component and records pending normalizations in rewrites.
type builder interface {
	build(rewrites map[*Field]any) (*Payload, error)
}

func (c *component) build(rewrites map[*Field]any) (*Payload, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := NewPayload()
	for _, f := range c.fields {
		if validator.IsAbsent(f.Value) {
			continue
		}
		value, rewrite := f.normalize()
		if rewrite {
			rewrites[f] = value
		}
		lowered, err := lower(f.Name, value, rewrites)
		if err != nil {
			return nil, err
		}
		out.Set(f.Name, lowered)
	}
	return out, nil
}

// Fingerprint returns the JSON form of the built component. Two components
// with the same fingerprint are equal.
func (c *component) Fingerprint() (string, error) {
	data, err := marshal(c.self)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Equal reports whether both components build to the same output.
func (c *component) Equal(other Buildable) bool {
	b, ok := c.self.(Buildable)
	if !ok {
		return false
	}
	return Equal(b, other)
}

// Hash returns the xxhash64 of the built output.
func (c *component) Hash() (uint64, error) {
	data, err := marshal(c.self)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}

// Equal reports whether a and b build successfully to identical output.
func Equal(a, b Buildable) bool {
	if a == nil || b == nil {
		return a == b
	}
	left, err := marshal(a)
	if err != nil {
		return false
	}
	right, err := marshal(b)
	if err != nil {
		return false
	}
	return string(left) == string(right)
}

func marshal(v any) ([]byte, error) {
	b, ok := v.(Buildable)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotBuildable, v)
	}
	payload, err := b.Build()
	if err != nil {
		return nil, err
	}
	return json.Marshal(payload)
}

// lower replaces buildable values with their output and lists with plain
// slices whose buildable items are lowered the same way.
func lower(field string, value any, rewrites map[*Field]any) (any, error) {
	if b, ok := value.(Buildable); ok {
		return buildNested(field, b, rewrites)
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return value, nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		item := rv.Index(i).Interface()
		if b, ok := item.(Buildable); ok {
			built, err := buildNested(field, b, rewrites)
			if err != nil {
				return nil, err
			}
			out[i] = built
			continue
		}
		out[i] = item
	}
	return out, nil
}

func buildNested(field string, b Buildable, rewrites map[*Field]any) (*Payload, error) {
	if isNilPointer(b) {
		return nil, validator.Required().Validate(field, b)
	}
	if nested, ok := b.(builder); ok {
		return nested.build(rewrites)
	}
	return b.Build()
}

func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case fmt.Stringer:
		return v.String(), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	}
	return "", false
}

func isNilPointer(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// number coerces numeric strings to float64 so range rules compare numbers.
func number(value any) any {
	switch v := value.(type) {
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
	}
	return value
}
