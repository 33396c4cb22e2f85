package codegen

import (
	"encoding/json"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"reflect"
	"strconv"
	"strings"

	"github.com/imryche/blockkit-sub000"
)

// ErrCodeGeneration is returned when a payload cannot be turned into Go source.
var ErrCodeGeneration = errors.New("code generation failed")

const (
	// ImportPath is the import path emitted by GenerateFile.
	ImportPath = "github.com/imryche/blockkit-sub000"

	defaultQualifier = "blockkit"
	defaultVarName   = "Payload"
)

// Typeless composition objects are identified by the key that holds them.
var contextTypes = map[string]string{
	"confirm":                       "Confirm",
	"filter":                        "ConversationFilter",
	"dispatch_action_config":        "DispatchActionConfig",
	"options":                       "Option",
	"option_groups":                 "OptionGroup",
	"initial_option":                "Option",
	"initial_options":               "Option",
	"trigger":                       "Trigger",
	"workflow":                      "Workflow",
	"customizable_input_parameters": "InputParameter",
	"slack_file":                    "SlackFile",
	"style":                         "RichStyle",
}

// Keys whose "image" children are image elements rather than image blocks.
var elementContexts = map[string]bool{
	"accessory": true,
	"elements":  true,
}

// Generator turns decoded payloads into constructor chains.
type Generator struct {
	registry  *blockkit.Registry
	qualifier string
}

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry resolves types against r instead of the default registry.
func WithRegistry(r *blockkit.Registry) Option {
	return func(g *Generator) {
		g.registry = r
	}
}

// WithQualifier sets the package qualifier used in generated code.
func WithQualifier(q string) Option {
	return func(g *Generator) {
		g.qualifier = q
	}
}

// New returns a Generator backed by the default registry.
func New(opts ...Option) *Generator {
	g := &Generator{
		registry:  blockkit.DefaultRegistry(),
		qualifier: defaultQualifier,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate renders p as a single-line Go expression.
func Generate(p *blockkit.Payload) (string, error) {
	return New().Generate(p)
}

// GenerateFile renders p as a gofmt'ed Go file declaring varName in package pkg.
func GenerateFile(p *blockkit.Payload, pkg, varName string) ([]byte, error) {
	return New().GenerateFile(p, pkg, varName)
}

// Generate renders p as a single-line Go expression.
func (g *Generator) Generate(p *blockkit.Payload) (string, error) {
	return g.render(p, renderer{})
}

// GenerateFile renders p as a complete Go file. Chained calls and list
// arguments are broken over several lines.
func (g *Generator) GenerateFile(p *blockkit.Payload, pkg, varName string) ([]byte, error) {
	if pkg == "" {
		pkg = "main"
	}
	if varName == "" {
		varName = defaultVarName
	}
	if !token.IsIdentifier(pkg) || !token.IsIdentifier(varName) {
		return nil, fmt.Errorf("%w: invalid package %q or variable %q", ErrCodeGeneration, pkg, varName)
	}

	expr, err := g.render(p, renderer{multiline: true})
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	if g.qualifier == defaultQualifier {
		fmt.Fprintf(&b, "import %q\n\n", ImportPath)
	} else {
		fmt.Fprintf(&b, "import %s %q\n\n", g.qualifier, ImportPath)
	}
	fmt.Fprintf(&b, "var %s = %s\n", varName, expr)

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, errors.Join(ErrCodeGeneration, err)
	}
	return src, nil
}

type renderer struct {
	multiline bool
}

func (r renderer) chain(head string, calls []string) string {
	sep := "."
	if r.multiline {
		sep = ".\n"
	}
	var b strings.Builder
	b.WriteString(head)
	for _, call := range calls {
		b.WriteString(sep)
		b.WriteString(call)
	}
	return b.String()
}

func (r renderer) call(name string, args []string) string {
	if !r.multiline || len(args) < 2 {
		return name + "(" + strings.Join(args, ", ") + ")"
	}
	return name + "(\n" + strings.Join(args, ",\n") + ",\n)"
}

func (g *Generator) render(p *blockkit.Payload, r renderer) (string, error) {
	if p == nil {
		return "", fmt.Errorf("%w: empty payload", ErrCodeGeneration)
	}
	return g.object(p, "", r)
}

// object renders one payload object. key is the field holding it, empty at
// the root.
func (g *Generator) object(p *blockkit.Payload, key string, r renderer) (string, error) {
	typ, _ := stringValue(p, "type")
	if typ == blockkit.PlainTextType || typ == blockkit.MarkdownType {
		return g.text(p, typ, r)
	}

	entry, err := g.resolve(p, typ, key)
	if err != nil {
		return "", err
	}
	instance := entry.New()

	var calls []string
	for pair := p.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == "type" {
			continue
		}
		call, err := g.setter(instance, entry.Name, pair.Key, pair.Value, r)
		if err != nil {
			return "", err
		}
		if call != "" {
			calls = append(calls, call)
		}
	}
	return r.chain(g.qualify(entry.Constructor)+"()", calls), nil
}

func (g *Generator) resolve(p *blockkit.Payload, typ, key string) (blockkit.Entry, error) {
	var (
		entry blockkit.Entry
		err   error
	)
	switch {
	case typ == "image" && elementContexts[key]:
		entry, err = g.registry.LookupName("ImageEl")
	case typ != "":
		entry, err = g.registry.Lookup(typ)
	case key == "" && (hasKey(p, "blocks") || hasKey(p, "text")):
		entry, err = g.registry.LookupName("Message")
	case contextTypes[key] != "":
		name := contextTypes[key]
		if name == "Option" && hasKey(p, "label") {
			name = "OptionGroup"
		}
		entry, err = g.registry.LookupName(name)
	default:
		return blockkit.Entry{}, fmt.Errorf("%w: can't generate component of type %q", ErrCodeGeneration, typ)
	}
	if err != nil {
		return blockkit.Entry{}, errors.Join(ErrCodeGeneration, err)
	}
	return entry, nil
}

// text renders a text object through PlainText or MarkdownText.
func (g *Generator) text(p *blockkit.Payload, typ string, r renderer) (string, error) {
	ctor := "PlainText"
	if typ == blockkit.MarkdownType {
		ctor = "MarkdownText"
	}
	content, _ := stringValue(p, "text")
	head := g.qualify(ctor) + "(" + strconv.Quote(content) + ")"

	instance := blockkit.NewText()
	var calls []string
	for pair := p.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == "type" || pair.Key == "text" {
			continue
		}
		call, err := g.setter(instance, "Text", pair.Key, pair.Value, r)
		if err != nil {
			return "", err
		}
		if call != "" {
			calls = append(calls, call)
		}
	}
	return r.chain(head, calls), nil
}

// setter renders the call assigning value to key, checked against the
// method set of instance. Null values and empty lists render nothing.
func (g *Generator) setter(instance any, typeName, key string, value any, r renderer) (string, error) {
	name := SetterName(key)
	method := reflect.ValueOf(instance).MethodByName(name)
	if !method.IsValid() || !isSetter(method.Type(), reflect.TypeOf(instance)) {
		return "", fmt.Errorf("%w: %s has no setter for %q", ErrCodeGeneration, typeName, key)
	}

	switch v := value.(type) {
	case nil:
		return "", nil
	case []any:
		if len(v) == 0 {
			return "", nil
		}
		if !method.Type().IsVariadic() {
			return "", fmt.Errorf("%w: %s.%s does not take a list", ErrCodeGeneration, typeName, name)
		}
		args := make([]string, len(v))
		for i, item := range v {
			arg, err := g.value(item, key, r)
			if err != nil {
				return "", err
			}
			args[i] = arg
		}
		return r.call(name, args), nil
	default:
		arg, err := g.value(v, key, r)
		if err != nil {
			return "", err
		}
		return r.call(name, []string{arg}), nil
	}
}

func (g *Generator) value(value any, key string, r renderer) (string, error) {
	switch v := value.(type) {
	case *blockkit.Payload:
		return g.object(v, key, r)
	case string:
		return strconv.Quote(v), nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case []any:
		return "", fmt.Errorf("%w: nested list under %q", ErrCodeGeneration, key)
	case nil:
		return "nil", nil
	}
	return "", fmt.Errorf("%w: unsupported value %T under %q", ErrCodeGeneration, value, key)
}

// isSetter matches fluent setters: one or more arguments, returning the receiver type.
func isSetter(m, receiver reflect.Type) bool {
	return m.NumIn() >= 1 && m.NumOut() == 1 && m.Out(0) == receiver
}

func (g *Generator) qualify(name string) string {
	if g.qualifier == "" {
		return name
	}
	return g.qualifier + "." + name
}

func stringValue(p *blockkit.Payload, key string) (string, bool) {
	v, ok := p.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func hasKey(p *blockkit.Payload, key string) bool {
	_, ok := p.Get(key)
	return ok
}
