package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/imryche/blockkit-sub000"
)

var (
	// ErrUnsupportedFormat is returned for formats other than JSON and YAML.
	ErrUnsupportedFormat = errors.New("unsupported payload format")
	// ErrInvalidPayload is returned when the input is malformed or its root is not an object.
	ErrInvalidPayload = errors.New("invalid payload")
)

// Parser decodes a raw payload from an io.Reader.
type Parser struct {
	name  string
	parse func(io.Reader) (any, error)
}

var (
	// JSON parses payloads from JSON. Numbers are kept as json.Number.
	JSON = Parser{"json", parseJSON}
	// YAML parses payloads from YAML. Numbers are converted to json.Number.
	YAML = Parser{"yaml", parseYAML}
)

// Name returns the format name.
func (p Parser) Name() string {
	return p.name
}

// Parse decodes r into an ordered tree. Objects become *blockkit.Payload,
// arrays []any, and scalars string, json.Number, bool or nil.
func (p Parser) Parse(r io.Reader) (*blockkit.Payload, error) {
	root, err := p.parse(r)
	if err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}
	obj, ok := root.(*blockkit.Payload)
	if !ok {
		return nil, fmt.Errorf("%w: root must be an object, got %s", ErrInvalidPayload, kindOf(root))
	}
	return obj, nil
}

// ParserFor returns the parser for a format name: "json", "yaml" or "yml".
func ParserFor(format string) (Parser, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return Parser{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// FormatFromPath infers the format from a file extension. Unknown extensions
// fall back to JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

// Decode parses r in the given format.
func Decode(r io.Reader, format string) (*blockkit.Payload, error) {
	p, err := ParserFor(format)
	if err != nil {
		return nil, err
	}
	return p.Parse(r)
}

func parseJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	value, err := readJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return value, nil
}

func readJSON(dec *json.Decoder) (any, error) {
	token, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := token.(json.Delim)
	if !ok {
		return token, nil
	}

	switch delim {
	case '{':
		obj := blockkit.NewPayload()
		for dec.More() {
			keyToken, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyToken.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyToken)
			}
			value, err := readJSON(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, value)
		}
		// closing brace
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		list := []any{}
		for dec.More() {
			value, err := readJSON(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		// closing bracket
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %q", rune(delim))
}

func parseYAML(r io.Reader) (any, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	return readYAML(&doc)
}

func readYAML(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, errors.New("empty document")
		}
		return readYAML(node.Content[0])
	case yaml.AliasNode:
		return readYAML(node.Alias)
	case yaml.MappingNode:
		obj := blockkit.NewPayload()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: object keys must be scalars", keyNode.Line)
			}
			value, err := readYAML(valueNode)
			if err != nil {
				return nil, err
			}
			obj.Set(keyNode.Value, value)
		}
		return obj, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := readYAML(item)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	case yaml.ScalarNode:
		return readScalar(node)
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %d", node.Line, node.Kind)
}

func readScalar(node *yaml.Node) (any, error) {
	var value any
	if err := node.Decode(&value); err != nil {
		return nil, fmt.Errorf("line %d: %w", node.Line, err)
	}
	switch v := value.(type) {
	case int:
		return json.Number(strconv.Itoa(v)), nil
	case int64:
		return json.Number(strconv.FormatInt(v, 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(v, 10)), nil
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fmt.Errorf("line %d: %s is not a JSON number", node.Line, node.Value)
		}
		return json.Number(strconv.FormatFloat(v, 'f', -1, 64)), nil
	case string, bool, nil:
		return v, nil
	}
	// timestamps and binary scalars keep their source text
	return node.Value, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	}
	return fmt.Sprintf("%T", v)
}
