package display

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/imryche/blockkit-sub000"
	"github.com/imryche/blockkit-sub000/pkg/qrcode"
)

// DefaultBaseURL is the Block Kit Builder entry point.
const DefaultBaseURL = "https://app.slack.com/block-kit-builder/#"

var (
	// ErrNotBuildable is returned for values that are neither components nor
	// built payload trees.
	ErrNotBuildable = blockkit.ErrNotBuildable
	// ErrEncodeFailed is returned when the payload cannot be encoded as JSON.
	ErrEncodeFailed = errors.New("failed to encode payload")
)

const hex = "0123456789ABCDEF"

// Bytes kept as-is when building the link; everything else is percent-encoded.
const safe = "/:?=&#_.-~"

type options struct {
	baseURL string
}

// Option configures preview link rendering.
type Option func(*options)

// WithBaseURL points links at another builder instance.
func WithBaseURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.baseURL = url
		}
	}
}

// BuilderURL returns a Block Kit Builder link previewing v. v is a component,
// which is built first, or an already built tree.
func BuilderURL(v any, opts ...Option) (string, error) {
	o := options{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}

	tree, err := resolve(v)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tree); err != nil {
		return "", errors.Join(ErrEncodeFailed, err)
	}
	return quote(o.baseURL + strings.TrimSuffix(buf.String(), "\n")), nil
}

// Fprint writes the preview link for v to w.
func Fprint(w io.Writer, v any, opts ...Option) error {
	url, err := BuilderURL(v, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Block kit builder example/validation:  \n\t%s\n", url)
	return err
}

// QRCode renders the preview link for v as a PNG QR code.
func QRCode(v any, size int, opts ...Option) ([]byte, error) {
	url, err := BuilderURL(v, opts...)
	if err != nil {
		return nil, err
	}
	return qrcode.Generate(url, size)
}

func resolve(v any) (any, error) {
	switch t := v.(type) {
	case blockkit.Buildable:
		if rv := reflect.ValueOf(t); rv.Kind() == reflect.Pointer && rv.IsNil() {
			break
		}
		return t.Build()
	case *blockkit.Payload:
		if t != nil {
			return t, nil
		}
	case map[string]any, []any:
		return t, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotBuildable, v)
}

func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte(safe, c) >= 0
}
