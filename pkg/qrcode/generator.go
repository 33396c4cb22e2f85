package qrcode

import (
	"encoding/base64"
	"errors"
	"os"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when content is empty or only whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrGenerationFailed is returned when the content cannot be encoded at any
	// allowed recovery level.
	ErrGenerationFailed = errors.New("failed to generate QR code")
)

// Recovery levels, from the most to the least redundant.
const (
	Highest = skipqrcode.Highest
	High    = skipqrcode.High
	Medium  = skipqrcode.Medium
	Low     = skipqrcode.Low
)

// DefaultSize is the image size in pixels used when no size is given.
const DefaultSize = 256

const dataURIPrefix = "data:image/png;base64,"

type options struct {
	level    skipqrcode.RecoveryLevel
	fallback bool
}

// Option configures QR code generation.
type Option func(*options)

// WithRecoveryLevel sets the preferred error recovery level. Medium by default.
func WithRecoveryLevel(level skipqrcode.RecoveryLevel) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithoutFallback disables stepping down to a lower recovery level when the
// content does not fit at the preferred one.
func WithoutFallback() Option {
	return func(o *options) {
		o.fallback = false
	}
}

// Generate encodes content as a PNG image of size x size pixels.
//
// Builder preview links are long, so content that does not fit at the
// preferred recovery level is retried at each lower level down to Low.
func Generate(content string, size int, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}

	o := options{level: Medium, fallback: true}
	for _, opt := range opts {
		opt(&o)
	}

	var lastErr error
	for level := o.level; level >= Low; level-- {
		png, err := skipqrcode.Encode(content, level, size)
		if err == nil {
			return png, nil
		}
		lastErr = err
		if !o.fallback {
			break
		}
	}
	return nil, errors.Join(ErrGenerationFailed, lastErr)
}

// DataURI returns the PNG as a base64 data URI, ready for an <img> src.
func DataURI(content string, size int, opts ...Option) (string, error) {
	png, err := Generate(content, size, opts...)
	if err != nil {
		return "", err
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(png), nil
}

// WriteFile writes the PNG to path, replacing any existing file.
func WriteFile(path, content string, size int, opts ...Option) error {
	png, err := Generate(content, size, opts...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, png, 0o644)
}
