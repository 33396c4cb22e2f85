package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type configCache struct {
	mu     sync.RWMutex
	values map[string]any
}

var (
	globalCache = &configCache{values: make(map[string]any)}

	defaultEnvLoaded sync.Once
)

type options struct {
	prefix      string
	files       []string
	environment map[string]string
}

// Option configures Load.
type Option func(*options)

// WithPrefix reads every variable as prefix + name, e.g. "BLOCKKIT_" + "LOG_LEVEL".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles loads the given files into the process environment before
// parsing. Unlike the implicit .env, a missing file is an error.
func WithEnvFiles(paths ...string) Option {
	return func(o *options) {
		o.files = append(o.files, paths...)
	}
}

// WithEnvironment parses from env instead of the process environment. Results
// are not cached.
func WithEnvironment(env map[string]string) Option {
	return func(o *options) {
		o.environment = env
	}
}

// Load fills v from environment variables according to its `env` struct tags.
//
// A .env file in the working directory is loaded once, if present. Variables
// already set in the process win over file values. Each (type, prefix) pair
// is parsed once; later calls copy the cached value.
//
// Example:
//
//	type Config struct {
//		BuilderURL string `env:"BUILDER_URL" envDefault:"https://app.slack.com/block-kit-builder/#"`
//		QRSize     int    `env:"QR_SIZE" envDefault:"512"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("BLOCKKIT_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	defaultEnvLoaded.Do(func() {
		// The file is optional.
		_ = godotenv.Load()
	})
	if len(o.files) > 0 {
		if err := LoadEnv(o.files...); err != nil {
			return err
		}
	}

	if o.environment != nil {
		return parse(v, o)
	}

	key := getTypeName[T]() + "|" + o.prefix

	globalCache.mu.RLock()
	cached, ok := globalCache.values[key]
	globalCache.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}
	if err := parse(v, o); err != nil {
		return err
	}
	globalCache.values[key] = *v
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the given env files into the process environment without
// overriding variables that are already set.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.mu.Unlock()
}

func parse[T any](v *T, o options) error {
	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

func getTypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
