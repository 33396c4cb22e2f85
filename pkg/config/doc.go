// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - An optional .env file in the working directory is loaded once per
//     process; WithEnvFiles loads further files and fails if they are missing.
//   - Struct fields are filled from their `env` and `envDefault` tags, with an
//     optional name prefix (WithPrefix).
//   - Each successfully loaded (type, prefix) pair is cached, so repeated Load
//     calls are cheap and consistent. ResetCache clears it.
//   - WithEnvironment parses from an explicit map and bypasses the cache,
//     which keeps tests independent of the process environment.
//
// # Usage
//
//	type Config struct {
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
//		LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("BLOCKKIT_")); err != nil {
//		return err
//	}
//
// # Error Handling
//
//   - ErrNilPointer: Load received a nil pointer.
//   - ErrLoadingEnvFile: a file passed to WithEnvFiles or LoadEnv could not be read.
//   - ErrParsingConfig: a variable was missing or malformed; the env library's
//     error is joined in.
package config
