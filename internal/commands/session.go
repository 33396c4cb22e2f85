package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/imryche/blockkit-sub000/pkg/config"
	"github.com/imryche/blockkit-sub000/pkg/display"
	"github.com/imryche/blockkit-sub000/pkg/logger"
)

// EnvPrefix is prepended to every configuration variable name.
const EnvPrefix = "BLOCKKIT_"

// Config is read from BLOCKKIT_* environment variables and an optional .env file.
type Config struct {
	BuilderURL string `env:"BUILDER_URL" envDefault:"https://app.slack.com/block-kit-builder/#"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"text"`
	QRSize     int    `env:"QR_SIZE" envDefault:"512"`
}

// Session is the per-invocation state shared by all commands.
type Session struct {
	Config Config
	Log    *slog.Logger
}

func (s *Session) displayOptions() []display.Option {
	return []display.Option{display.WithBaseURL(s.Config.BuilderURL)}
}

type (
	sessionKey struct{}
	commandKey struct{}
)

// FromCommand returns the session stored by the root command, or nil.
func FromCommand(cmd *cobra.Command) *Session {
	s, _ := cmd.Context().Value(sessionKey{}).(*Session)
	return s
}

func requireSession(cmd *cobra.Command) (*Session, error) {
	s := FromCommand(cmd)
	if s == nil {
		return nil, fmt.Errorf("session not initialised for %q", cmd.CommandPath())
	}
	return s, nil
}

// preRunLoad returns a PersistentPreRunE that loads configuration, builds the
// logger and stores both in the command context.
func preRunLoad(env map[string]string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		var cfg Config
		if err := config.Load(&cfg, config.WithPrefix(EnvPrefix), config.WithEnvironment(env)); err != nil {
			return err
		}

		if flag := cmd.Flags().Lookup("log-level"); flag != nil && flag.Changed {
			cfg.LogLevel = flag.Value.String()
		}
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return err
		}

		log := logger.New(
			logger.WithLevel(level),
			logger.WithFormat(format),
			logger.WithOutput(cmd.ErrOrStderr()),
			logger.WithContextValue("command", commandKey{}),
		)

		ctx := context.WithValue(cmd.Context(), commandKey{}, cmd.Name())
		ctx = context.WithValue(ctx, sessionKey{}, &Session{Config: cfg, Log: log})
		cmd.SetContext(ctx)

		log.DebugContext(ctx, "configuration loaded",
			slog.String("builder_url", cfg.BuilderURL),
			slog.Int("qr_size", cfg.QRSize),
		)
		return nil
	}
}
