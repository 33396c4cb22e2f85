// Package logger builds *slog.Logger values for the blockkit command line
// tool from functional options, and provides attribute helpers so records use
// the same keys everywhere.
//
// # Architecture
//
// New picks slog.NewJSONHandler or slog.NewTextHandler from the configured
// Format and wraps it in LogHandlerDecorator, which appends attributes taken
// from the context of each record through registered ContextExtractor
// functions. Records go to stderr unless WithOutput says otherwise.
//
// # Usage
//
//	import "github.com/imryche/blockkit-sub000/pkg/logger"
//
//	level, err := logger.ParseLevel(cfg.LogLevel)
//	if err != nil {
//		return err
//	}
//	log := logger.New(
//		logger.WithLevel(level),
//		logger.WithFormat(logger.FormatText),
//		logger.WithContextValue("command", commandKey{}),
//	)
//
//	log.DebugContext(ctx, "payload decoded",
//		logger.Source(path),
//		logger.BlockType("modal"),
//		logger.Duration(time.Since(start)),
//	)
//
// # Configuration
//
//   - WithLevel, WithFormat: minimum level and output format.
//   - WithVerbose: debug level text output.
//   - WithOutput: destination writer.
//   - WithAttr: static attributes.
//   - WithContextExtractors, WithContextValue: attributes from context.
//
// ParseLevel and ParseFormat validate user supplied names.
//
// # Error Handling
//
// Error returns an empty attribute for a nil error, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
