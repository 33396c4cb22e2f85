package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/imryche/blockkit-sub000"
	"github.com/imryche/blockkit-sub000/pkg/logger"
	"github.com/imryche/blockkit-sub000/pkg/payload"
)

const stdinSource = "-"

// readPayload decodes the file named by the first argument, or standard input
// when there is none or it is "-".
func readPayload(cmd *cobra.Command, s *Session, args []string) (*blockkit.Payload, error) {
	start := time.Now()

	source := stdinSource
	if len(args) > 0 {
		source = args[0]
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = payload.FormatFromPath(source)
	}

	var r io.Reader = cmd.InOrStdin()
	if source != stdinSource {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open payload: %w", err)
		}
		defer f.Close()
		r = f
	}

	p, err := payload.Decode(r, format)
	if err != nil {
		s.Log.ErrorContext(cmd.Context(), "payload rejected", logger.Source(source), logger.Error(err))
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	typ, _ := p.Get("type")
	kind, _ := typ.(string)
	s.Log.DebugContext(cmd.Context(), "payload decoded",
		logger.Source(source),
		logger.BlockType(kind),
		logger.Duration(time.Since(start)),
	)
	return p, nil
}
