package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/imryche/blockkit-sub000/pkg/display"
)

type previewOptions struct {
	qrPath  string
	qrSize  int
	urlOnly bool
}

func registerPreviewCmd(parent *cobra.Command) {
	var opts previewOptions

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Print a Block Kit Builder link for a payload",
		Long: `Read a JSON or YAML payload from a file or standard input and print a
Block Kit Builder link that opens it.`,
		Example: `  # Preview a message stored as YAML
  blockkit preview message.yaml

  # Pipe JSON in and write a QR code for a phone
  cat modal.json | blockkit preview --qr modal.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := requireSession(cmd)
			if err != nil {
				return err
			}
			return runPreview(cmd, s, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.qrPath, "qr", "", "also write the link as a PNG QR code to this path")
	cmd.Flags().IntVar(&opts.qrSize, "qr-size", 0, "QR code size in pixels (default BLOCKKIT_QR_SIZE)")
	cmd.Flags().BoolVar(&opts.urlOnly, "url", false, "print only the link")

	parent.AddCommand(cmd)
}

func runPreview(cmd *cobra.Command, s *Session, args []string, opts previewOptions) error {
	p, err := readPayload(cmd, s, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.urlOnly {
		url, err := display.BuilderURL(p, s.displayOptions()...)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, url); err != nil {
			return err
		}
	} else if err := display.Fprint(out, p, s.displayOptions()...); err != nil {
		return err
	}

	if opts.qrPath == "" {
		return nil
	}
	size := opts.qrSize
	if size <= 0 {
		size = s.Config.QRSize
	}
	png, err := display.QRCode(p, size, s.displayOptions()...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.qrPath, png, 0o644); err != nil {
		return fmt.Errorf("write QR code: %w", err)
	}
	s.Log.InfoContext(cmd.Context(), "QR code written",
		slog.String("path", opts.qrPath),
		slog.Int("size", size),
	)
	return nil
}
