// Package commands contains all CLI command definitions.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imryche/blockkit-sub000/internal/version"
)

// NewRootCmd creates the blockkit command tree. env replaces the process
// environment as configuration source when non-nil.
func NewRootCmd(env map[string]string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "blockkit",
		Short: "Preview and generate Slack Block Kit payloads",
		Long: `blockkit works with Slack Block Kit payloads stored as JSON or YAML.

Configuration is read from the environment:
  BLOCKKIT_BUILDER_URL   Block Kit Builder base URL
  BLOCKKIT_LOG_LEVEL     debug, info, warn or error (default warn)
  BLOCKKIT_LOG_FORMAT    text or json (default text)
  BLOCKKIT_QR_SIZE       QR code size in pixels (default 512)`,
		Version:           version.Short(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: preRunLoad(env),
	}

	rootCmd.PersistentFlags().StringP("format", "f", "", "input format: json or yaml (default: from file extension, json for stdin)")
	rootCmd.PersistentFlags().String("log-level", "", "override BLOCKKIT_LOG_LEVEL")

	registerPreviewCmd(rootCmd)
	registerGenerateCmd(rootCmd)
	registerTypesCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

func registerVersionCmd(parent *cobra.Command) {
	parent.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return err
		},
	})
}
