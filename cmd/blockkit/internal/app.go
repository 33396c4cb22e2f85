// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/imryche/blockkit-sub000/internal/commands"
)

// Run executes the command line in args. A nil env reads configuration from
// the process environment.
func Run(ctx context.Context, args []string, env map[string]string) error {
	rootCmd := commands.NewRootCmd(env)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
