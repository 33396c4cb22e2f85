package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imryche/blockkit-sub000/pkg/codegen"
	"github.com/imryche/blockkit-sub000/pkg/logger"
)

type generateOptions struct {
	file    bool
	pkg     string
	varName string
}

func registerGenerateCmd(parent *cobra.Command) {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate [file]",
		Short: "Print Go code that builds a payload",
		Long: `Read a JSON or YAML payload from a file or standard input and print the
blockkit constructor chain that reproduces it.`,
		Example: `  # Print the expression
  blockkit generate message.json

  # Write a complete Go file
  blockkit generate --file --package views --var WelcomeModal modal.yaml > views/welcome.go`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := requireSession(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd, s, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.file, "file", false, "emit a complete gofmt'ed Go file")
	cmd.Flags().StringVar(&opts.pkg, "package", "main", "package name for --file")
	cmd.Flags().StringVar(&opts.varName, "var", "Payload", "variable name for --file")

	parent.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, s *Session, args []string, opts generateOptions) error {
	p, err := readPayload(cmd, s, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !opts.file {
		expr, err := codegen.Generate(p)
		if err != nil {
			s.Log.ErrorContext(cmd.Context(), "generation failed", logger.Error(err))
			return err
		}
		_, err = fmt.Fprintln(out, expr)
		return err
	}

	src, err := codegen.GenerateFile(p, opts.pkg, opts.varName)
	if err != nil {
		s.Log.ErrorContext(cmd.Context(), "generation failed", logger.Error(err))
		return err
	}
	_, err = out.Write(src)
	return err
}
