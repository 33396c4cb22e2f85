package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/imryche/blockkit-sub000"
)

func registerTypesCmd(parent *cobra.Command) {
	parent.AddCommand(&cobra.Command{
		Use:   "types",
		Short: "List registered component types",
		Long: `List every component known to the registry with its wire type and Go
constructor. Composition objects have no wire type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTypes(cmd)
		},
	})
}

func runTypes(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tTYPE\tCONSTRUCTOR")

	for _, entry := range blockkit.DefaultRegistry().Entries() {
		typ := entry.Type
		if typ == "" {
			typ = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Name, typ, entry.Constructor)
	}
	return w.Flush()
}
