package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/focal-dev/focal/internal/focus/langs"
)

// languagesCmd lists the registered language grammars.
var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and their file patterns",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		for _, g := range langs.NewRegistry().Grammars() {
			fmt.Fprintf(out, "%-12s %s\n", g.Name, strings.Join(g.Patterns, " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
