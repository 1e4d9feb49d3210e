package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/focal-dev/focal/internal/config"
	"github.com/focal-dev/focal/internal/focus"
	"github.com/focal-dev/focal/internal/focus/langs"
)

var (
	lineFlag     int
	colFlag      int
	endLineFlag  int
	endColFlag   int
	maxLinesFlag int
)

// contextCmd extracts focused context around a cursor position.
var contextCmd = &cobra.Command{
	Use:   "context FILE",
	Short: "Extract focused context around a cursor position",
	Long: `Extract a budget-bounded excerpt of the code enclosing the given
cursor position or selection range. When no structural context is
available (unknown language, unparsable source, cursor outside every
recognized construct), a raw line window is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runContext,
}

func init() {
	contextCmd.Flags().IntVar(&lineFlag, "line", 0, "cursor line (zero-based)")
	contextCmd.Flags().IntVar(&colFlag, "col", 0, "cursor column (zero-based)")
	contextCmd.Flags().IntVar(&endLineFlag, "end-line", -1, "selection end line (defaults to --line)")
	contextCmd.Flags().IntVar(&endColFlag, "end-col", -1, "selection end column (defaults to --col)")
	contextCmd.Flags().IntVar(&maxLinesFlag, "max-lines", 0, "line budget for the assembled context (0 = config default)")
	rootCmd.AddCommand(contextCmd)
}

func runContext(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	target := focus.CursorRange{
		Start: focus.Point{Row: lineFlag, Column: colFlag},
		End:   focus.Point{Row: endLineFlag, Column: endColFlag},
	}
	if endLineFlag < 0 {
		target.End.Row = lineFlag
	}
	if endColFlag < 0 {
		target.End.Column = colFlag
	}

	maxLines := maxLinesFlag
	if maxLines <= 0 {
		maxLines = cfg.Context.MaxLines
	}

	doc := focus.NewDocument(path, content)
	assembled := extractContext(doc, target, maxLines, cfg)

	out := cmd.OutOrStdout()
	if assembled.Empty() {
		log.Printf("Warning: no structural context for %s, falling back to a line window\n", path)
		fmt.Fprintln(out, focus.LineWindow(doc, target, cfg.Context.FallbackLines))
		return nil
	}

	if verbose {
		for _, include := range assembled.Info.Includes {
			fmt.Fprintf(out, "// include: %s\n", include)
		}
		for _, imp := range assembled.Info.Imports {
			fmt.Fprintf(out, "// import: %s\n", imp)
		}
		for _, node := range assembled.Info.Nodes {
			fmt.Fprintf(out, "// scope: [%s] %s\n", node.Kind, node.Name)
		}
	}
	fmt.Fprintln(out, assembled.Render())
	return nil
}

// extractContext resolves the grammar for the document and runs one
// extraction. Unknown or disabled languages yield an empty result.
func extractContext(doc *focus.Document, target focus.CursorRange, maxLines int, cfg *config.Config) focus.Assembled {
	registry := langs.NewRegistry()
	grammar, ok := registry.Match(doc.Path)
	if !ok || !cfg.LanguageEnabled(grammar.Name) {
		return focus.Assembled{}
	}
	return focus.NewFinder().Extract(doc, grammar, target, maxLines)
}
