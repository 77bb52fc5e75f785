package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wpmigrate/internal/adapters/driven/render"
	"github.com/custodia-labs/wpmigrate/internal/normalisers/markdown"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render an emitted Markdown file to HTML",
	Long: `Strips the front-matter of an emitted file and renders the body to
HTML on stdout, to eyeball the conversion.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := render.ParseDocument(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	return markdown.New().Render(cmd.OutOrStdout(), []byte(doc.Body))
}
