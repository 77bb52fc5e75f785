package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wpmigrate/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wpmigrate/internal/adapters/driven/render"
	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/logger"
)

// requiredKeys must be present in every emitted page.
var requiredKeys = []string{"title", render.KeyPermalink}

var verifyCmd = &cobra.Command{
	Use:   "verify [dir]",
	Short: "Check emitted Markdown files",
	Long: `Parses every Markdown file under the output directory and checks
that its front-matter carries a title and a permalink.

Without an argument the output directory from the configuration is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	dir, err := verifyDir(args)
	if err != nil {
		return err
	}

	checked, failed := 0, 0
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		checked++
		if problem := verifyFile(path); problem != "" {
			failed++
			rel, _ := filepath.Rel(dir, path)
			cmd.Printf("FAIL %s: %s\n", filepath.ToSlash(rel), problem)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", dir, err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed verification", failed, checked)
	}
	cmd.Printf("%d files OK\n", checked)
	return nil
}

// verifyDir picks the directory argument, the --output flag or the
// configured output directory, in that order.
func verifyDir(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if outputDir != "" {
		return outputDir, nil
	}

	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return "", err
	}
	if dir := store.GetString("output.dir"); dir != "" {
		return dir, nil
	}
	return domain.DefaultSettings().OutputDir, nil
}

// verifyFile returns a description of what is wrong with the file, or "".
func verifyFile(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return err.Error()
	}
	defer f.Close()

	doc, err := render.ParseDocument(f)
	if err != nil {
		return err.Error()
	}
	if doc.FrontMatter == nil {
		return "no front-matter"
	}

	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(doc.String(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return "missing " + strings.Join(missing, ", ")
	}
	logger.Debug("ok %s", path)
	return ""
}
