// Package cli provides the wpmigrate command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/wpmigrate/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wpmigrate/internal/bootstrap"
	"github.com/custodia-labs/wpmigrate/internal/connectors/wordpress"
	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/core/services"
	"github.com/custodia-labs/wpmigrate/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Persistent flags.
var (
	configPath string
	outputDir  string
	baseURL    string
	layoutName string
	logLevel   string
	debugMode  bool
	quietMode  bool
)

// buildMigrator wires the migration. Tests replace it.
var buildMigrator = bootstrap.NewMigrator

var rootCmd = &cobra.Command{
	Use:   "wpmigrate",
	Short: "Export a WordPress site to Markdown",
	Long: `wpmigrate reads posts, pages, categories, tags and users from the
WordPress REST API and writes one Markdown file with front-matter per
post or page, mirroring the original URL paths.

The run stops at the first error and exits non-zero.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: configureLogging,
	RunE:              runMigrate,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", file.DefaultPath, "configuration file")
	flags.StringVarP(&outputDir, "output", "o", "", "output directory (overrides output.dir)")
	flags.StringVar(&baseURL, "base-url", "", "WordPress site URL (overrides site.base_url)")
	flags.StringVar(&layoutName, "layout", "", layoutUsage())
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&debugMode, "debug", false, "enable debug logging")
	flags.BoolVarP(&quietMode, "quiet", "q", false, "only log warnings and errors")
}

// layouts lists the output layouts in help order.
var layouts = []domain.OutputLayout{domain.LayoutPermalink, domain.LayoutJekyll}

func layoutUsage() string {
	parts := make([]string, 0, len(layouts))
	for _, l := range layouts {
		parts = append(parts, fmt.Sprintf("%s = %s", l, l.Description()))
	}
	return "output layout (overrides output.layout): " + strings.Join(parts, "; ")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func configureLogging(cmd *cobra.Command, _ []string) error {
	if debugMode && quietMode {
		return errors.New("--debug and --quiet are mutually exclusive")
	}
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	switch {
	case debugMode:
		level = logger.LevelDebug
	case quietMode:
		level = logger.LevelWarn
	}

	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(level)
	return nil
}

// loadSettings reads the config file and applies flag overrides.
func loadSettings() (domain.Settings, error) {
	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return domain.Settings{}, err
	}
	logger.Debug("config file: %s", store.Path())

	return services.LoadSettings(store, applyFlags)
}

// applyFlags copies explicitly set persistent flags over s.
func applyFlags(s *domain.Settings) {
	if outputDir != "" {
		s.OutputDir = outputDir
	}
	if baseURL != "" {
		s.BaseURL = baseURL
	}
	if layoutName != "" {
		s.Layout = domain.OutputLayout(layoutName)
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	progress := newProgressLine(cmd)
	migrator, err := buildMigrator(settings, progress.update)
	if err != nil {
		return err
	}

	err = migrator.Run(context.Background())
	progress.done()
	if err != nil {
		if hint := failureHint(err); hint != "" {
			return fmt.Errorf("migration failed: %w (%s)", err, hint)
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	status := migrator.Status()
	cmd.Printf("Exported %d files to %s (%d unchanged, %d skipped)\n",
		status.Written, settings.OutputDir, status.Unchanged, status.Skipped)
	return nil
}

// failureHint suggests which setting to check for API errors that are
// usually caused by configuration.
func failureHint(err error) string {
	switch {
	case wordpress.IsUnauthorized(err), wordpress.IsForbidden(err):
		return "check http.user and http.token"
	case wordpress.IsNotFound(err):
		return "check site.base_url and site.api_path"
	default:
		return ""
	}
}

// progressLine redraws a single status line on terminals.
type progressLine struct {
	w       io.Writer
	enabled bool
	drawn   bool
}

// newProgressLine draws on the command's error stream, and only when that
// stream is a terminal.
func newProgressLine(cmd *cobra.Command) *progressLine {
	w := cmd.ErrOrStderr()
	enabled := false
	// Debug lines would interleave with the redrawn line.
	if f, ok := w.(*os.File); ok && !quietMode && !logger.IsDebug() {
		enabled = term.IsTerminal(int(f.Fd()))
	}
	return &progressLine{w: w, enabled: enabled}
}

func (p *progressLine) update(status domain.RunStatus) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, "\r\033[K%d processed  %s", status.Processed(), status.Current)
	p.drawn = true
}

func (p *progressLine) done() {
	if p.drawn {
		fmt.Fprintln(p.w)
	}
}
