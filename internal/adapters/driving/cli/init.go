package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/wpmigrate/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wpmigrate/internal/core/domain"
	"github.com/custodia-labs/wpmigrate/internal/core/services"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default settings",
	Long: `Write the default settings to the configuration file (--config).
--base-url, --output and --layout are applied before writing. An existing
file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing configuration file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(configPath); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}

	s := domain.DefaultSettings()
	applyFlags(&s)
	if !s.Layout.IsValid() {
		return fmt.Errorf("%w: unknown layout %q", domain.ErrInvalidInput, s.Layout)
	}

	// --force starts from an empty file so stale keys are dropped.
	if initForce {
		if err := os.Remove(configPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return err
	}

	if err := services.SaveSettings(store, s); err != nil {
		return err
	}

	cmd.Printf("Wrote %s\n", store.Path())
	cmd.Printf("Layout: %s\n", s.Layout.Description())
	if s.BaseURL == "" {
		cmd.Println("Set site.base_url before running wpmigrate.")
	}
	return nil
}
