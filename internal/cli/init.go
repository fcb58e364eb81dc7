package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/splitlog/internal/config"
)

// SkipInitAnnotation marks commands that must run before any state exists.
const SkipInitAnnotation = "splitlog/skip-init"

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var backend, dataDir string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the splitlog config file",
		Long: `Write config.toml to $SPLITLOG_HOME (default ~/.splitlog).

Examples:
  splitlog init
  splitlog init --backend json --data-dir ~/Dropbox/splitlog`,
		Annotations: map[string]string{SkipInitAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := config.Home()
			if err != nil {
				return err
			}

			path := filepath.Join(home, config.FileName)
			if _, err := os.Stat(path); err == nil && !force {
				fmt.Printf("Config already exists at %s (use --force to overwrite)\n", path)
				return nil
			}

			cfg := config.Default(home)
			if backend != "" {
				cfg.Backend = backend
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := config.SaveConfig(home, cfg); err != nil {
				return err
			}

			fmt.Printf("✓ Config written to %s\n", path)
			fmt.Printf("  backend:  %s\n", cfg.Backend)
			fmt.Printf("  data dir: %s\n", cfg.DataDir)
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  splitlog exercise add upperA \"Bench press\"")
			fmt.Println("  splitlog status")
			return nil
		},
	}

	cmd.Flags().StringVar(&backend, "backend", "", "Storage backend (sqlite or json)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory for stored data")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config")
	return cmd
}
