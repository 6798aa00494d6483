package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/JaLnYn/zed-pyenvselect/internal/conda"
	"github.com/JaLnYn/zed-pyenvselect/internal/config"
	"github.com/JaLnYn/zed-pyenvselect/internal/filesystem"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, source conda.ReportSource, cfg config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pyenvselect",
		Short: "Discover Python environments for a project",
		Long: `A CLI tool for discovering Python interpreter environments.

Virtual environments nested under a project root are found by marker files
(bin/activate, pyvenv.cfg); conda-managed environments are read from the
manager's listing report. Both sources merge into one list.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(NewListCommand(fs, source, cfg))
	rootCmd.AddCommand(NewSelectCommand(fs, source, cfg))
	rootCmd.AddCommand(NewCurrentCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	for _, warning := range loaded.Warnings {
		log.Warn(warning)
	}

	cfg := loaded.Config
	source := conda.NewOSCondaClientCommand(cfg.Tool.Command, cfg.Tool.Args)

	rootCmd := NewRootCommand(fs, source, cfg)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
