package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaLnYn/zed-pyenvselect/internal/conda"
	"github.com/JaLnYn/zed-pyenvselect/internal/config"
	"github.com/JaLnYn/zed-pyenvselect/internal/discovery"
	"github.com/JaLnYn/zed-pyenvselect/internal/filesystem"
	"github.com/JaLnYn/zed-pyenvselect/internal/models"
	"github.com/JaLnYn/zed-pyenvselect/internal/venv"
)

// ListCommand handles the list command
type ListCommand struct {
	fs     filesystem.FileSystem
	source conda.ReportSource
	cfg    config.Config
}

// ListOutput represents the complete JSON listing
type ListOutput struct {
	Records []models.Record `json:"records"`
	Count   int             `json:"count"`
}

// NewListCommand creates a new list command
func NewListCommand(fs filesystem.FileSystem, source conda.ReportSource, cfg config.Config) *cobra.Command {
	cmd := &ListCommand{
		fs:     fs,
		source: source,
		cfg:    cfg,
	}

	cobraCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered Python environments",
		Long: `Discovers Python environments and prints them as an aligned listing.

Virtual environments are found by scanning the project root recursively;
conda environments come from the manager report. Scanner results come
first, manager results second, in discovery order. Directories that could
not be read appear as diagnostic rows without an interpreter path.`,
		Example: `  # List environments under the current directory
  pyenvselect list --root .

  # Manager-reported environments only
  pyenvselect list

  # Output JSON for scripting
  pyenvselect list --root . --format json

  # Custom template output
  pyenvselect list --template '{{range .Records}}{{.Name}}{{"\n"}}{{end}}'`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("root", cfg.Scan.Root, "Project root to scan for virtual environments (empty skips the scan)")
	cobraCmd.Flags().String("format", cfg.Output.Format, "Output format: text or json")
	cobraCmd.Flags().String("template", "", "Render output through a Go template (overrides --format)")
	cobraCmd.Flags().String("ignore-file", cfg.Scan.IgnoreFile, "Prune scanned directories matched by this gitignore-format file")

	return cobraCmd
}

// Run executes the list command
func (c *ListCommand) Run(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("root")
	format, _ := cmd.Flags().GetString("format")
	tmpl, _ := cmd.Flags().GetString("template")
	ignoreFile, _ := cmd.Flags().GetString("ignore-file")

	var opts []venv.Option
	if ignoreFile != "" {
		opts = append(opts, venv.WithIgnoreFile(ignoreFile))
	}

	service := discovery.NewService(c.fs, c.source, opts...)
	records := service.Discover(root)

	if tmpl != "" {
		out, err := discovery.RenderTemplate(records, tmpl)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	if format == "json" {
		return c.outputJSON(cmd, records)
	}

	fmt.Fprintln(cmd.OutOrStdout(), discovery.Render(records))
	return nil
}

// outputJSON prints the records in JSON format
func (c *ListCommand) outputJSON(cmd *cobra.Command, records []models.Record) error {
	output := ListOutput{
		Records: records,
		Count:   len(records),
	}
	if output.Records == nil {
		output.Records = []models.Record{}
	}

	jsonData, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
