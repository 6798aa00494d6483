package cli

import (
	"errors"
	"fmt"
	"strings"

	huh "github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/JaLnYn/zed-pyenvselect/internal/conda"
	"github.com/JaLnYn/zed-pyenvselect/internal/config"
	"github.com/JaLnYn/zed-pyenvselect/internal/discovery"
	"github.com/JaLnYn/zed-pyenvselect/internal/filesystem"
	"github.com/JaLnYn/zed-pyenvselect/internal/tui"
	"github.com/JaLnYn/zed-pyenvselect/internal/venv"
)

// SelectCommand handles the select command
type SelectCommand struct {
	fs     filesystem.FileSystem
	source conda.ReportSource
	cfg    config.Config
}

// NewSelectCommand creates a new select command
func NewSelectCommand(fs filesystem.FileSystem, source conda.ReportSource, cfg config.Config) *cobra.Command {
	cmd := &SelectCommand{
		fs:     fs,
		source: source,
		cfg:    cfg,
	}

	cobraCmd := &cobra.Command{
		Use:   "select [name...]",
		Short: "Select a Python environment",
		Long: `Selects a Python environment and prints its interpreter path.

With arguments, the joined arguments are echoed back unchanged. Without
arguments an interactive picker is shown over the discovered selectable
environments; diagnostic rows are filtered out.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("root", cfg.Scan.Root, "Project root to scan for virtual environments")
	cobraCmd.Flags().String("ignore-file", cfg.Scan.IgnoreFile, "Prune scanned directories matched by this gitignore-format file")
	cobraCmd.Flags().Bool("no-input", false, "Fail instead of prompting when no name is given")

	return cobraCmd
}

// Run executes the select command
func (c *SelectCommand) Run(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(args, " "))
		return nil
	}

	if noInput, _ := cmd.Flags().GetBool("no-input"); noInput {
		return errors.New("nothing to echo")
	}

	root, _ := cmd.Flags().GetString("root")
	ignoreFile, _ := cmd.Flags().GetString("ignore-file")

	var opts []venv.Option
	if ignoreFile != "" {
		opts = append(opts, venv.WithIgnoreFile(ignoreFile))
	}

	service := discovery.NewService(c.fs, c.source, opts...)

	var choices []huh.Option[string]
	for _, record := range service.Discover(root) {
		if record.Selectable() {
			label := fmt.Sprintf("%s (%s)", record.Name, record.InterpreterPath)
			choices = append(choices, huh.NewOption(label, record.InterpreterPath))
		}
	}

	if len(choices) == 0 {
		return errors.New("no selectable environments found")
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Python Environments").
				Description("Select an interpreter.").
				Options(choices...).
				Value(&selected),
		),
	).WithTheme(tui.NewHuhTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("failed to run picker: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), tui.SuccessStyle.Render("✓")+" "+selected)
	return nil
}
