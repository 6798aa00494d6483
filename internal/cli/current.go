package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// CurrentCommand handles the current command
type CurrentCommand struct{}

// NewCurrentCommand creates a new current command
func NewCurrentCommand() *cobra.Command {
	cmd := &CurrentCommand{}

	cobraCmd := &cobra.Command{
		Use:   "current [args...]",
		Short: "Echo the current environment arguments",
		Long:  `Echoes its arguments back, joined by spaces. Fails when no arguments are given.`,
		RunE:  cmd.Run,
	}

	return cobraCmd
}

// Run executes the current command
func (c *CurrentCommand) Run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("nothing to echo")
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(args, " "))
	return nil
}
