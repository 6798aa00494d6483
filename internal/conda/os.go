package conda

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// OSCondaClient implements ReportSource using the real conda binary
type OSCondaClient struct {
	ctx     context.Context
	command string
	args    []string
}

// NewOSCondaClient creates a client invoking `conda info --envs`
func NewOSCondaClient() *OSCondaClient {
	return NewOSCondaClientCommand("conda", []string{"info", "--envs"})
}

// NewOSCondaClientCommand creates a client invoking a custom manager
// command, e.g. from configuration. An empty command falls back to conda.
func NewOSCondaClientCommand(command string, args []string) *OSCondaClient {
	if command == "" {
		command = "conda"
		args = []string{"info", "--envs"}
	}
	return &OSCondaClient{
		ctx:     context.Background(),
		command: command,
		args:    args,
	}
}

// WithContext returns a new client with the given context
func (c *OSCondaClient) WithContext(ctx context.Context) ReportSource {
	return &OSCondaClient{
		ctx:     ctx,
		command: c.command,
		args:    c.args,
	}
}

// Report runs the manager command and returns its standard output.
// A command that cannot be launched and one that exits non-zero collapse
// into the same failure outcome.
func (c *OSCondaClient) Report() (string, error) {
	cmd := exec.CommandContext(c.ctx, c.command, c.args...)

	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("failed to list environments: %w: %s", err, stderr.String())
		}
		return "", fmt.Errorf("failed to list environments: %w", err)
	}

	return out.String(), nil
}
