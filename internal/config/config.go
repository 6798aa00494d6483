package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user configuration for environment discovery.
type Config struct {
	Tool   ToolConfig   `toml:"tool"`
	Scan   ScanConfig   `toml:"scan"`
	Output OutputConfig `toml:"output"`
}

// ToolConfig overrides the environment manager invocation.
type ToolConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// ScanConfig sets project-tree scanning defaults.
type ScanConfig struct {
	Root       string `toml:"root"`
	IgnoreFile string `toml:"ignore_file"`
}

// OutputConfig sets listing output defaults.
type OutputConfig struct {
	Format string `toml:"format"`
}

// LoadResult carries the effective config plus any warnings produced while
// reading it.
type LoadResult struct {
	Config   Config
	Warnings []string
}

// DefaultConfig returns the built-in defaults: conda as the environment
// manager, text output, no default scan root.
func DefaultConfig() Config {
	return Config{
		Tool: ToolConfig{
			Command: "conda",
			Args:    []string{"info", "--envs"},
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pyenvselect", "config.toml")
}

// Load reads the config from the default location.
func Load() (*LoadResult, error) {
	return LoadFrom(defaultConfigPath())
}

// LoadFrom reads the config from path. A missing file yields the defaults;
// unknown top-level keys are reported as warnings, not errors.
func LoadFrom(path string) (*LoadResult, error) {
	result := &LoadResult{Config: DefaultConfig()}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || path == "" {
			return result, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	knownTopLevel := map[string]bool{
		"tool":   true,
		"scan":   true,
		"output": true,
	}
	for key := range raw {
		if !knownTopLevel[key] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("unknown config key: %q", key))
		}
	}

	var file Config
	if _, err := toml.Decode(string(data), &file); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	merge(&result.Config, &file)
	return result, nil
}

func merge(cfg, file *Config) {
	if file.Tool.Command != "" {
		cfg.Tool.Command = file.Tool.Command
		cfg.Tool.Args = file.Tool.Args
	}
	if file.Scan.Root != "" {
		cfg.Scan.Root = file.Scan.Root
	}
	if file.Scan.IgnoreFile != "" {
		cfg.Scan.IgnoreFile = file.Scan.IgnoreFile
	}
	if file.Output.Format != "" {
		cfg.Output.Format = file.Output.Format
	}
}
