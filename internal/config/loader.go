package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// envVarPrefix is the prefix for all csrefactor environment variables.
const envVarPrefix = "CSREFACTOR_"

// SettingsSection is the key of the csrefactor block in editor settings.
const SettingsSection = "csrefactor"

// configFiles are the project config names searched for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFiles = []string{".csrefactor.yaml", ".csrefactor.yml"}

// vcsRootMarkers stop the upward search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory to search from. Defaults to the current directory.
	WorkingDir string

	// ExplicitPath skips discovery and loads this file.
	ExplicitPath string

	// IgnoreEnv skips CSREFACTOR_* overrides.
	IgnoreEnv bool
}

// LoadResult is the resolved configuration and where it came from.
type LoadResult struct {
	Config *Config

	// LoadedFrom is the config file that was read, empty when none was found.
	LoadedFrom string
}

// Load resolves the configuration. Precedence, highest first: environment,
// explicit or discovered file, defaults.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	cfg := Default()
	result := &LoadResult{Config: cfg}

	path := opts.ExplicitPath
	if path == "" {
		found, err := FindProjectConfig(ctx, opts.WorkingDir)
		if err != nil {
			return nil, err
		}

		path = found
	}

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}

		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return result, nil
}

// loadFile decodes a YAML file over cfg.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	if err := Parse(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}

// Parse decodes YAML over cfg. Keys absent from data keep their current value.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// FindProjectConfig searches upward from startDir for a project config file.
// It returns an empty path when none exists below the VCS root, the home
// directory or the filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error

		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	home, homeErr := os.UserHomeDir()
	if homeErr != nil {
		home = ""
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		for _, name := range configFiles {
			path := filepath.Join(dir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		if isVCSRoot(dir) || (home != "" && dir == home) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}

		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}

	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// LoadFromEnv applies CSREFACTOR_* overrides to cfg.
func LoadFromEnv(cfg *Config) error {
	var errs []error

	if v := os.Getenv(envVarPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv(envVarPrefix + "INDENT_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid integer for %sINDENT_SIZE: %q", envVarPrefix, v))
		} else {
			cfg.IndentSize = n
		}
	}

	if v := os.Getenv(envVarPrefix + "USE_TABS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid boolean for %sUSE_TABS: %q", envVarPrefix, v))
		} else {
			cfg.UseTabs = b
		}
	}

	if v := os.Getenv(envVarPrefix + "HOVER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid boolean for %sHOVER: %q", envVarPrefix, v))
		} else {
			cfg.Hover = b
		}
	}

	if v := os.Getenv(envVarPrefix + "REFACTORINGS"); v != "" {
		cfg.Refactorings = parseSliceValue(v)
	}

	return errors.Join(errs...)
}

// parseSliceValue splits a comma-separated list, trimming each element.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// ApplySettings returns a copy of cfg updated from editor settings. Settings
// are the decoded JSON of workspace/didChangeConfiguration; only the
// csrefactor section is read and unknown keys are ignored.
func ApplySettings(cfg *Config, settings any) (*Config, error) {
	out := cfg.Clone()

	root, ok := settings.(map[string]any)
	if !ok {
		return out, nil
	}

	section, ok := root[SettingsSection].(map[string]any)
	if !ok {
		return out, nil
	}

	if v, ok := section["logLevel"].(string); ok {
		out.LogLevel = v
	}

	if v, ok := section["indentSize"].(float64); ok {
		out.IndentSize = int(v)
	}

	if v, ok := section["useTabs"].(bool); ok {
		out.UseTabs = v
	}

	if v, ok := section["hover"].(bool); ok {
		out.Hover = v
	}

	if v, ok := section["maxProblems"].(float64); ok {
		out.MaxProblems = int(v)
	}

	if v, ok := section["refactorings"].([]any); ok {
		out.Refactorings = nil

		for _, item := range v {
			if id, ok := item.(string); ok {
				out.Refactorings = append(out.Refactorings, id)
			}
		}
	}

	if err := out.Validate(); err != nil {
		return cfg, err
	}

	return out, nil
}
