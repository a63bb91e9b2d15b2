// Package config loads csrefactor settings from project files, the
// environment and the editor.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// Refactoring identifiers accepted in Config.Refactorings.
const (
	FieldFromParameter = "field-from-parameter"
	CopyConstructor    = "copy-constructor"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// knownRefactorings lists the identifiers Validate accepts.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownRefactorings = []string{FieldFromParameter, CopyConstructor}

// Config holds server and CLI settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"logLevel"`

	// IndentSize is the number of spaces per indentation level in generated code.
	IndentSize int `yaml:"indent_size" json:"indentSize"`

	// UseTabs indents generated code with tabs instead of spaces.
	UseTabs bool `yaml:"use_tabs" json:"useTabs"`

	// Refactorings lists enabled refactoring identifiers. Empty enables all.
	Refactorings []string `yaml:"refactorings" json:"refactorings"`

	// Hover enables the string literal offset hover.
	Hover bool `yaml:"hover" json:"hover"`

	// MaxProblems limits the number of diagnostics published per document.
	MaxProblems int `yaml:"max_problems" json:"maxProblems"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		IndentSize:  4,
		Hover:       true,
		MaxProblems: 100,
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	out.Refactorings = slices.Clone(c.Refactorings)

	return &out
}

// Indent returns the indentation unit for generated code.
func (c *Config) Indent() string {
	if c.UseTabs {
		return "\t"
	}

	return strings.Repeat(" ", c.IndentSize)
}

// Enabled reports whether the refactoring with the given identifier is on.
func (c *Config) Enabled(id string) bool {
	return len(c.Refactorings) == 0 || slices.Contains(c.Refactorings, id)
}

// Validate checks c for values the server cannot use.
func (c *Config) Validate() error {
	var errs []error

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel))
	}

	if c.IndentSize < 1 || c.IndentSize > 16 {
		errs = append(errs, fmt.Errorf("%w: indent_size %d out of range 1..16", ErrInvalid, c.IndentSize))
	}

	if c.MaxProblems < 0 {
		errs = append(errs, fmt.Errorf("%w: max_problems must not be negative", ErrInvalid))
	}

	for _, id := range c.Refactorings {
		if !slices.Contains(knownRefactorings, id) {
			errs = append(errs, fmt.Errorf("%w: unknown refactoring %q", ErrInvalid, id))
		}
	}

	return errors.Join(errs...)
}
