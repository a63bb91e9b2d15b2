package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/CWBudde/go-csrefactor-lsp/internal/config"
	"github.com/CWBudde/go-csrefactor-lsp/internal/frontend/csharp"
	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
	"github.com/CWBudde/go-csrefactor-lsp/internal/refactor"
	"github.com/CWBudde/go-csrefactor-lsp/internal/symbols"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "csrefactor-lsp",
	Short: "C# refactoring language server",
	Long: `csrefactor-lsp offers C# refactorings over the Language Server Protocol:
copy constructors from a source type's properties, field initialization from
a new constructor parameter, and string literal offsets.

The analysis commands run the same engine on a single file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .csrefactor.yaml searched upward)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(offsetCmd)
	rootCmd.AddCommand(refactorCmd)
	rootCmd.AddCommand(snippetCmd)
	rootCmd.AddCommand(versionCmd)
}

// commandContext returns the command's context, or a background context
// when the command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// loadConfig resolves the configuration for cmd and applies the log level flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	result, err := config.Load(commandContext(cmd), config.LoadOptions{ExplicitPath: configPath})
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := result.Config
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

// newLogger returns a stderr logger configured from cfg.
func newLogger(cfg *config.Config) *log.Logger {
	logger := logging.New(cfg.LogLevel)
	logging.SetDefault(logger)

	return logger
}

// fileRequest parses path and builds a refactoring request at offset.
func fileRequest(ctx context.Context, cfg *config.Config, path, offsetArg string) (refactor.Request, error) {
	offset, err := strconv.Atoi(offsetArg)
	if err != nil {
		return refactor.Request{}, fmt.Errorf("invalid offset %q: %w", offsetArg, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return refactor.Request{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if offset < 0 || offset > len(data) {
		return refactor.Request{}, fmt.Errorf("offset %d out of range (0-%d)", offset, len(data))
	}

	res, err := csharp.Parse(ctx, string(data))
	if err != nil {
		return refactor.Request{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(res.Errors) > 0 {
		logging.FromContext(ctx).Warn("source has syntax errors",
			logging.FieldPath, path,
			logging.FieldSyntaxErrors, len(res.Errors))
	}

	tree := res.Tree.WithIndent(cfg.Indent())

	return refactor.Request{Tree: tree, Symbols: symbols.Build(tree), Offset: offset}, nil
}

// prepare loads the config, installs the logger on the command context and
// builds the request for a FILE OFFSET command.
func prepare(cmd *cobra.Command, args []string) (context.Context, *config.Config, refactor.Request, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, refactor.Request{}, err
	}

	ctx := logging.WithLogger(commandContext(cmd), newLogger(cfg))

	req, err := fileRequest(ctx, cfg, args[0], args[1])
	if err != nil {
		return nil, nil, refactor.Request{}, err
	}

	return ctx, cfg, req, nil
}
