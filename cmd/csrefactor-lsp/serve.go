package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	glspserver "github.com/tliron/glsp/server"

	// Backend for the protocol logging done inside glsp.
	_ "github.com/tliron/commonlog/simple"

	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
	"github.com/CWBudde/go-csrefactor-lsp/internal/lsp"
	"github.com/CWBudde/go-csrefactor-lsp/internal/server"
)

var (
	tcpMode  bool
	tcpPort  int
	protoLog string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the language server",
	Long: `Run the language server over stdio, or over TCP with --tcp for debugging.

Diagnostics go to stderr. --protocol-log writes glsp's own JSON-RPC log to a file.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&tcpMode, "tcp", false, "Run server in TCP mode (for debugging)")
	serveCmd.Flags().IntVar(&tcpPort, "port", 8765, "TCP port to listen on (used with --tcp)")
	serveCmd.Flags().StringVar(&protoLog, "protocol-log", "", "Write the JSON-RPC protocol log to this file")
}

// protocolVerbosity maps a log level to commonlog verbosity.
func protocolVerbosity(level string) int {
	switch level {
	case "debug":
		return 2
	case "info":
		return 1
	default:
		return 0
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	var path *string
	if protoLog != "" {
		path = &protoLog
	}

	commonlog.Configure(protocolVerbosity(cfg.LogLevel), path)

	srv := server.New(cfg, logger)
	lsp.SetServer(srv)
	lsp.SetVersion(version)

	glspServer := glspserver.NewServer(lsp.NewHandler(), lsp.ServerName, cfg.LogLevel == "debug")

	if tcpMode {
		addr := fmt.Sprintf("127.0.0.1:%d", tcpPort)
		logger.Info("starting TCP server", logging.FieldAddress, addr, logging.FieldVersion, version)

		if err := glspServer.RunTCP(addr); err != nil {
			return fmt.Errorf("TCP server: %w", err)
		}

		return nil
	}

	logger.Info("starting stdio server", logging.FieldVersion, version)

	if err := glspServer.RunStdio(); err != nil {
		return fmt.Errorf("stdio server: %w", err)
	}

	return nil
}
