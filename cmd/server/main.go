package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/p3psi-boo/focalboard-mcp/internal/adapter"
	"github.com/p3psi-boo/focalboard-mcp/internal/config"
	"github.com/p3psi-boo/focalboard-mcp/internal/logger"
	"github.com/p3psi-boo/focalboard-mcp/internal/mcp"
	"github.com/p3psi-boo/focalboard-mcp/internal/tools"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const shutdownTimeout = 5 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("focalboard-mcp")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	board, err := adapter.NewFocalboardAdapter(cfg.Focalboard, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating board adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Focalboard.Password != "" {
		result, err := board.Login(ctx, adapter.LoginParams{
			LoginID:  cfg.Focalboard.LoginID,
			Username: cfg.Focalboard.Username,
			Password: cfg.Focalboard.Password,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("startup login failed")
		}
		log.Info().Str("mode", string(result.Mode)).Msg("logged in at startup")
	}

	registry := tools.NewRegistry(board, cfg.Focalboard.TeamID, log)
	server := mcp.NewServer(mcp.ServerInfo{Name: "focalboard-mcp", Version: buildVersion}, registry)

	switch cfg.Transport.Mode {
	case config.TransportStdio:
		runStdio(ctx, server, log)
	case config.TransportHTTP:
		runHTTP(ctx, server, cfg.Transport, log)
	}

	// drop the remote session on the way out; the local state is gone
	// either way, so a failed remote revoke only gets a log line
	if board.Token() != "" {
		logoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := board.Logout(logoutCtx, ""); err != nil {
			log.Warn().Err(err).Msg("remote logout not acknowledged")
		}
	}

	log.Info().Msg("server shut down gracefully")
}

func runStdio(ctx context.Context, server *mcp.Server, log *logger.Logger) {
	transport := mcp.NewStdioTransport(server, os.Stdin, os.Stdout, log)
	if err := transport.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("stdio transport stopped")
	}
}

func runHTTP(ctx context.Context, server *mcp.Server, cfg config.Transport, log *logger.Logger) {
	transport := mcp.NewHTTPTransport(server, cfg.HTTPPort, cfg.HTTPPath, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- transport.RunServer()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("HTTP transport stopped")
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := transport.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP transport shutdown")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	// stdout carries the stdio protocol stream, so build info goes to stderr
	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
