package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seedworks/launchpad/internal/api"
	"github.com/seedworks/launchpad/internal/config"
	"github.com/seedworks/launchpad/internal/domain/canvas"
	"github.com/seedworks/launchpad/internal/domain/chat"
	"github.com/seedworks/launchpad/internal/domain/funding"
	"github.com/seedworks/launchpad/internal/domain/idea"
	"github.com/seedworks/launchpad/internal/domain/pitch"
	"github.com/seedworks/launchpad/internal/domain/recruit"
	"github.com/seedworks/launchpad/internal/mcp"
	"github.com/seedworks/launchpad/internal/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == "stdio" {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	store := state.New(state.Seed{
		UserName: cfg.Seed.UserName,
		Tokens:   cfg.Seed.Tokens,
	}, logger)

	// Tool callers get their reply in the same call, so the pacing delay
	// only applies on the HTTP surface.
	chatOpts := []chat.Option{}
	if cfg.Transport.Mode == "http" {
		chatOpts = append(chatOpts, chat.WithReplyDelay(
			time.Duration(cfg.Chat.ReplyDelayMinMS)*time.Millisecond,
			time.Duration(cfg.Chat.ReplyDelayMaxMS)*time.Millisecond,
		))
	}

	ideaSvc := idea.NewService(store, logger)
	fundingSvc := funding.NewService(store, logger)
	chatSvc := chat.NewService(store, logger, chatOpts...)
	pitchSvc := pitch.NewService(store, logger)
	canvasSvc := canvas.NewService(store, logger)
	recruitSvc := recruit.NewService(store, logger)

	if cfg.Transport.Mode == "stdio" {
		mcpServer := mcp.NewServer(mcp.Config{
			Services: mcp.Services{
				Ideas:   ideaSvc,
				Funding: fundingSvc,
				Chat:    chatSvc,
				Pitch:   pitchSvc,
				Canvas:  canvasSvc,
				Recruit: recruitSvc,
			},
			Logger: logger,
		})
		runStdioMode(logger, mcpServer)
		return
	}

	handler := api.NewHandler(ideaSvc, fundingSvc, chatSvc, pitchSvc, canvasSvc, recruitSvc, logger)
	runHTTPMode(logger, api.NewRouter(handler), cfg.Server.Host, cfg.Server.Port)
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	transport := &sdkmcp.StdioTransport{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or the context is canceled.
	if err := mcpServer.Run(ctx, transport); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, handler http.Handler, host string, port int) {
	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
