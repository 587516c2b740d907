package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relhook/pkg/cli/config"
	controller "github.com/m-mizutani/relhook/pkg/controller/http"
	"github.com/m-mizutani/relhook/pkg/domain/types"
	"github.com/m-mizutani/relhook/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// RunListener runs a local webhook receiver that verifies and logs release
// events sent by relhook
func RunListener(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		serverCfg config.Server
		githubCfg config.GitHub
		logger    *slog.Logger
	)

	flags := append(loggerCfg.Flags(), serverCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)

	app := &cli.Command{
		Name:    "relhook-listener",
		Usage:   "Receive and verify GitHub release webhooks locally",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			loggerCfg.Secrets = []string{githubCfg.WebhookSecret}

			var err error
			logger, err = loggerCfg.Configure(os.Stdout)
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return serve(ctx, logger, serverCfg, githubCfg)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}

func serve(ctx context.Context, logger *slog.Logger, serverCfg config.Server, githubCfg config.GitHub) error {
	logger.Info("Starting relhook listener",
		slog.String("addr", serverCfg.Addr),
	)

	webhookUC := usecase.NewWebhook(logger)

	server, err := controller.NewServer(
		webhookUC,
		controller.WithAddr(serverCfg.Addr),
		controller.WithWebhookSecret(githubCfg.WebhookSecret),
		controller.WithLogger(logger),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to create HTTP server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	case sig := <-sigChan:
		logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
	case err := <-serverErr:
		return goerr.Wrap(err, "HTTP server failed", goerr.V("addr", serverCfg.Addr))
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "failed to shutdown server gracefully")
	}

	logger.Info("Server shutdown complete")
	return nil
}
