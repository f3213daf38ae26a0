package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/clientes/internal/config"
	"github.com/umalmyha/clientes/internal/infra"
	"github.com/umalmyha/clientes/internal/repository"
	"github.com/umalmyha/clientes/internal/service"
	"github.com/umalmyha/clientes/pkg/db/executor"
)

const (
	httpPort               = 3000
	shutdownTimeout        = 10 * time.Second
	databaseConnectTimeout = 5 * time.Second
)

// @title       Clientes API
// @version     1.0
// @description CRUD over clientes table
// @host        localhost:3000
// @BasePath    /
func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	logger, err := infra.Logger(cfg.LogCfg)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), databaseConnectTimeout)
	defer cancel()

	pool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	customerRps := repository.NewPostgresCustomerRepository(executor.NewPgxExecutorProvider(pool))
	customerSvc := service.NewCustomerService(customerRps, logger)

	app, err := infra.Router(customerSvc, logger)
	if err != nil {
		return err
	}

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infof("starting server on port %d", httpPort)
		errorCh <- app.Start(fmt.Sprintf(":%d", httpPort))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to stop server gracefully - %w", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("shutting down the server, unexpected error occurred - %w", err)
		}
	}

	return nil
}
