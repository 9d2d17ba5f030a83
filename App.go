package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const ExitCodeMainError = 1

const shutdownTimeout = 5 * time.Second

func RunApp() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return RunAppContext(ctx, os.Getenv, os.Stderr)
}

// RunAppContext serves the API until ctx is cancelled or the listener fails
func RunAppContext(ctx context.Context, getenv func(string) string, logOutput io.Writer) error {
	gin.SetMode(gin.ReleaseMode)

	config, err := LoadConfig(getenv)
	if err != nil {
		return err
	}

	serviceContainer, err := BuildServiceContainer(config, logOutput)
	if err != nil {
		return err
	}
	defer serviceContainer.Database.Close()

	if err = serviceContainer.SheetService.Restore(); err != nil {
		return err
	}

	serviceContainer.WebhookDispatcher.Start()
	defer serviceContainer.WebhookDispatcher.Close()

	server := &http.Server{
		Addr:    config.ListenAddr,
		Handler: serviceContainer.Router,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	serviceContainer.Logger.Info("listening", "addr", config.ListenAddr)

	select {
	case err = <-serveErr:
		return err

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err = server.Shutdown(shutdownCtx)
		if serveErr := <-serveErr; !errors.Is(serveErr, http.ErrServerClosed) {
			err = errors.Join(err, serveErr)
		}

		serviceContainer.Logger.Info("stopped")
		return err
	}
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
