package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"radphys/config"
	"radphys/server"
)

type App struct {
	Config *config.Config
}

func New(cfg *config.Config) *App {
	return &App{Config: cfg}
}

// Run serves the pages until ctx is cancelled, then shuts the HTTP server
// down gracefully.
func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()

	a.setupLogging()
	log.WithFields(log.Fields{
		"port":     a.Config.HTTPPort,
		"concepts": a.Config.Concepts,
		"logFile":  a.Config.LogFile,
	}).Debug("App started")

	srv, err := server.New(a.Config)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	httpServer := &http.Server{
		Addr:    ":" + a.Config.HTTPPort,
		Handler: srv.Handler(),
	}

	errChan := make(chan error, 1)
	go func() {
		log.WithField("addr", httpServer.Addr).Info("Serving pages")
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

func (a *App) setupLogging() {
	if a.Config.Debug {
		log.SetLevel(log.DebugLevel)
	}
	if a.Config.LogFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   a.Config.LogFile,
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}
}
