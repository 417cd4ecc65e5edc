package app_test

import (
	"context"
	"testing"
	"time"

	"radphys/app"
	"radphys/config"
)

func TestRunStopsOnCancel(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	cfg.HTTPPort = "0" // random free port

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.New(cfg).Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestRunInvalidConcept(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	cfg.Concepts = []string{"alchemy"}

	if err := app.New(cfg).Run(context.Background()); err == nil {
		t.Fatal("expected error for invalid concept")
	}
}
