// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/tomtom215/stylist/internal/supervisor"
)

type blockingService struct{}

func (blockingService) Serve(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (blockingService) String() string { return "blocking" }

func TestAwaitTree_ReturnsAfterCancel(t *testing.T) {
	tree, err := supervisor.NewSupervisorTree(slog.New(slog.NewTextHandler(io.Discard, nil)), supervisor.TreeConfig{
		ShutdownTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("NewSupervisorTree: %v", err)
	}
	tree.AddMaintenanceService(blockingService{})
	tree.AddAPIService(blockingService{})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	done := make(chan error, 1)
	go func() { done <- awaitTree(ctx, errCh, 2*time.Second) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("awaitTree() = %v, want nil or context.Canceled", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("awaitTree blocked after the tree stopped")
	}
}

func TestAwaitTree_TreeErrorBeforeCancel(t *testing.T) {
	errCh := make(chan error, 1)
	errCh <- errors.New("root supervisor failed")

	err := awaitTree(context.Background(), errCh, time.Second)
	if err == nil || err.Error() != "root supervisor failed" {
		t.Errorf("awaitTree() = %v, want the tree error", err)
	}
}

func TestAwaitTree_BoundedByTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Nothing is ever sent, as with a tree stuck in shutdown.
	errCh := make(chan error)

	start := time.Now()
	err := awaitTree(ctx, errCh, 50*time.Millisecond)
	if !errors.Is(err, errShutdownTimeout) {
		t.Errorf("awaitTree() = %v, want errShutdownTimeout", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("awaitTree took %v, want about 50ms", elapsed)
	}
}
