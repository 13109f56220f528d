// Reelcorr - Item Similarity from Rating Correlation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelcorr

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*RebuildService)(nil)

type countingRebuilder struct {
	calls atomic.Int32
	err   error
	done  chan struct{}
}

func newCountingRebuilder(err error) *countingRebuilder {
	return &countingRebuilder{err: err, done: make(chan struct{}, 16)}
}

func (c *countingRebuilder) Rebuild(ctx context.Context) error {
	c.calls.Add(1)
	c.done <- struct{}{}
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("rebuild context has no deadline")
	}
	return c.err
}

func waitRebuild(t *testing.T, c *countingRebuilder) {
	t.Helper()
	select {
	case <-c.done:
	case <-time.After(2 * time.Second):
		t.Fatal("rebuild not called")
	}
}

func TestRebuildService_Trigger(t *testing.T) {
	t.Parallel()

	rebuilder := newCountingRebuilder(nil)
	trigger := make(chan struct{})
	svc := NewRebuildService(rebuilder, RebuildConfig{Trigger: trigger}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	trigger <- struct{}{}
	waitRebuild(t, rebuilder)
	trigger <- struct{}{}
	waitRebuild(t, rebuilder)

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
	if n := rebuilder.calls.Load(); n != 2 {
		t.Errorf("rebuilds = %d, want 2", n)
	}
}

func TestRebuildService_IntervalAndErrors(t *testing.T) {
	t.Parallel()

	// Failing rebuilds are logged and the service keeps running.
	rebuilder := newCountingRebuilder(errors.New("titles file missing"))
	svc := NewRebuildService(rebuilder, RebuildConfig{Interval: 10 * time.Millisecond}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	waitRebuild(t, rebuilder)
	waitRebuild(t, rebuilder)

	cancel()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestRebuildService_ClosedTrigger(t *testing.T) {
	t.Parallel()

	rebuilder := newCountingRebuilder(nil)
	trigger := make(chan struct{})
	close(trigger)
	svc := NewRebuildService(rebuilder, RebuildConfig{Trigger: trigger}, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if n := rebuilder.calls.Load(); n != 0 {
		t.Errorf("closed trigger caused %d rebuilds", n)
	}
}

func TestRebuildFunc(t *testing.T) {
	t.Parallel()

	called := false
	var r Rebuilder = RebuildFunc(func(context.Context) error {
		called = true
		return nil
	})
	if err := r.Rebuild(context.Background()); err != nil || !called {
		t.Errorf("RebuildFunc: err=%v called=%v", err, called)
	}

	svc := NewRebuildService(r, RebuildConfig{}, zerolog.Nop())
	if svc.config.Timeout != 10*time.Minute || svc.String() != "rebuild-service" {
		t.Errorf("defaults: timeout %v name %q", svc.config.Timeout, svc.String())
	}
}
