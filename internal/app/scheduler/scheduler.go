// Package scheduler drives the periodic pet tick.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const DefaultInterval = time.Hour

// Ticker is the part of *time.Ticker the scheduler needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type stdTicker struct{ t *time.Ticker }

func (s stdTicker) C() <-chan time.Time { return s.t.C }
func (s stdTicker) Stop() { s.t.Stop() }

// Scheduler runs OnTick every Interval on its own goroutine. At most one
// timer is active: Start replaces a running one.
type Scheduler struct {
	Interval  time.Duration
	OnTick    func(ctx context.Context)
	NewTicker func(time.Duration) Ticker
	Logger    *slog.Logger

	mu    sync.Mutex
	gen   uint64
	stop  func()
	done  <-chan struct{}
	ticks atomic.Uint64
}

// Start begins ticking and returns a disposer. A running timer is stopped
// first, so ticks never double up. The disposer is idempotent and returns
// only after the loop has exited; no tick runs after it returns. It must not
// be called from inside OnTick.
func (s *Scheduler) Start(ctx context.Context) (stop func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		s.stop()
	}

	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	newTicker := s.NewTicker
	if newTicker == nil {
		newTicker = func(d time.Duration) Ticker { return stdTicker{time.NewTicker(d)} }
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := newTicker(interval)
	go s.loop(loopCtx, ticker, done)

	s.gen++
	gen := s.gen
	halt := sync.OnceFunc(func() {
		cancel()
		<-done
	})
	s.stop = halt
	s.done = done
	s.log().Info("tick scheduler started", "interval", interval)

	return func() {
		halt()
		s.mu.Lock()
		if s.gen == gen {
			s.stop = nil
			s.done = nil
		}
		s.mu.Unlock()
	}
}

// Running reports whether a timer is active. A loop that exited because its
// parent context was canceled is not running.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop == nil {
		return false
	}
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}

// Ticks counts every tick fired since the scheduler was created.
func (s *Scheduler) Ticks() uint64 { return s.ticks.Load() }

func (s *Scheduler) loop(ctx context.Context, ticker Ticker, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log().Info("tick scheduler stopped", "ticks", s.ticks.Load())
			return
		case <-ticker.C():
			// A cancel racing with a tick wins.
			if ctx.Err() != nil {
				continue
			}
			s.ticks.Add(1)
			if s.OnTick != nil {
				s.OnTick(ctx)
			}
		}
	}
}

func (s *Scheduler) log() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
