// Package track delivers best-effort scan notifications to the backend.
// Delivery runs on a small worker pool behind a bounded queue so the render
// path never waits on analytics; failures are logged and dropped.
package track

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultWorkers   = 2
	defaultQueueSize = 64
	deliveryTimeout  = 10 * time.Second
)

// Sender is the backend call a tracker drains its queue into.
type Sender interface {
	TrackScan(ctx context.Context, code string) error
}

// Tracker queues scan events and delivers them in the background.
//
// Close must be called on shutdown; it stops intake, drains the queue and
// waits for in-flight deliveries.
type Tracker struct {
	sender  Sender
	queue   chan string
	group   *errgroup.Group
	cancel  context.CancelFunc
	logger  *slog.Logger
	workers int
}

// Option is a functional option for configuring a Tracker.
type Option func(*Tracker)

// WithWorkers sets the delivery worker count.
func WithWorkers(n int) Option {
	return func(t *Tracker) {
		if n > 0 {
			t.workers = n
		}
	}
}

// WithQueueSize sets the pending-event buffer size.
func WithQueueSize(n int) Option {
	return func(t *Tracker) {
		if n > 0 {
			t.queue = make(chan string, n)
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) { t.logger = logger }
}

// New creates and starts a Tracker.
func New(sender Sender, opts ...Option) (*Tracker, error) {
	if sender == nil {
		return nil, errors.New("sender is required")
	}
	t := &Tracker{
		sender:  sender,
		queue:   make(chan string, defaultQueueSize),
		logger:  slog.Default(),
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(t)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.group, ctx = errgroup.WithContext(ctx)
	for i := 0; i < t.workers; i++ {
		t.group.Go(func() error {
			t.run(ctx)
			return nil
		})
	}
	return t, nil
}

// Track enqueues a scan event. It never blocks: when the queue is full the
// event is dropped, which is acceptable for analytics.
func (t *Tracker) Track(code string) {
	select {
	case t.queue <- code:
	default:
		t.logger.Warn("scan tracking queue full, dropping event", "code", code)
	}
}

func (t *Tracker) run(ctx context.Context) {
	for {
		select {
		case code, ok := <-t.queue:
			if !ok {
				return
			}
			t.deliver(code)
		case <-ctx.Done():
			// Drain what is already queued before exiting.
			for {
				select {
				case code, ok := <-t.queue:
					if !ok {
						return
					}
					t.deliver(code)
				default:
					return
				}
			}
		}
	}
}

func (t *Tracker) deliver(code string) {
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()
	if err := t.sender.TrackScan(ctx, code); err != nil {
		t.logger.Debug("scan tracking failed", "code", code, "error", err)
	}
}

// Close stops the tracker and waits for pending deliveries. Safe to call once.
func (t *Tracker) Close() {
	t.cancel()
	_ = t.group.Wait()
}
