// Package batcher buffers items in the background and hands them to a flush callback
// in rate-limited batches.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Config describes when buffered items are flushed.
type Config[T any] struct {
	// Flush receives every non-empty batch. Errors are logged and the batch is dropped.
	Flush func(context.Context, []T) error
	// Size flushes as soon as this many items are buffered. Ignored when Coalesce is set.
	Size int
	// Interval flushes whatever is buffered at least this often.
	Interval time.Duration
	// PerSecond caps the number of Flush calls per second.
	PerSecond int
	// Coalesce keeps only the newest item, so every flush carries a single value.
	Coalesce bool
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	cfg    Config[T]
	items  chan T
	rl     ratelimit.Limiter
	logger *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. Non-positive sizes and rates fall back to one.
func New[T any](logger *zap.Logger, cfg Config[T]) *Batcher[T] {
	if cfg.Size <= 0 || cfg.Coalesce {
		cfg.Size = 1
	}
	if cfg.PerSecond <= 0 {
		cfg.PerSecond = 1
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	queue := cfg.Size * 2
	if cfg.Coalesce {
		queue = 8
	}
	return &Batcher[T]{
		cfg:    cfg,
		items:  make(chan T, queue),
		rl:     ratelimit.New(cfg.PerSecond),
		logger: logger,
		stop:   make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and waits for the loop to exit. It is safe to call twice.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item, respecting context cancellation. A stopped batcher returns context.Canceled.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.Size)
	for {
		select {
		case <-ctx.Done():
			buf = b.drain(buf)
			b.flush(context.WithoutCancel(ctx), buf)
			return

		case <-b.stop:
			buf = b.drain(buf)
			b.flush(context.WithoutCancel(ctx), buf)
			return

		case item := <-b.items:
			buf = b.push(buf, item)
			if !b.cfg.Coalesce && len(buf) >= b.cfg.Size {
				buf = b.flush(ctx, buf)
			}

		case <-ticker.C:
			buf = b.flush(ctx, buf)
		}
	}
}

func (b *Batcher[T]) push(buf []T, item T) []T {
	if b.cfg.Coalesce {
		return append(buf[:0], item)
	}
	return append(buf, item)
}

// flush hands buf to the callback and returns it emptied.
func (b *Batcher[T]) flush(ctx context.Context, buf []T) []T {
	if len(buf) == 0 {
		return buf
	}

	b.rl.Take()
	if err := b.cfg.Flush(ctx, buf); err != nil {
		b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
	} else {
		b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
	}
	return buf[:0]
}

// drain moves items already queued into buf so shutdown does not drop them.
func (b *Batcher[T]) drain(buf []T) []T {
	for {
		select {
		case item := <-b.items:
			buf = b.push(buf, item)
		default:
			return buf
		}
	}
}
