package bank

import (
	"context"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// EndOfDayRunner fans settlement out over a worker pool. Every account's
// end-of-day rule is self-contained (transfers never happen inside
// settlement), so accounts can settle concurrently under their own locks
// without any cross-account ordering.
type EndOfDayRunner struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// NewEndOfDayRunner creates a runner backed by a pool of the given size
func NewEndOfDayRunner(logger *slog.Logger, size int) (*EndOfDayRunner, error) {
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, err
	}
	return &EndOfDayRunner{
		pool:   pool,
		logger: logger,
	}, nil
}

// Run settles every account of the bank exactly once and blocks until all
// settlements finish. A cancelled context stops submitting new accounts;
// already submitted ones still complete.
func (r *EndOfDayRunner) Run(ctx context.Context, b *Bank) error {
	ids := b.AccountIDs()
	r.logger.Info("starting end-of-day settlement", "accounts", len(ids), "pool_size", r.pool.Cap())

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			r.logger.Warn("end-of-day settlement interrupted", "settled_before_cancel", true)
			wg.Wait()
			return err
		}

		accountID := id
		wg.Add(1)
		submitErr := r.pool.Submit(func() {
			defer wg.Done()
			if err := b.SettleAccount(accountID); err != nil {
				r.logger.Error("failed to settle account", "account_id", accountID, "error", err)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			r.logger.Error("failed to submit settlement task", "account_id", accountID, "error", submitErr)
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
		}
	}

	wg.Wait()
	r.logger.Info("end-of-day settlement finished", "accounts", len(ids))
	return firstErr
}

// Running returns the number of busy workers
func (r *EndOfDayRunner) Running() int {
	return r.pool.Running()
}

// Shutdown releases the worker pool
func (r *EndOfDayRunner) Shutdown() {
	r.logger.Info("shutting down settlement pool", "running_workers", r.pool.Running())
	r.pool.Release()
}
