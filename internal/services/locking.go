package services

import (
	"context"
	"errors"
	"time"

	"github.com/studyforge/backend/internal/lock"
	"go.uber.org/zap"
)

// Locker hands out short-lived per-key locks
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (lock.ReleaseFunc, error)
}

// withLock runs fn while holding key. A held key yields ErrBusy.
func withLock(ctx context.Context, locker Locker, logger *zap.Logger, key string, ttl time.Duration, fn func() error) error {
	release, err := locker.Acquire(ctx, key, ttl)
	if errors.Is(err, lock.ErrLocked) {
		return ErrBusy
	}
	if err != nil {
		return err
	}
	defer func() {
		// The request context may be gone by now
		if err := release(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("failed to release lock", zap.String("key", key), zap.Error(err))
		}
	}()
	return fn()
}
