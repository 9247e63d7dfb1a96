package device

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var errTornDown = errors.New("session torn down")

// endure calls fn until it succeeds, waiting retryDelay between attempts, at most maxAttempts times.
// Liveness of sess is checked before every attempt and after every wait.
func (c *Controller) endure(ctx context.Context, sess *session, fn func(context.Context) error) (attempts int, err error) {
	for {
		if !c.alive(sess) {
			return attempts, errTornDown
		}
		attempts++
		err = fn(ctx)
		if err == nil {
			return attempts, nil
		}
		if !c.alive(sess) {
			return attempts, errTornDown
		}
		if attempts >= c.maxAttempts {
			return attempts, fmt.Errorf("%w after %d attempts: %w", ErrDeviceUnreachable, attempts, err)
		}
		c.logger.Debug("device not ready, retrying",
			zap.Int("attempt", attempts), zap.Duration("delay", c.retryDelay), zap.Error(err))

		if err := c.sleep(ctx, c.retryDelay); err != nil {
			if !c.alive(sess) {
				return attempts, errTornDown
			}
			return attempts, err
		}
	}
}
