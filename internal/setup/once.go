package setup

import (
	"context"
	"sync"

	"github.com/bornholm/retrospect/internal/config"
)

// createFromConfigOnce memoizes a config-based constructor so that shared
// dependencies are only built once per run.
func createFromConfigOnce[T any](fn func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once  sync.Once
		value T
		err   error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			value, err = fn(ctx, conf)
		})

		return value, err
	}
}
