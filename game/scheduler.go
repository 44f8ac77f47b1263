package game

import (
	"context"
	"errors"
	"time"
)

// ErrStopped is returned by a step function to end RunFrames without error.
var ErrStopped = errors.New("game: stopped")

// RunFrames calls step once per frame interval until ctx is cancelled,
// maxFrames steps have run, or step returns an error.
//
// fps <= 0 runs steps back to back (the windowed loop is paced by raylib).
// maxFrames <= 0 means unlimited. A slow step delays the next one and
// missed ticks are dropped rather than queued.
//
// Returns nil when maxFrames is reached or step returns ErrStopped, and
// ctx.Err() when the context is cancelled.
func RunFrames(ctx context.Context, fps int, maxFrames int64, step func(frame int64) error) error {
	var tick <-chan time.Time
	if fps > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()
		tick = ticker.C
	}

	for frame := int64(0); maxFrames <= 0 || frame < maxFrames; frame++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}

		if err := step(frame); err != nil {
			if errors.Is(err, ErrStopped) {
				return nil
			}
			return err
		}
	}
	return nil
}
