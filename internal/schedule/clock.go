// Package schedule holds the time computations behind the prayer countdown and
// the Sehri reminder. Nothing in here reads the wall clock directly; callers
// inject now through a Clock.
package schedule

import (
	"context"
	"time"
)

// Clock returns the current instant.
type Clock func() time.Time

// SystemClock reads the wall clock.
var SystemClock Clock = time.Now

// Every calls fn with clock() immediately and then once per interval until ctx
// is done.
func Every(ctx context.Context, interval time.Duration, clock Clock, fn func(now time.Time)) {
	fn(clock())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			fn(clock())
		}
	}
}
