package awsutil

import (
	"context"
	"math/rand"
	"time"
)

// JitteredExponentialBackoff sends on the returned channel immediately and
// then after sleeps that double from init up to max, each jittered by up to
// ±25%. The channel is closed when ctx is done, so cancel ctx to stop it:
//
//	ctx, cancel := context.WithCancel(ctx)
//	defer cancel()
//	for range JitteredExponentialBackoff(ctx, time.Second, 10*time.Second) {
//	}
func JitteredExponentialBackoff(ctx context.Context, init, max time.Duration) <-chan time.Duration {
	ch := make(chan time.Duration)
	go func() {
		defer close(ch)

		select {
		case ch <- 0: // fast on the happy path
		case <-ctx.Done():
			return
		}

		d := init
		for {
			var jitter time.Duration
			if d/2 > 0 {
				jitter = time.Duration(rand.Int63n(int64(d/2))) - d/4
			}

			timer := time.NewTimer(d + jitter)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return
			}
			select {
			case ch <- d + jitter:
			case <-ctx.Done():
				return
			}

			d *= 2
			if d > max {
				d = max
			}
		}
	}()
	return ch
}
