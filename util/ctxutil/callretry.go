package ctxutil

import (
	"context"
	"fmt"
	"time"
)

// Returns fn result, or returns early on ctx cancel. A fn that doesn't return in time keeps running; lateFn (if not nil) receives its result.
func Call(ctx context.Context, prefix string, fn func() error, lateFn func(error)) error {
	buildErr := func(e error) error {
		if e == nil {
			return nil
		}
		return fmt.Errorf("%v: %w", prefix, e)
	}

	ch := make(chan error, 1)
	go func() {
		err := fn() // goroutine leaks if fn never returns
		select {
		case <-ctx.Done():
			if lateFn != nil {
				lateFn(buildErr(err))
			}
		default:
			ch <- err // won't block due to size 1 in chan
		}
	}()

	select {
	case err := <-ch:
		return buildErr(err)
	case <-ctx.Done():
		return buildErr(ctx.Err())
	}
}

//----------

// Calls fn until it succeeds or ctx is done. The last fn error is returned on cancel.
func Retry(ctx context.Context, sleep time.Duration, prefix string, fn func() error) error {
	for {
		err := fn()
		if err == nil {
			return nil
		}
		t := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			t.Stop()
			return fmt.Errorf("%v: %w", prefix, err)
		case <-t.C:
		}
	}
}
