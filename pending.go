package sieve

import (
	"context"
	"slices"

	"github.com/pkg/errors"
)

// Pending is an in-flight catalogue fetch.
type Pending[V comparable] struct {
	done    chan struct{}
	options []Option[V]
	err     error
}

// Done is closed once the fetch has finished.
func (pnd *Pending[V]) Done() <-chan struct{} {
	return pnd.done
}

// Wait blocks until the fetch finishes or ctx is done.
func (pnd *Pending[V]) Wait(ctx context.Context) (options []Option[V], err error) {

	select {
	case <-pnd.done:
		options = slices.Clone(pnd.options)
		err = pnd.err
	case <-ctx.Done():
		err = errors.Wrap(ctx.Err(), "gave up waiting for options")
	}
	return
}

// unexported

func fetch[V comparable](ctx context.Context, name string, fn func(context.Context) ([]Option[V], error)) *Pending[V] {

	pnd := &Pending[V]{done: make(chan struct{})}
	if fn == nil {
		close(pnd.done)
		return pnd
	}

	go func() {
		defer close(pnd.done)

		options, err := fn(ctx)
		if err != nil {
			pnd.err = errors.Wrapf(err, "failed to fetch options for %s", name)
			return
		}
		pnd.options = unique(options)
	}()

	return pnd
}

// unique drops options whose value was already seen, keeping the first.
func unique[V comparable](options []Option[V]) []Option[V] {

	seen := make(map[V]bool, len(options))
	kept := make([]Option[V], 0, len(options))
	for _, opt := range options {
		if seen[opt.Value] {
			continue
		}
		seen[opt.Value] = true
		kept = append(kept, opt)
	}
	return kept
}
