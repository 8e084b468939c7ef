/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package completable provides a minimal settle-once deferred value. It
// exists for the producer side of the matcher test suites and doubles as
// a reference implementation of the futures.Value contract; the matchers
// themselves never depend on it.
package completable

import (
	"context"
	"sync"
)

// Future is a deferred value which settles at most once, with either a
// result or an error. The zero value is not usable, construct with New.
type Future struct {
	mutex sync.Mutex
	doneC chan struct{}
	value interface{}
	cause error
}

func New() *Future {
	return &Future{
		doneC: make(chan struct{}),
	}
}

// Complete resolves the future with value. It reports whether this call
// settled the future; once settled, later calls have no effect.
func (f *Future) Complete(value interface{}) bool {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.isSettled() {
		return false
	}
	f.value = value
	close(f.doneC)
	return true
}

// Fail settles the future exceptionally with cause, which must not be
// nil. It reports whether this call settled the future.
func (f *Future) Fail(cause error) bool {
	if cause == nil {
		panic("completable: cause must not be nil")
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.isSettled() {
		return false
	}
	f.cause = cause
	close(f.doneC)
	return true
}

// Done returns a channel which is closed once the future settles.
func (f *Future) Done() <-chan struct{} {
	return f.doneC
}

// Result returns the settled result or cause. Both are zero while the
// future is still pending.
func (f *Future) Result() (interface{}, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.value, f.cause
}

// Settled reports whether the future has settled, without blocking.
func (f *Future) Settled() bool {
	select {
	case <-f.doneC:
		return true
	default:
		return false
	}
}

// Await blocks until the future settles or the context ends, whichever
// happens first.
func (f *Future) Await(ctx context.Context) (interface{}, error) {
	select {
	case <-f.doneC:
		return f.Result()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *Future) isSettled() bool {
	select {
	case <-f.doneC:
		return true
	default:
		return false
	}
}
