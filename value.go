/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package futures

import (
	"github.com/pkg/errors"
)

// Value is the read-only view of a deferred computation which the
// matchers observe. A value settles at most once, transitioning
// irreversibly from pending to either a result or an error. Producing
// and settling the value is the caller's business; the matchers never
// mutate it.
type Value interface {
	// Done returns a channel which is closed once the value settles.
	Done() <-chan struct{}

	// Result returns the settled result or the cause of the exceptional
	// settlement. It may only be consulted after the channel returned by
	// Done has been closed.
	Result() (interface{}, error)
}

// settled performs a single non-blocking read of the value's state.
func settled(v Value) bool {
	select {
	case <-v.Done():
		return true
	default:
		return false
	}
}

// signalled reports whether the channel has fired. A nil channel never
// fires.
func signalled(ch <-chan struct{}) bool {
	if ch == nil {
		return false
	}
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func toValue(actual interface{}) (Value, error) {
	if actual == nil {
		return nil, errors.New("matcher expects a futures.Value, got nil")
	}
	v, ok := actual.(Value)
	if !ok {
		return nil, errors.Errorf("matcher expects a futures.Value, got %T", actual)
	}
	return v, nil
}
