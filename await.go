/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package futures

import (
	"time"
)

type outcomeKind int

const (
	settledValue outcomeKind = iota
	settledError
	timedOut
	interrupted
)

func (k outcomeKind) String() string {
	switch k {
	case settledValue:
		return "settled-value"
	case settledError:
		return "settled-error"
	case timedOut:
		return "timed-out"
	case interrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// outcome is the tagged result of one bounded wait.
type outcome struct {
	kind  outcomeKind
	value interface{}
	cause error
}

// await blocks the calling goroutine until the value settles, the wait
// budget elapses, or interrupt fires, whichever happens first. A nil
// interrupt channel never fires. The wakeup mechanism is the value's own
// Done channel; await creates no goroutines and owns no timers beyond
// the budget.
func await(v Value, budget time.Duration, interrupt <-chan struct{}) outcome {
	select {
	case <-v.Done():
		return settledOutcome(v)
	default:
	}

	timer := time.NewTimer(budget)
	defer timer.Stop()

	select {
	case <-v.Done():
		return settledOutcome(v)
	case <-timer.C:
		return outcome{kind: timedOut}
	case <-interrupt:
		return outcome{kind: interrupted}
	}
}

func settledOutcome(v Value) outcome {
	value, cause := v.Result()
	if cause != nil {
		return outcome{kind: settledError, cause: cause}
	}
	return outcome{kind: settledValue, value: value}
}
