/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package futures

import (
	"fmt"
	"time"

	"github.com/onsi/gomega/format"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// errorValidator decides whether the cause of an exceptional settlement
// satisfies the expectation, and names that expectation for diagnostics.
type errorValidator struct {
	accept      func(error) bool
	description string
}

// WillFailMatcher blocks the calling goroutine until the deferred value
// settles or the wait budget elapses, then verifies that the settlement
// was exceptional with a cause accepted by the validator.
//
// An interrupted wait is not a mismatch: Match returns a non-nil error,
// which the assertion framework reports as a failure that aborts the
// test.
type WillFailMatcher struct {
	validator errorValidator
	budget    time.Duration
	interrupt <-chan struct{}
	log       Logger
}

// WithInterrupt returns a copy of the matcher whose wait additionally
// ends when interrupt fires. The receiver is left untouched.
func (m *WillFailMatcher) WithInterrupt(interrupt <-chan struct{}) *WillFailMatcher {
	dup := *m
	dup.interrupt = interrupt
	return &dup
}

// WithLogger returns a copy of the matcher which reports wait outcomes
// through log. The receiver is left untouched.
func (m *WillFailMatcher) WithLogger(log Logger) *WillFailMatcher {
	dup := *m
	dup.log = log
	return &dup
}

func (m *WillFailMatcher) Match(actual interface{}) (bool, error) {
	v, err := toValue(actual)
	if err != nil {
		return false, err
	}

	o := await(v, m.budget, m.interrupt)
	m.log.Debug("wait finished",
		zap.Stringer("outcome", o.kind),
		zap.Duration("budget", m.budget),
	)

	switch o.kind {
	case interrupted:
		return false, errors.New("interrupted while waiting for the deferred value to settle")
	case settledError:
		return m.validator.accept(o.cause), nil
	default:
		return false, nil
	}
}

func (m *WillFailMatcher) FailureMessage(actual interface{}) string {
	expectation := fmt.Sprintf("to fail within %v with: %s", m.budget, m.validator.description)
	v, err := toValue(actual)
	if err != nil {
		return format.Message(actual, expectation)
	}
	if !settled(v) {
		return format.Message(actual, expectation) +
			fmt.Sprintf("\nbut it did not settle within %v", m.budget)
	}
	value, cause := v.Result()
	if cause == nil {
		return format.Message(actual, expectation) +
			"\nbut it did not settle exceptionally; it resolved with:\n" +
			format.Object(value, 1)
	}
	// %+v renders wrap chains with their stack traces when present.
	return format.Message(actual, expectation) +
		fmt.Sprintf("\nbut it failed with a different error:\n%+v", cause)
}

func (m *WillFailMatcher) NegatedFailureMessage(actual interface{}) string {
	return format.Message(actual,
		fmt.Sprintf("not to fail within %v with: %s", m.budget, m.validator.description))
}
