/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package futures

import (
	"fmt"
	"time"

	"github.com/onsi/gomega/format"
	"go.uber.org/zap"
)

// WillNotCompleteMatcher blocks the calling goroutine for the full wait
// budget and matches only if the deferred value is still pending when
// the wait ends. Any settlement before then, regular or exceptional, is
// a mismatch.
//
// Unlike WillFailMatcher, an interrupted wait is reported as an ordinary
// mismatch rather than an error.
type WillNotCompleteMatcher struct {
	budget    time.Duration
	interrupt <-chan struct{}
	log       Logger
}

// WithInterrupt returns a copy of the matcher whose wait additionally
// ends when interrupt fires. The receiver is left untouched.
func (m *WillNotCompleteMatcher) WithInterrupt(interrupt <-chan struct{}) *WillNotCompleteMatcher {
	dup := *m
	dup.interrupt = interrupt
	return &dup
}

// WithLogger returns a copy of the matcher which reports wait outcomes
// through log. The receiver is left untouched.
func (m *WillNotCompleteMatcher) WithLogger(log Logger) *WillNotCompleteMatcher {
	dup := *m
	dup.log = log
	return &dup
}

func (m *WillNotCompleteMatcher) Match(actual interface{}) (bool, error) {
	v, err := toValue(actual)
	if err != nil {
		return false, err
	}

	o := await(v, m.budget, m.interrupt)
	m.log.Debug("wait finished",
		zap.Stringer("outcome", o.kind),
		zap.Duration("budget", m.budget),
	)
	if o.kind == interrupted {
		m.log.Warn("wait interrupted before the budget elapsed",
			zap.Duration("budget", m.budget),
		)
	}

	return o.kind == timedOut, nil
}

func (m *WillNotCompleteMatcher) FailureMessage(actual interface{}) string {
	expectation := fmt.Sprintf("not to settle within %v", m.budget)
	v, err := toValue(actual)
	if err != nil {
		return format.Message(actual, expectation)
	}
	if !settled(v) {
		if signalled(m.interrupt) {
			return format.Message(actual, expectation) +
				"\nbut the wait was interrupted before the budget elapsed"
		}
		return format.Message(actual, expectation)
	}
	value, cause := v.Result()
	if cause != nil {
		return format.Message(actual, expectation) +
			fmt.Sprintf("\nbut it settled exceptionally with: %v", cause)
	}
	return format.Message(actual, expectation) +
		"\nbut it resolved with:\n" +
		format.Object(value, 1)
}

func (m *WillNotCompleteMatcher) NegatedFailureMessage(actual interface{}) string {
	return format.Message(actual, fmt.Sprintf("to settle within %v", m.budget))
}
