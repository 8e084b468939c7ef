/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package futures

import (
	"fmt"

	"github.com/onsi/gomega/format"
)

// HaveFailedMatcher verifies that a deferred value has already settled
// exceptionally with a cause of an expected kind. It performs a single
// non-blocking read of the value's state.
type HaveFailedMatcher struct {
	kind Kind
}

func (m *HaveFailedMatcher) Match(actual interface{}) (bool, error) {
	v, err := toValue(actual)
	if err != nil {
		return false, err
	}
	if !settled(v) {
		return false, nil
	}
	_, cause := v.Result()
	if cause == nil {
		return false, nil
	}
	return m.kind.Matches(cause), nil
}

func (m *HaveFailedMatcher) FailureMessage(actual interface{}) string {
	expectation := fmt.Sprintf("to have failed with: %s", m.kind)
	v, err := toValue(actual)
	if err != nil {
		return format.Message(actual, expectation)
	}
	if !settled(v) {
		return format.Message(actual, expectation) + "\nbut the value has not yet settled"
	}
	value, cause := v.Result()
	if cause == nil {
		return format.Message(actual, expectation) +
			"\nbut it did not settle exceptionally; it resolved with:\n" +
			format.Object(value, 1)
	}
	return format.Message(actual, expectation) +
		fmt.Sprintf("\nbut it failed with a different error: %v", cause)
}

func (m *HaveFailedMatcher) NegatedFailureMessage(actual interface{}) string {
	return format.Message(actual, fmt.Sprintf("not to have failed with: %s", m.kind))
}
