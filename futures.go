/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package futures

import (
	"time"

	"github.com/onsi/gomega/types"
)

// Every matcher integrates with the assertion framework through the
// gomega matcher contract.
var (
	_ types.GomegaMatcher = (*HaveFailedMatcher)(nil)
	_ types.GomegaMatcher = (*WillFailMatcher)(nil)
	_ types.GomegaMatcher = (*WillNotCompleteMatcher)(nil)
)

// HaveFailedWith returns a matcher verifying that a deferred value has
// already settled exceptionally with a cause of the given kind. The
// matcher never blocks; a value which is still pending is a mismatch.
func HaveFailedWith(kind Kind) *HaveFailedMatcher {
	if kind == nil {
		panic("futures: kind must not be nil")
	}
	return &HaveFailedMatcher{kind: kind}
}

// WillFailWith returns a matcher verifying that a deferred value settles
// exceptionally within the wait budget with a cause of the given kind.
func WillFailWith(kind Kind, budget time.Duration) *WillFailMatcher {
	if kind == nil {
		panic("futures: kind must not be nil")
	}
	return WillFailMatching(kind.Matches, budget, kind.String())
}

// WillFailMatching returns a matcher verifying that a deferred value
// settles exceptionally within the wait budget with a cause accepted by
// validate. The description names the expectation in diagnostics.
func WillFailMatching(validate func(error) bool, budget time.Duration, description string) *WillFailMatcher {
	if validate == nil {
		panic("futures: validate must not be nil")
	}
	requireBudget(budget)
	return &WillFailMatcher{
		validator: errorValidator{accept: validate, description: description},
		budget:    budget,
		log:       defaultLogger,
	}
}

// WillFail returns a matcher verifying that a deferred value settles
// exceptionally within the wait budget, with any cause at all.
func WillFail(budget time.Duration) *WillFailMatcher {
	return WillFailWith(AnyError, budget)
}

// WillNotComplete returns a matcher verifying that a deferred value is
// still pending once the wait budget has elapsed.
func WillNotComplete(budget time.Duration) *WillNotCompleteMatcher {
	requireBudget(budget)
	return &WillNotCompleteMatcher{
		budget: budget,
		log:    defaultLogger,
	}
}

func requireBudget(budget time.Duration) {
	if budget <= 0 {
		panic("futures: wait budget must be positive")
	}
}
