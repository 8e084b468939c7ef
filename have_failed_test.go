/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package futures_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/hyperledger-labs/futures"
)

var _ = Describe("HaveFailedWith", func() {
	var matcher *futures.HaveFailedMatcher

	BeforeEach(func() {
		matcher = futures.HaveFailedWith(futures.KindOf[*timeoutError]())
	})

	It("matches a value which already failed with the expected kind", func() {
		Expect(failedFuture(&timeoutError{op: "dial"})).To(matcher)
	})

	It("matches a value which failed with a wrapped cause of the expected kind", func() {
		cause := errors.Wrap(&timeoutError{op: "dial"}, "connecting to peer")
		Expect(failedFuture(cause)).To(matcher)
	})

	It("rejects a value which failed with an unrelated kind", func() {
		f := failedFuture(&quorumError{nodes: 2})

		ok, err := matcher.Match(f)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
		Expect(matcher.FailureMessage(f)).To(ContainSubstring("failed with a different error"))
		Expect(matcher.FailureMessage(f)).To(ContainSubstring("quorum lost"))
	})

	It("rejects a value which is still pending", func() {
		f := pendingFuture()

		ok, err := matcher.Match(f)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
		Expect(matcher.FailureMessage(f)).To(ContainSubstring("not yet settled"))
	})

	It("rejects a value which resolved regularly", func() {
		f := resolvedFuture("all good")

		ok, err := matcher.Match(f)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
		Expect(matcher.FailureMessage(f)).To(ContainSubstring("resolved with"))
		Expect(matcher.FailureMessage(f)).To(ContainSubstring("all good"))
	})

	It("leaks no state between evaluations", func() {
		Expect(failedFuture(&timeoutError{op: "a"})).To(matcher)
		Expect(failedFuture(&timeoutError{op: "b"})).To(matcher)

		ok, err := matcher.Match(pendingFuture())
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())

		Expect(failedFuture(&timeoutError{op: "c"})).To(matcher)
	})

	It("errors on candidates which are not deferred values", func() {
		ok, err := matcher.Match(42)
		Expect(ok).To(BeFalse())
		Expect(err).To(MatchError(ContainSubstring("expects a futures.Value")))

		ok, err = matcher.Match(nil)
		Expect(ok).To(BeFalse())
		Expect(err).To(HaveOccurred())
	})

	When("constructed without a kind", func() {
		It("panics", func() {
			Expect(func() { futures.HaveFailedWith(nil) }).To(Panic())
		})
	})
})
