/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package futures provides gomega matchers for asserting on the eventual
// behavior of deferred computations: values which resolve asynchronously
// to a result, fail with an error, or never settle within a bound.
//
// A test obtains a matcher from one of the factory functions and applies
// it to anything implementing the Value interface:
//
//	Expect(fut).To(futures.HaveFailedWith(futures.KindOf[*QuorumLostError]()))
//	Expect(fut).To(futures.WillFailWith(futures.Is(ErrStopped), time.Second))
//	Expect(fut).To(futures.WillNotComplete(100 * time.Millisecond))
//
// Matchers only observe the deferred value, they never settle or cancel
// it. They hold no mutable state across evaluations, so a single matcher
// may be reused against several values, concurrently if desired.
package futures
