/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package futures

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind is a tag identifying a category of errors. The matchers use it to
// decide whether the cause of an exceptional settlement belongs to the
// expected category.
type Kind interface {
	// Matches reports whether cause belongs to this kind.
	Matches(cause error) bool

	// String names the kind for use in diagnostics.
	String() string
}

// KindOf returns the Kind of all errors assignable to E, directly or
// anywhere along their unwrap chain.
func KindOf[E error]() Kind {
	var zero E
	name := fmt.Sprintf("%T", zero)
	if name == "<nil>" {
		name = strings.TrimPrefix(fmt.Sprintf("%T", &zero), "*")
	}
	return typedKind[E]{name: name}
}

type typedKind[E error] struct {
	name string
}

func (k typedKind[E]) Matches(cause error) bool {
	var target E
	return errors.As(cause, &target)
}

func (k typedKind[E]) String() string {
	return k.name
}

// Is returns the Kind of all errors which match target in the sense of
// errors.Is. Useful for sentinel-error taxonomies.
func Is(target error) Kind {
	if target == nil {
		panic("futures: Is requires a non-nil target")
	}
	return sentinelKind{target: target}
}

type sentinelKind struct {
	target error
}

func (k sentinelKind) Matches(cause error) bool {
	return errors.Is(cause, k.target)
}

func (k sentinelKind) String() string {
	return k.target.Error()
}

// AnyError matches every non-nil cause.
var AnyError Kind = anyKind{}

type anyKind struct{}

func (anyKind) Matches(cause error) bool {
	return cause != nil
}

func (anyKind) String() string {
	return "any error"
}
