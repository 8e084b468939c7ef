/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package futures

import (
	"go.uber.org/zap"
)

// Logger is the subset of the *zap.Logger which this library utilizes.
// It has been abstracted as interface to allow easier mocking and to
// make it possible to write a shim to support other loggers if necessary.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
}

// Blocking matchers log through a nop logger unless one is injected with
// WithLogger.
var defaultLogger Logger = zap.NewNop()
