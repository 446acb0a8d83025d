// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"log"
)

// Logger receives optional diagnostics (fallback triggers, batch failures).
// Implementations must be safe for concurrent use when shared across a batch.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// DefaultLogger logs to the Go stdlib logger.
type DefaultLogger struct{}

var _ Logger = DefaultLogger{}

// Infof implements Logger.Infof.
func (DefaultLogger) Infof(format string, args ...interface{}) {
	_ = log.Output(2, fmt.Sprintf(format, args...))
}

// Errorf implements Logger.Errorf.
func (DefaultLogger) Errorf(format string, args ...interface{}) {
	_ = log.Output(2, "ERROR: "+fmt.Sprintf(format, args...))
}

// NoopLogger discards everything. It is the default of every Options struct.
type NoopLogger struct{}

var _ Logger = NoopLogger{}

// Infof implements Logger.Infof.
func (NoopLogger) Infof(string, ...interface{}) {}

// Errorf implements Logger.Errorf.
func (NoopLogger) Errorf(string, ...interface{}) {}
