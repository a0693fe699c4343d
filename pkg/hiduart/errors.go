// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Wrenware

package hiduart

import (
	"errors"
	"fmt"
)

// Sentinel errors for session state guards, classifiable via errors.Is.
var (
	// ErrNotConfigured is returned by operations that require an applied
	// UART configuration when no SetConfig call has succeeded yet.
	ErrNotConfigured = errors.New("hiduart: bridge not configured")

	// ErrClosed is returned by any operation after Close.
	ErrClosed = errors.New("hiduart: bridge closed")
)

// InvalidConfigError reports a UartConfig rejected by validation.
// It is produced before any device I/O takes place.
type InvalidConfigError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("hiduart: invalid config: %s = %v: %s", e.Field, e.Value, e.Reason)
}

// TransportError wraps a failure reported by the underlying HID transport
// (device unplugged, I/O error, permission failure). Timeouts are never
// reported as TransportError; they surface as partial or zero counts.
type TransportError struct {
	Op  string // operation that failed, e.g. "write report"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("hiduart: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError reports a malformed report from the device: a data report
// whose declared length exceeds the physical report size, or a feature report
// response that does not decode. It indicates a device or firmware bug and is
// surfaced rather than silently dropped.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "hiduart: protocol error: " + e.Reason
}
