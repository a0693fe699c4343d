// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Wrenware

package hiduart

import "time"

// Transport is the report-level HID capability the Bridge builds on. Device
// discovery, descriptor parsing and open/close lifecycle live behind it; the
// Bridge only ever moves whole reports. The hidapi subpackage adapts
// github.com/sstallion/go-hid to this interface.
//
// The timeout conventions follow HIDAPI: ReadReport returning (0, nil) means
// the timeout elapsed with nothing available, a zero timeout polls once
// without blocking, and a negative timeout blocks indefinitely.
type Transport interface {
	// WriteReport sends one output report.
	WriteReport(p []byte) (int, error)

	// ReadReport reads one input report into p, waiting up to timeout.
	ReadReport(p []byte, timeout time.Duration) (int, error)

	// SendFeatureReport sends a feature report; p[0] is the report ID.
	SendFeatureReport(p []byte) (int, error)

	// GetFeatureReport reads a feature report into p; p[0] selects the
	// report ID and is overwritten by the response.
	GetFeatureReport(p []byte) (int, error)

	// Close releases the device handle.
	Close() error
}
