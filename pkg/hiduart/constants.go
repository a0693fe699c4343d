// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Wrenware

// Package hiduart drives the UART bridge of CP2110/CP2114-class USB HID
// adapters. The chip exposes a conventional UART (baud rate, data bits,
// parity, stop bits, flow control) through fixed-size HID reports: feature
// reports carry configuration and control commands, interrupt reports carry
// the byte stream as length-prefixed frames.
//
// The package is split the same way the wire protocol is: pure command
// encoders for the feature-report command set, a stateless framer for the
// data plane, and a Bridge session that owns a Transport and layers blocking,
// timeout-aware Read/Write semantics on top.
package hiduart

// Report sizes. Both planes use 64-byte reports; a data report spends one
// byte on the payload length, leaving 63 bytes of payload per report.
const (
	FeatureReportLength   = 64
	InterruptReportLength = 64
	MaxFramePayload       = InterruptReportLength - 1
)

// Feature report IDs from the vendor command set (AN434)
const (
	ReportUartEnable = 0x41 // Get/Set UART Enable
	ReportPurgeFifos = 0x43 // Purge FIFOs
	ReportUartConfig = 0x50 // Get/Set UART Config
)

// Purge FIFOs bitmask bits
const (
	PurgeTransmitMask = 0x01
	PurgeReceiveMask  = 0x02
)

// Baud rates the chip's clock divider can represent
const (
	MinBaudRate = 300
	MaxBaudRate = 1000000
)

// Bridge session states
const (
	stateUnconfigured = iota
	stateEnabled
	stateClosed
)
