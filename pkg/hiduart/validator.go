// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Wrenware

package hiduart

// ValidateConfig checks that a UartConfig is representable in the chip's
// configuration encoding. It performs no device I/O; a nil return means every
// field maps to a documented wire code and the baud rate is within the range
// the chip's divider can produce.
//
// The enum fields are typed constants, but Go callers can still fabricate
// values outside the documented sets, so membership is checked explicitly
// rather than trusted.
func ValidateConfig(c UartConfig) error {
	if c.BaudRate < MinBaudRate || c.BaudRate > MaxBaudRate {
		return &InvalidConfigError{
			Field:  "BaudRate",
			Value:  c.BaudRate,
			Reason: "outside chip-supported range 300-1000000",
		}
	}

	switch c.DataBits {
	case DataBits5, DataBits6, DataBits7, DataBits8:
	default:
		return &InvalidConfigError{
			Field:  "DataBits",
			Value:  c.DataBits,
			Reason: "unknown data bits variant",
		}
	}

	switch c.Parity {
	case ParityNone, ParityOdd, ParityEven, ParityMark, ParitySpace:
	default:
		return &InvalidConfigError{
			Field:  "Parity",
			Value:  c.Parity,
			Reason: "unknown parity variant",
		}
	}

	switch c.StopBits {
	case StopBitsShort, StopBitsLong:
	default:
		return &InvalidConfigError{
			Field:  "StopBits",
			Value:  c.StopBits,
			Reason: "unknown stop bits variant",
		}
	}

	switch c.FlowControl {
	case FlowControlNone, FlowControlHardware:
	default:
		return &InvalidConfigError{
			Field:  "FlowControl",
			Value:  c.FlowControl,
			Reason: "unknown flow control variant",
		}
	}

	// All data bits / parity / stop bits combinations in the sets above are
	// representable: StopBitsLong degrades to 1.5 stop bits with 5 data bits
	// per the chip documentation, so no combination is rejected.
	return nil
}
