// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Wrenware

package hiduart

import "fmt"

// DataBits is the number of data bits per UART character.
// The constant values are the chip's wire codes.
type DataBits uint8

const (
	DataBits5 DataBits = 0x00
	DataBits6 DataBits = 0x01
	DataBits7 DataBits = 0x02
	DataBits8 DataBits = 0x03
)

func (d DataBits) String() string {
	switch d {
	case DataBits5:
		return "5"
	case DataBits6:
		return "6"
	case DataBits7:
		return "7"
	case DataBits8:
		return "8"
	default:
		return fmt.Sprintf("DataBits(0x%02X)", uint8(d))
	}
}

// Parity is the UART parity mode. The constant values are the chip's wire codes.
type Parity uint8

const (
	ParityNone  Parity = 0x00
	ParityOdd   Parity = 0x01
	ParityEven  Parity = 0x02
	ParityMark  Parity = 0x03 // parity bit always 1
	ParitySpace Parity = 0x04 // parity bit always 0
)

func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "none"
	case ParityOdd:
		return "odd"
	case ParityEven:
		return "even"
	case ParityMark:
		return "mark"
	case ParitySpace:
		return "space"
	default:
		return fmt.Sprintf("Parity(0x%02X)", uint8(p))
	}
}

// StopBits selects the stop bit length. StopBitsLong means 1.5 stop bits with
// 5 data bits and 2 stop bits otherwise, per the chip documentation.
type StopBits uint8

const (
	StopBitsShort StopBits = 0x00
	StopBitsLong  StopBits = 0x01
)

func (s StopBits) String() string {
	switch s {
	case StopBitsShort:
		return "1"
	case StopBitsLong:
		return "1.5/2"
	default:
		return fmt.Sprintf("StopBits(0x%02X)", uint8(s))
	}
}

// FlowControl selects the UART flow control mode.
type FlowControl uint8

const (
	FlowControlNone     FlowControl = 0x00
	FlowControlHardware FlowControl = 0x01 // RTS/CTS
)

func (f FlowControl) String() string {
	switch f {
	case FlowControlNone:
		return "none"
	case FlowControlHardware:
		return "rts/cts"
	default:
		return fmt.Sprintf("FlowControl(0x%02X)", uint8(f))
	}
}

// UartConfig is an immutable UART line configuration. Construct it, validate
// it (or let Bridge.SetConfig validate it) and hand it to the session; the
// session never mutates it.
type UartConfig struct {
	BaudRate    uint32
	DataBits    DataBits
	Parity      Parity
	StopBits    StopBits
	FlowControl FlowControl
}

// DefaultConfig returns the chip's reset-time line configuration:
// 9600 baud, 8 data bits, no parity, 1 stop bit, no flow control.
func DefaultConfig() UartConfig {
	return UartConfig{
		BaudRate:    9600,
		DataBits:    DataBits8,
		Parity:      ParityNone,
		StopBits:    StopBitsShort,
		FlowControl: FlowControlNone,
	}
}

func (c UartConfig) String() string {
	return fmt.Sprintf("%d baud, %s data bits, %s parity, %s stop bits, %s flow control",
		c.BaudRate, c.DataBits, c.Parity, c.StopBits, c.FlowControl)
}
