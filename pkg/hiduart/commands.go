// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Wrenware

package hiduart

import "encoding/binary"

// Command encoders build complete feature reports for the chip's control
// plane. All of them are pure: transmission is the Bridge's job. Reports are
// rendered at the full feature report size with zero padding, exactly as the
// chip expects them on the wire.

// EncodeUartConfig builds the Set UART Config feature report: report ID,
// 4-byte big-endian baud rate, then one wire-code byte each for parity, flow
// control, data bits and stop bits.
//
// The config is encoded as given; callers that cannot guarantee a valid
// config should run ValidateConfig first (Bridge.SetConfig does).
func EncodeUartConfig(c UartConfig) []byte {
	report := make([]byte, FeatureReportLength)
	report[0] = ReportUartConfig
	binary.BigEndian.PutUint32(report[1:5], c.BaudRate)
	report[5] = uint8(c.Parity)
	report[6] = uint8(c.FlowControl)
	report[7] = uint8(c.DataBits)
	report[8] = uint8(c.StopBits)
	return report
}

// DecodeUartConfig parses a Get UART Config feature report response back into
// a UartConfig. It is the inverse of EncodeUartConfig. A short report or an
// undocumented code byte yields a ProtocolError.
func DecodeUartConfig(report []byte) (UartConfig, error) {
	if len(report) < 9 {
		return UartConfig{}, &ProtocolError{Reason: "uart config response too short"}
	}
	if report[0] != ReportUartConfig {
		return UartConfig{}, &ProtocolError{Reason: "uart config response has wrong report ID"}
	}

	c := UartConfig{
		BaudRate:    binary.BigEndian.Uint32(report[1:5]),
		Parity:      Parity(report[5]),
		FlowControl: FlowControl(report[6]),
		DataBits:    DataBits(report[7]),
		StopBits:    StopBits(report[8]),
	}

	switch c.Parity {
	case ParityNone, ParityOdd, ParityEven, ParityMark, ParitySpace:
	default:
		return UartConfig{}, &ProtocolError{Reason: "unknown parity code in uart config response"}
	}
	switch c.FlowControl {
	case FlowControlNone, FlowControlHardware:
	default:
		return UartConfig{}, &ProtocolError{Reason: "unknown flow control code in uart config response"}
	}
	switch c.DataBits {
	case DataBits5, DataBits6, DataBits7, DataBits8:
	default:
		return UartConfig{}, &ProtocolError{Reason: "unknown data bits code in uart config response"}
	}
	switch c.StopBits {
	case StopBitsShort, StopBitsLong:
	default:
		return UartConfig{}, &ProtocolError{Reason: "unknown stop bits code in uart config response"}
	}

	return c, nil
}

// EncodeUartEnable builds the Set UART Enable feature report.
// A single payload byte: 0x01 enables the bridge, 0x00 disables it.
func EncodeUartEnable(enable bool) []byte {
	report := make([]byte, FeatureReportLength)
	report[0] = ReportUartEnable
	if enable {
		report[1] = 0x01
	}
	return report
}

// DecodeUartEnable parses a Get UART Enable feature report response.
// Any non-zero payload byte means the bridge is enabled.
func DecodeUartEnable(report []byte) (bool, error) {
	if len(report) < 2 {
		return false, &ProtocolError{Reason: "uart enable response too short"}
	}
	if report[0] != ReportUartEnable {
		return false, &ProtocolError{Reason: "uart enable response has wrong report ID"}
	}
	return report[1] != 0x00, nil
}

// EncodePurgeFifos builds the Purge FIFOs feature report. The payload is a
// bitmask: bit 0 purges the transmit FIFO, bit 1 purges the receive FIFO.
// Both false encodes mask 0x00; the caller still transmits it (an explicit
// no-op purge keeps the behavior deterministic).
func EncodePurgeFifos(flushTx, flushRx bool) []byte {
	report := make([]byte, FeatureReportLength)
	report[0] = ReportPurgeFifos
	if flushTx {
		report[1] |= PurgeTransmitMask
	}
	if flushRx {
		report[1] |= PurgeReceiveMask
	}
	return report
}
