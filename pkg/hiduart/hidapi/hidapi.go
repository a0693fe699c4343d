// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Wrenware

// Package hidapi adapts github.com/sstallion/go-hid device handles to the
// hiduart.Transport interface. Enumeration, report descriptors and driver
// concerns stay in the hid package; this adapter only forwards report I/O.
package hidapi

import (
	"time"

	hid "github.com/sstallion/go-hid"

	"github.com/wrenware/cp2110/pkg/hiduart"
)

// USB IDs of the stock CP2110 HID-UART bridge.
const (
	VendorIDSiliconLabs = 0x10C4
	ProductIDCP2110     = 0xEA80
)

// Device wraps an open go-hid device handle as a hiduart.Transport.
type Device struct {
	dev *hid.Device
}

var _ hiduart.Transport = (*Device)(nil)

// Wrap adapts an already-open handle. The caller hands over ownership;
// closing the Device (typically via Bridge.Close) closes the handle.
func Wrap(dev *hid.Device) *Device {
	return &Device{dev: dev}
}

// Open opens the first device matching vid/pid — restricted to a specific
// unit when serial is non-empty — and wraps it.
func Open(vid, pid uint16, serial string) (*Device, error) {
	var (
		dev *hid.Device
		err error
	)
	if serial == "" {
		dev, err = hid.OpenFirst(vid, pid)
	} else {
		dev, err = hid.Open(vid, pid, serial)
	}
	if err != nil {
		return nil, err
	}
	return Wrap(dev), nil
}

// WriteReport sends one output report.
func (d *Device) WriteReport(p []byte) (int, error) {
	return d.dev.Write(p)
}

// ReadReport reads one input report, waiting up to timeout. HIDAPI returns
// (0, nil) when the timeout elapses with nothing available, which is exactly
// the hiduart.Transport contract.
func (d *Device) ReadReport(p []byte, timeout time.Duration) (int, error) {
	return d.dev.ReadWithTimeout(p, timeout)
}

// SendFeatureReport sends a feature report; p[0] is the report ID.
func (d *Device) SendFeatureReport(p []byte) (int, error) {
	return d.dev.SendFeatureReport(p)
}

// GetFeatureReport reads a feature report; p[0] selects the report ID.
func (d *Device) GetFeatureReport(p []byte) (int, error) {
	return d.dev.GetFeatureReport(p)
}

// Close releases the device handle.
func (d *Device) Close() error {
	return d.dev.Close()
}
