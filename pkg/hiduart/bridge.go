// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Wrenware

package hiduart

import (
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout is the read and write timeout applied to new sessions until
// the caller overrides them.
const DefaultTimeout = 1 * time.Second

// drainPollInterval bounds how long Read waits for a follow-up report once
// data has started flowing. The device streams back-to-back reports while its
// FIFO has data; a quiet interval this long means end-of-availability.
const drainPollInterval = 1 * time.Millisecond

// reconfigureNeedsDisable selects the reconfiguration policy for SetConfig on
// an already-enabled session. The chip accepts a new UART configuration while
// the bridge is enabled, so the config is applied directly; flip this if a
// firmware revision turns out to need quiescence (disable, reconfigure,
// re-enable). Call sites do not change either way.
const reconfigureNeedsDisable = false

// Bridge is a UART session over one exclusively-owned HID transport. It
// orchestrates the command encoders and the framer to present blocking,
// timeout-aware Read/Write semantics on top of the report protocol.
//
// A Bridge starts unconfigured: every operation except SetConfig and Close
// fails with ErrNotConfigured until a SetConfig call succeeds, which also
// enables the UART bridge on the device. Close disables the bridge
// best-effort and releases the transport; the session is then terminal.
//
// Bridge is not safe for concurrent use. The applied configuration, timeout
// settings and the pending read buffer are shared mutable state, so callers
// invoking it from multiple goroutines must serialize access themselves.
type Bridge struct {
	tr    Transport
	log   *zap.Logger
	stats *Stats

	state   int
	applied UartConfig

	readTimeout  time.Duration
	writeTimeout time.Duration

	// pending holds received payload bytes that did not fit the caller's
	// buffer; the next Read drains it before touching the transport.
	pending []byte
}

// NewBridge wraps an already-open transport handle. The bridge takes
// ownership of the handle and releases it on Close. A nil logger disables
// logging.
func NewBridge(tr Transport, log *zap.Logger) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{
		tr:           tr,
		log:          log,
		stats:        &Stats{},
		state:        stateUnconfigured,
		readTimeout:  DefaultTimeout,
		writeTimeout: DefaultTimeout,
	}
}

// Stats returns the session's counters.
func (b *Bridge) Stats() *Stats {
	return b.stats
}

// ReadTimeout returns the receive timeout.
func (b *Bridge) ReadTimeout() time.Duration {
	return b.readTimeout
}

// SetReadTimeout sets the receive timeout. It takes effect on the next Read
// call, never retroactively. Zero means non-blocking: Read polls once and
// returns whatever is immediately available.
func (b *Bridge) SetReadTimeout(d time.Duration) {
	b.readTimeout = d
}

// WriteTimeout returns the transmit timeout.
func (b *Bridge) WriteTimeout() time.Duration {
	return b.writeTimeout
}

// SetWriteTimeout sets the transmit timeout. It takes effect on the next
// Write call. Zero means non-blocking: Write transmits a single frame and
// returns the short count.
func (b *Bridge) SetWriteTimeout(d time.Duration) {
	b.writeTimeout = d
}

// Config returns the last configuration successfully applied to the device,
// and false if no SetConfig call has succeeded yet.
func (b *Bridge) Config() (UartConfig, bool) {
	return b.applied, b.state == stateEnabled
}

// SetConfig validates cfg, writes it to the device as a feature report and
// enables the UART bridge. On the first success the session transitions from
// unconfigured to enabled; both transmissions must succeed or the prior state
// and the previously applied configuration are retained.
//
// Reapplying the configuration the session already applied is a no-op.
// Applying a different configuration to an enabled session writes the new
// config directly, without a disable/re-enable cycle (see
// reconfigureNeedsDisable); bytes in flight during reconfiguration may be
// garbled at the new line settings.
func (b *Bridge) SetConfig(cfg UartConfig) error {
	if b.state == stateClosed {
		return ErrClosed
	}
	if err := ValidateConfig(cfg); err != nil {
		return err
	}
	if b.state == stateEnabled && cfg == b.applied {
		return nil
	}

	if b.state == stateEnabled && reconfigureNeedsDisable {
		if err := b.sendFeature("uart disable", EncodeUartEnable(false)); err != nil {
			return err
		}
	}
	if err := b.sendFeature("uart config", EncodeUartConfig(cfg)); err != nil {
		return err
	}
	if b.state != stateEnabled || reconfigureNeedsDisable {
		if err := b.sendFeature("uart enable", EncodeUartEnable(true)); err != nil {
			return err
		}
	}

	b.applied = cfg
	b.state = stateEnabled
	b.log.Debug("uart configured", zap.Stringer("config", cfg))
	return nil
}

// FlushFIFOs purges the device's transmit and/or receive FIFO. A call with
// both flags false still transmits the zero mask.
func (b *Bridge) FlushFIFOs(flushTx, flushRx bool) error {
	if err := b.requireEnabled(); err != nil {
		return err
	}
	return b.sendFeature("purge fifos", EncodePurgeFifos(flushTx, flushRx))
}

// Write transmits p through the UART, splitting it into length-prefixed
// output reports. The write timeout covers the whole call; when it elapses
// Write returns the count of payload bytes already transmitted with a nil
// error (a short count is not a fault, and transmitted frames stay
// transmitted). A transport failure aborts the remaining frames and returns
// (0, *TransportError); by contract the partial count is discarded on hard
// faults.
func (b *Bridge) Write(p []byte) (int, error) {
	if err := b.requireEnabled(); err != nil {
		return 0, err
	}

	start := time.Now()
	sent := 0
	for _, frame := range SplitFrames(p) {
		if _, err := b.tr.WriteReport(frame.Report()); err != nil {
			b.stats.noteTransportError()
			return 0, &TransportError{Op: "write report", Err: err}
		}
		b.stats.noteFrameSent(frame.Len())
		sent += frame.Len()

		if sent < len(p) && time.Since(start) >= b.writeTimeout {
			b.stats.noteWriteTimeout()
			return sent, nil
		}
	}
	return sent, nil
}

// Read fills p with received UART bytes. It first drains any bytes left over
// from a previous call, then requests input reports from the transport:
// blocking up to the read timeout for the first report, then draining with a
// short poll until the device goes quiet, p is full, or the deadline passes.
//
// A timeout with nothing received returns (0, nil) — "nothing arrived yet" is
// not a fault. Payload bytes that do not fit p are kept for the next Read. A
// transport failure returns the bytes copied so far together with a
// *TransportError; a report declaring more payload than it physically carries
// returns a *ProtocolError.
func (b *Bridge) Read(p []byte) (int, error) {
	if err := b.requireEnabled(); err != nil {
		return 0, err
	}

	n := b.takePending(p)
	if n == len(p) && n > 0 {
		return n, nil
	}

	start := time.Now()
	report := make([]byte, InterruptReportLength)
	for n < len(p) {
		remaining := b.readTimeout - time.Since(start)
		if remaining < 0 {
			if n > 0 || b.readTimeout > 0 {
				break
			}
			remaining = 0 // zero timeout: poll exactly once
		}
		timeout := remaining
		if n > 0 && timeout > drainPollInterval {
			timeout = drainPollInterval
		}

		rn, err := b.tr.ReadReport(report, timeout)
		if err != nil {
			b.stats.noteTransportError()
			return n, &TransportError{Op: "read report", Err: err}
		}
		if rn == 0 {
			break // nothing available within the window
		}

		frame, err := ParseFrame(report[:rn])
		if err != nil {
			b.stats.noteProtocolError()
			return n, err
		}
		b.stats.noteFrameReceived(frame.Len())

		c := copy(p[n:], frame.Payload())
		n += c
		if c < frame.Len() {
			b.pending = append(b.pending, frame.Payload()[c:]...)
			break // caller's buffer is full
		}
	}
	return n, nil
}

// GetDeviceConfig reads the UART configuration currently active on the
// device. It may differ from Config after another host process touched the
// chip. A malformed response yields a ProtocolError.
func (b *Bridge) GetDeviceConfig() (UartConfig, error) {
	report, err := b.getFeature("get uart config", ReportUartConfig)
	if err != nil {
		return UartConfig{}, err
	}
	cfg, err := DecodeUartConfig(report)
	if err != nil {
		b.stats.noteProtocolError()
		return UartConfig{}, err
	}
	return cfg, nil
}

// DeviceEnabled reports whether the UART bridge is enabled on the device.
func (b *Bridge) DeviceEnabled() (bool, error) {
	report, err := b.getFeature("get uart enable", ReportUartEnable)
	if err != nil {
		return false, err
	}
	enabled, err := DecodeUartEnable(report)
	if err != nil {
		b.stats.noteProtocolError()
		return false, err
	}
	return enabled, nil
}

// Close disables the UART bridge best-effort and releases the transport
// handle. A device that does not acknowledge the disable command is logged
// and otherwise ignored; the session always reaches its terminal state.
// Close is idempotent.
func (b *Bridge) Close() error {
	if b.state == stateClosed {
		return nil
	}
	if b.state == stateEnabled {
		if _, err := b.tr.SendFeatureReport(EncodeUartEnable(false)); err != nil {
			b.log.Warn("uart disable on close failed", zap.Error(err))
		}
	}
	b.state = stateClosed
	b.pending = nil
	if err := b.tr.Close(); err != nil {
		return &TransportError{Op: "close", Err: err}
	}
	return nil
}

func (b *Bridge) requireEnabled() error {
	switch b.state {
	case stateEnabled:
		return nil
	case stateClosed:
		return ErrClosed
	default:
		return ErrNotConfigured
	}
}

// takePending copies leftover received bytes into p and keeps the rest.
func (b *Bridge) takePending(p []byte) int {
	if len(b.pending) == 0 {
		return 0
	}
	n := copy(p, b.pending)
	b.pending = b.pending[n:]
	if len(b.pending) == 0 {
		b.pending = nil
	}
	return n
}

func (b *Bridge) sendFeature(op string, report []byte) error {
	if _, err := b.tr.SendFeatureReport(report); err != nil {
		b.stats.noteTransportError()
		return &TransportError{Op: op, Err: err}
	}
	b.stats.noteFeatureSent()
	return nil
}

func (b *Bridge) getFeature(op string, reportID uint8) ([]byte, error) {
	if err := b.requireEnabled(); err != nil {
		return nil, err
	}
	report := make([]byte, FeatureReportLength)
	report[0] = reportID
	n, err := b.tr.GetFeatureReport(report)
	if err != nil {
		b.stats.noteTransportError()
		return nil, &TransportError{Op: op, Err: err}
	}
	b.stats.noteFeatureFetched()
	return report[:n], nil
}
