// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Wrenware

package hiduart

import "sync/atomic"

// Stats tracks session counters. All counters are atomic so a monitoring
// goroutine may snapshot them while the session is in use from another.
type Stats struct {
	bytesWritten   atomic.Uint64
	bytesRead      atomic.Uint64
	framesSent     atomic.Uint64
	framesReceived atomic.Uint64
	featureSent    atomic.Uint64
	featureFetched atomic.Uint64
	writeTimeouts  atomic.Uint64
	transportErrs  atomic.Uint64
	protocolErrs   atomic.Uint64
}

// Snapshot is a cheap value copy of the counters.
type Snapshot struct {
	BytesWritten    uint64 // payload bytes accepted by Write
	BytesRead       uint64 // payload bytes delivered by Read
	FramesSent      uint64 // output reports transmitted
	FramesReceived  uint64 // input reports parsed
	FeatureSent     uint64 // feature reports sent (config, enable, purge)
	FeatureFetched  uint64 // feature reports fetched (device queries)
	WriteTimeouts   uint64 // Write calls that returned a short count
	TransportErrors uint64
	ProtocolErrors  uint64
}

// Snap returns the current counter values.
func (s *Stats) Snap() Snapshot {
	return Snapshot{
		BytesWritten:    s.bytesWritten.Load(),
		BytesRead:       s.bytesRead.Load(),
		FramesSent:      s.framesSent.Load(),
		FramesReceived:  s.framesReceived.Load(),
		FeatureSent:     s.featureSent.Load(),
		FeatureFetched:  s.featureFetched.Load(),
		WriteTimeouts:   s.writeTimeouts.Load(),
		TransportErrors: s.transportErrs.Load(),
		ProtocolErrors:  s.protocolErrs.Load(),
	}
}

func (s *Stats) noteFrameSent(payloadBytes int) {
	s.framesSent.Add(1)
	s.bytesWritten.Add(uint64(payloadBytes))
}

func (s *Stats) noteFrameReceived(payloadBytes int) {
	s.framesReceived.Add(1)
	s.bytesRead.Add(uint64(payloadBytes))
}

func (s *Stats) noteFeatureSent()    { s.featureSent.Add(1) }
func (s *Stats) noteFeatureFetched() { s.featureFetched.Add(1) }
func (s *Stats) noteWriteTimeout()   { s.writeTimeouts.Add(1) }
func (s *Stats) noteTransportError() { s.transportErrs.Add(1) }
func (s *Stats) noteProtocolError()  { s.protocolErrs.Add(1) }
