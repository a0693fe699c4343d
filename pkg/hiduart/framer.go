package hiduart

import "fmt"

// Frame is one report-sized unit of the data plane: a payload of at most
// MaxFramePayload bytes that travels in a single interrupt report behind a
// one-byte length prefix. Frames are ephemeral; they exist only between a
// Write call and its report transmissions, or between report reception and
// reassembly.
type Frame struct {
	payload []byte
}

// NewFrame builds a frame around the given payload.
// Panics if the payload does not fit one report (callers split first).
func NewFrame(payload []byte) Frame {
	if len(payload) > MaxFramePayload {
		panic(fmt.Sprintf("hiduart: frame payload %d exceeds %d bytes", len(payload), MaxFramePayload))
	}
	return Frame{payload: payload}
}

// Payload returns the frame's payload bytes.
func (f Frame) Payload() []byte {
	return f.payload
}

// Len returns the payload length in bytes.
func (f Frame) Len() int {
	return len(f.payload)
}

// Report renders the frame as a full-size interrupt report: length byte,
// payload, zero padding up to the report size.
func (f Frame) Report() []byte {
	report := make([]byte, InterruptReportLength)
	report[0] = uint8(len(f.payload))
	copy(report[1:], f.payload)
	return report
}

// SplitFrames chops a byte buffer into transmit frames in original order.
// Every frame except the last carries exactly MaxFramePayload bytes; the last
// carries the remainder. An empty buffer yields no frames. The frames alias
// the input buffer; they do not copy.
func SplitFrames(data []byte) []Frame {
	if len(data) == 0 {
		return nil
	}

	frames := make([]Frame, 0, (len(data)+MaxFramePayload-1)/MaxFramePayload)
	for len(data) > 0 {
		n := len(data)
		if n > MaxFramePayload {
			n = MaxFramePayload
		}
		frames = append(frames, Frame{payload: data[:n]})
		data = data[n:]
	}
	return frames
}

// ParseFrame extracts the frame from a received interrupt report, honoring
// the declared length byte and ignoring any trailing padding. A declared
// length of zero or one exceeding the report's physical capacity is a
// ProtocolError. The payload is copied out of the report buffer so callers
// may reuse it.
func ParseFrame(report []byte) (Frame, error) {
	if len(report) < 2 {
		return Frame{}, &ProtocolError{Reason: "data report too short"}
	}
	length := int(report[0])
	if length == 0 {
		return Frame{}, &ProtocolError{Reason: "data report declares zero length"}
	}
	if length > len(report)-1 {
		return Frame{}, &ProtocolError{
			Reason: fmt.Sprintf("data report declares %d payload bytes but carries %d", length, len(report)-1),
		}
	}

	payload := make([]byte, length)
	copy(payload, report[1:1+length])
	return Frame{payload: payload}, nil
}

// ReassembleFrames concatenates frame payloads in receipt order.
// It is the inverse of SplitFrames.
func ReassembleFrames(frames []Frame) []byte {
	total := 0
	for _, f := range frames {
		total += f.Len()
	}
	if total == 0 {
		return nil
	}

	out := make([]byte, 0, total)
	for _, f := range frames {
		out = append(out, f.payload...)
	}
	return out
}
