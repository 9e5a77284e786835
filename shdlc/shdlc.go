package shdlc

const (
	// EscapeMarker signals that the next byte is a substitute to be mapped
	// back through the escape table.
	EscapeMarker byte = 0x7d

	// FrameBoundaryMarker delimits the start and the end of a frame.
	FrameBoundaryMarker byte = 0x7e
)

// minFrameLength is the floor enforced by Decode.  It rejects the
// theoretically well-formed two-byte empty frame; downstream callers depend
// on the stricter floor, so it stays at 4.
const minFrameLength = 4

// escapeTable lists the four reserved byte values and their substitutes.
// The first two entries are the protocol's own escape and boundary markers;
// 0x11 and 0x13 (the XON/XOFF control characters) are escaped for transport
// compatibility.  All eight values are pairwise distinct.
var escapeTable = [4][2]byte{
	{0x7d, 0x5d},
	{0x7e, 0x5e},
	{0x11, 0x31},
	{0x13, 0x33},
}

// substituteFor returns the substitute for a reserved byte, and whether the
// byte is reserved at all.
func substituteFor(b byte) (byte, bool) {
	for _, pair := range escapeTable {
		if pair[0] == b {
			return pair[1], true
		}
	}
	return 0, false
}

// originalFor is the reverse lookup: the original byte for a substitute.
func originalFor(b byte) (byte, bool) {
	for _, pair := range escapeTable {
		if pair[1] == b {
			return pair[0], true
		}
	}
	return 0, false
}

// Encode escapes payload and surrounds it with boundary markers, producing a
// complete frame of at most capacity bytes.  Decoding the result reproduces
// payload byte for byte.
//
// The length precheck rejects payloads longer than capacity/2 - 2.  The
// tight worst case is 2*len(payload) + 2 (every byte escaped, plus the two
// boundary bytes), so the precheck turns away some payloads that would in
// fact fit; it is kept at the historical threshold for compatibility.
func Encode(payload []byte, capacity int) ([]byte, error) {
	if len(payload) > capacity/2-2 {
		return nil, TooMuchData
	}

	out := newBoundedBuffer(capacity)
	if !out.appendByte(FrameBoundaryMarker) {
		return nil, TooMuchData
	}
	for _, b := range payload {
		if sub, ok := substituteFor(b); ok {
			if !out.appendByte(EscapeMarker) || !out.appendByte(sub) {
				return nil, TooMuchData
			}
			continue
		}
		if !out.appendByte(b) {
			return nil, TooMuchData
		}
	}
	if !out.appendByte(FrameBoundaryMarker) {
		return nil, TooMuchData
	}
	return out.bytes(), nil
}

// Decode strips the boundary markers from frame and reverses the escaping,
// producing the original payload of at most capacity bytes.
//
// Only the very first and very last byte of frame are checked as boundary
// markers; a raw boundary byte strictly inside the interior passes through
// to the output unchanged.
func Decode(frame []byte, capacity int) ([]byte, error) {
	if len(frame) < minFrameLength {
		return nil, TooFewData
	}
	if frame[0] != FrameBoundaryMarker {
		return nil, MissingFirstFend
	}
	if frame[len(frame)-1] != FrameBoundaryMarker {
		return nil, MissingFinalFend
	}

	out := newBoundedBuffer(capacity)
	interior := frame[1 : len(frame)-1]
	for i := 0; i < len(interior); i++ {
		b := interior[i]
		if b == EscapeMarker {
			i++
			if i == len(interior) {
				return nil, MissingTradeChar
			}
			org, ok := originalFor(interior[i])
			if !ok {
				return nil, FendCharInData
			}
			b = org
		}
		if !out.appendByte(b) {
			return nil, TooMuchDecodedData
		}
	}
	return out.bytes(), nil
}
