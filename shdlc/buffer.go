package shdlc

// boundedBuffer is an append-only byte sequence with a fixed maximum
// capacity.  An append past the capacity reports overflow instead of growing
// the buffer; the encode and decode paths each map that overflow to their own
// error kind.
type boundedBuffer struct {
	buf []byte
	max int
}

func newBoundedBuffer(capacity int) boundedBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return boundedBuffer{buf: make([]byte, 0, capacity), max: capacity}
}

// appendByte appends c and reports whether it fit.  The buffer is unchanged
// when it did not.
func (bb *boundedBuffer) appendByte(c byte) bool {
	if len(bb.buf) >= bb.max {
		return false
	}
	bb.buf = append(bb.buf, c)
	return true
}

func (bb *boundedBuffer) bytes() []byte {
	return bb.buf
}
