// Package frame implements the SHDLC command/response envelope that rides
// inside a byte-stuffed frame: device address, command ID, data length, data
// and a trailing checksum.  Commands (MOSI) travel host to device; responses
// (MISO) carry an extra device state byte.
package frame

import (
	"github.com/tmorrel/shdlc-go/shdlc"
)

// MaxData is the longest data block an envelope can carry; the length field
// is a single byte.
const MaxData = 255

const (
	commandOverhead  = 4 // addr + id + length + checksum
	responseOverhead = 5 // addr + id + state + length + checksum
)

// MaxContent is the longest envelope content that can come out of a decoded
// frame: a response carrying MaxData bytes.
const MaxContent = responseOverhead + MaxData

// Command is a request for the device at Addr.
type Command struct {
	Addr byte
	ID   byte
	Data []byte
}

// Bytes assembles the envelope content, ready for shdlc.Encode.  Data longer
// than MaxData cannot be described by the length field and is rejected with
// TooMuchData.
func (c Command) Bytes() ([]byte, error) {
	if len(c.Data) > MaxData {
		return nil, shdlc.TooMuchData
	}
	content := make([]byte, 0, commandOverhead+len(c.Data))
	content = append(content, c.Addr, c.ID, byte(len(c.Data)))
	content = append(content, c.Data...)
	content = append(content, Checksum(content))
	return content, nil
}

// Response is a device reply.  State is the device's status byte; zero means
// the command succeeded.
type Response struct {
	Addr  byte
	ID    byte
	State byte
	Data  []byte
}

// Ok reports whether the device accepted the command.
func (r Response) Ok() bool {
	return r.State == 0
}

// ParseResponse validates a decoded frame interior and splits it into a
// Response.  The declared data length must match the content exactly, and
// the trailing checksum must cover everything before it; a mismatch there is
// InvalidChecksum.
func ParseResponse(content []byte) (Response, error) {
	if len(content) < responseOverhead {
		return Response{}, shdlc.TooFewData
	}
	if len(content) > MaxContent {
		return Response{}, shdlc.TooMuchDecodedData
	}
	n := int(content[3])
	switch {
	case len(content) < responseOverhead+n:
		return Response{}, shdlc.TooFewData
	case len(content) > responseOverhead+n:
		return Response{}, shdlc.TooMuchDecodedData
	}
	if Checksum(content[:len(content)-1]) != content[len(content)-1] {
		return Response{}, shdlc.InvalidChecksum
	}
	return Response{
		Addr:  content[0],
		ID:    content[1],
		State: content[2],
		Data:  content[4 : 4+n],
	}, nil
}

// Checksum is the SHDLC checksum: the least significant byte of the bitwise
// complement of the sum of the content bytes.
func Checksum(content []byte) byte {
	var sum byte
	for _, b := range content {
		sum += b
	}
	return ^sum
}
