// Package port moves SHDLC frames over a serial link: it assembles and
// encodes command frames on the way out and collects, decodes and parses
// response frames on the way in.  One call handles one complete frame; there
// is no retry policy and no state carried between calls.
package port

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/tarm/serial"

	"github.com/tmorrel/shdlc-go/frame"
	"github.com/tmorrel/shdlc-go/shdlc"
)

// maxWireSize is the encode capacity for one frame.  It satisfies the
// codec's conservative precheck for the largest envelope content.
const maxWireSize = 2*frame.MaxContent + 4

// Conn is a single SHDLC connection over a byte stream.
type Conn struct {
	rw io.ReadWriter
}

// New wraps an existing byte stream.  Tests use this with an in-memory
// buffer instead of a device.
func New(rw io.ReadWriter) *Conn {
	return &Conn{rw: rw}
}

// Open opens the named serial device at the given baud rate.  SHDLC devices
// speak 8N1, which is the serial package's default framing.
func Open(device string, baud int) (*Conn, error) {
	p, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", device, err)
	}
	return &Conn{rw: p}, nil
}

// Close closes the underlying stream if it supports closing.
func (c *Conn) Close() error {
	if cl, ok := c.rw.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// Send assembles cmd into an envelope, encodes it and writes the frame to
// the link in a single write.
func (c *Conn) Send(cmd frame.Command) error {
	content, err := cmd.Bytes()
	if err != nil {
		return err
	}
	encoded, err := shdlc.Encode(content, maxWireSize)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"addr":  cmd.Addr,
		"cmd":   cmd.ID,
		"bytes": len(encoded),
	}).Debug("send frame")
	_, err = c.rw.Write(encoded)
	return err
}

// Receive reads one complete frame from the link, decodes it and parses the
// response envelope.  Bytes ahead of the opening boundary marker are
// discarded; everything through the closing marker is consumed within this
// one call.
func (c *Conn) Receive() (frame.Response, error) {
	raw, err := c.readFrame()
	if err != nil {
		return frame.Response{}, err
	}
	content, err := shdlc.Decode(raw, frame.MaxContent)
	if err != nil {
		return frame.Response{}, err
	}
	return frame.ParseResponse(content)
}

func (c *Conn) readFrame() ([]byte, error) {
	var (
		buf     = make([]byte, 0, maxWireSize)
		tmp     [1]byte
		inFrame bool
	)
	for {
		n, err := c.rw.Read(tmp[:])
		if err != nil {
			return nil, err
		}
		if n == 0 {
			continue
		}
		b := tmp[0]

		if !inFrame {
			if b == shdlc.FrameBoundaryMarker {
				inFrame = true
				buf = append(buf, b)
			}
			continue
		}

		buf = append(buf, b)
		if b == shdlc.FrameBoundaryMarker {
			if len(buf) == 2 {
				// Adjacent boundary markers separate frames on an idle
				// link; treat the second one as the opener of the real
				// frame.
				buf = buf[1:]
				continue
			}
			log.WithField("bytes", len(buf)).Debug("received frame")
			return buf, nil
		}
		if len(buf) >= maxWireSize {
			return nil, shdlc.TooMuchDecodedData
		}
	}
}
