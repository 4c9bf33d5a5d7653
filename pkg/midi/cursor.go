package midi

import (
	"encoding/binary"
	"fmt"
)

// cursor is a forward-only reader over an in-memory buffer. Every read is
// bounds checked; a failed read reports ErrTruncated and leaves the position
// unchanged.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.buf)
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, %d remain", ErrTruncated, n, c.remaining())
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) readByte() (byte, error) {
	b, err := c.readBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) readUint16() (uint16, error) {
	b, err := c.readBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *cursor) readUint32() (uint32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *cursor) skip(n int) error {
	_, err := c.readBytes(n)
	return err
}

// unread steps back over the last consumed byte. Needed when a running-status
// data byte has been peeked as a status candidate.
func (c *cursor) unread() {
	if c.pos > 0 {
		c.pos--
	}
}

// varLen decodes a variable-length quantity at the current position: 7 bits
// per byte, high bit set on every byte but the last.
func (c *cursor) varLen() (uint32, error) {
	var val uint32
	for {
		b, err := c.readByte()
		if err != nil {
			return 0, err
		}
		val = val<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return val, nil
		}
	}
}
