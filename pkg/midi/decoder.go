package midi

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

var (
	headerChunkID = [4]byte{0x4D, 0x54, 0x68, 0x64} // "MThd"
	trackChunkID  = [4]byte{0x4D, 0x54, 0x72, 0x6B} // "MTrk"

	// ErrNotFound reports that the input path does not name an existing file.
	ErrNotFound = errors.New("midi file not found")
	// ErrInvalidHeader reports a missing or undersized MThd header chunk.
	ErrInvalidHeader = errors.New("invalid midi header")
	// ErrTruncated reports a chunk whose declared payload exceeds the bytes
	// actually present.
	ErrTruncated = errors.New("truncated midi data")
)

const headerChunkSize = 6

// Header holds the fixed fields of the MThd chunk.
type Header struct {
	Format         uint16
	TracksDeclared uint16
	Division       uint16
}

type trackStats struct {
	byteLength int
	noteOns    int
	statuses   map[byte]struct{}
}

// ExtractFeatures reads the file at path and returns its structural feature
// record. Hard failures (ErrNotFound, ErrInvalidHeader, ErrTruncated) abort
// the extraction; malformed event data inside a single track does not.
func ExtractFeatures(path string) (*Features, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	return extract(buf)
}

func extract(buf []byte) (*Features, error) {
	c := newCursor(buf)

	header, err := decodeHeader(c)
	if err != nil {
		return nil, err
	}

	var tracks []trackStats
	for {
		ck, ok, err := nextChunk(c)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if ck.id != trackChunkID {
			// Rare but valid extension chunks contribute nothing.
			continue
		}
		tracks = append(tracks, scanTrack(ck.payload))
	}

	return newFeatures(header, tracks, int64(len(buf))), nil
}

// decodeHeader validates the MThd chunk and leaves the cursor at the first
// byte after it, skipping any vendor extension past the six fixed bytes.
func decodeHeader(c *cursor) (Header, error) {
	b, err := c.readBytes(14)
	if err != nil {
		return Header{}, fmt.Errorf("%w: file smaller than a midi header", ErrInvalidHeader)
	}

	if [4]byte(b[:4]) != headerChunkID {
		return Header{}, fmt.Errorf("%w: expected %q, got %q", ErrInvalidHeader, headerChunkID[:], b[:4])
	}

	declared := binary.BigEndian.Uint32(b[4:8])
	h := Header{
		Format:         binary.BigEndian.Uint16(b[8:10]),
		TracksDeclared: binary.BigEndian.Uint16(b[10:12]),
		Division:       binary.BigEndian.Uint16(b[12:14]),
	}

	if declared > headerChunkSize {
		if err := c.skip(int(declared - headerChunkSize)); err != nil {
			return Header{}, err
		}
	}

	return h, nil
}

// scanTrack decodes one track's events and accumulates its statistics. Any
// failure to keep decoding ends this track only: whatever was counted so far
// stands, and the caller moves on to the next chunk.
func scanTrack(payload []byte) trackStats {
	st := trackStats{
		byteLength: len(payload),
		statuses:   make(map[byte]struct{}),
	}

	c := newCursor(payload)
	var running byte
	var haveStatus bool

scan:
	for !c.atEnd() {
		if _, err := c.varLen(); err != nil { // delta time
			break
		}

		b, err := c.readByte()
		if err != nil {
			break
		}

		status := b
		if b < 0x80 {
			// First data byte of a running-status event. With no prior
			// status there is nothing to inherit.
			if !haveStatus {
				break
			}
			status = running
			c.unread()
		} else {
			running = b
			haveStatus = true
		}

		st.statuses[status] = struct{}{}

		if status == 0xFF {
			// Meta event: type byte, then a VLQ-prefixed payload.
			if _, err := c.readByte(); err != nil {
				break
			}
			n, err := c.varLen()
			if err != nil {
				break
			}
			if err := c.skip(int(n)); err != nil {
				break
			}
			continue
		}

		switch status & 0xF0 {
		case 0x80, 0x90, 0xA0, 0xB0, 0xE0:
			data, err := c.readBytes(2)
			if err != nil {
				break scan
			}
			// Note-on with zero velocity is the note-off convention.
			if status&0xF0 == 0x90 && data[1] > 0 {
				st.noteOns++
			}
		case 0xC0, 0xD0:
			if err := c.skip(1); err != nil {
				break scan
			}
		default:
			// System exclusive and system common messages are treated as
			// carrying no data bytes. A real sysex payload will desync the
			// scan, which at worst ends this track early.
		}
	}

	return st
}
