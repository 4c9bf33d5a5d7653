package midi

import "fmt"

type chunk struct {
	id      [4]byte
	payload []byte
}

// nextChunk reads one <4-byte id><4-byte size><payload> frame. If fewer than
// 8 bytes remain there is no further chunk and the sequence ends; a frame
// whose payload falls short of its declared size is a truncation error.
func nextChunk(c *cursor) (chunk, bool, error) {
	if c.remaining() < 8 {
		return chunk{}, false, nil
	}

	var ck chunk
	id, err := c.readBytes(4)
	if err != nil {
		return chunk{}, false, err
	}
	copy(ck.id[:], id)

	size, err := c.readUint32()
	if err != nil {
		return chunk{}, false, err
	}

	ck.payload, err = c.readBytes(int(size))
	if err != nil {
		return chunk{}, false, fmt.Errorf("chunk %q: %w", ck.id[:], err)
	}

	return ck, true, nil
}
