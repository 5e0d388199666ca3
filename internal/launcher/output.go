package launcher

import (
	"bytes"
)

// binarySampleSize is how many leading bytes are checked for NUL, the same
// heuristic git uses.
const binarySampleSize = 8000

// binaryPlaceholder replaces output that looks binary.
const binaryPlaceholder = "[Binary Content]"

// cappedBuffer keeps at most limit bytes of a script's output stream. It
// always reports the whole write as consumed so the child never blocks on a
// full pipe.
type cappedBuffer struct {
	buf       bytes.Buffer
	limit     int
	truncated bool

	binary  bool
	sampled int
}

func newCappedBuffer(limit int) *cappedBuffer {
	return &cappedBuffer{limit: limit}
}

func (c *cappedBuffer) Write(p []byte) (int, error) {
	if c.binary {
		return len(p), nil
	}

	if c.sampled < binarySampleSize {
		head := p[:min(len(p), binarySampleSize-c.sampled)]
		if bytes.IndexByte(head, 0) >= 0 {
			c.binary, c.truncated = true, true
			c.buf.Reset()
			return len(p), nil
		}
		c.sampled += len(head)
	}

	room := c.limit - c.buf.Len()
	if room < len(p) {
		c.truncated = true
	}
	if room > 0 {
		c.buf.Write(p[:min(len(p), room)])
	}
	return len(p), nil
}

func (c *cappedBuffer) String() string {
	if c.binary {
		return binaryPlaceholder
	}
	return c.buf.String()
}

func (c *cappedBuffer) Truncated() bool {
	return c.truncated
}
