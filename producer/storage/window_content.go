package storage

import (
	"io"
)

// windowContent is the content of one output file: the window repeated
// size/len(window) times followed by the first size%len(window) bytes of it.
type windowContent struct {
	window []byte
	size   int64
}

func (c *windowContent) WriteTo(w io.Writer) (n int64, err error) {
	windowSize := int64(len(c.window))
	full, remainder := c.size/windowSize, c.size%windowSize
	for i := int64(0); i < full; i++ {
		count, e := w.Write(c.window)
		n += int64(count)
		if e != nil {
			return n, e
		}
	}
	if remainder > 0 {
		count, e := w.Write(c.window[:remainder])
		n += int64(count)
		if e != nil {
			return n, e
		}
	}
	return n, nil
}
