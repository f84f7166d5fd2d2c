package listener

import (
	"bytes"
	"io"
)

// lineConn presents a remote terminal as plain "\n" lines to the game and
// writes "\r\n" back. Clients end lines with "\r\n", a bare "\r" (ssh without
// a pty) or "\r\x00" (telnet NVT).
type lineConn struct {
	rw io.ReadWriter
	// pendingCR is set when the last byte read was "\r", so a "\n" or NUL
	// opening the next read belongs to the same line ending.
	pendingCR bool
}

func newLineConn(rw io.ReadWriter) *lineConn {
	return &lineConn{rw: rw}
}

func (c *lineConn) Read(p []byte) (int, error) {
	for {
		n, err := c.rw.Read(p)
		n = c.normalize(p[:n])
		if n > 0 || err != nil {
			return n, err
		}
	}
}

// normalize rewrites line endings in place and returns the new length.
func (c *lineConn) normalize(b []byte) int {
	out := 0
	for _, ch := range b {
		if c.pendingCR {
			c.pendingCR = false
			if ch == '\n' || ch == 0 {
				continue
			}
		}
		if ch == '\r' {
			c.pendingCR = true
			ch = '\n'
		}
		b[out] = ch
		out++
	}
	return out
}

func (c *lineConn) Write(p []byte) (int, error) {
	_, err := c.rw.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
