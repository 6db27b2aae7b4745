package rapidutf16

import (
	"fmt"
	"io"
)

const (
	defaultReadBufSize = 32 * 1024
	maxReadBufSize     = 8 * 1024 * 1024
)

// readBuffer holds input read ahead of decoding. Bytes of a sequence that
// the last read split stay in the window until a later read completes them.
type readBuffer struct {
	buf        []byte
	start, end int
}

func (rb *readBuffer) window() []byte {
	return rb.buf[rb.start:rb.end]
}

// consume drops n decoded bytes from the front of the window.
func (rb *readBuffer) consume(n int) {
	rb.start += n
	if rb.start >= rb.end {
		rb.start, rb.end = 0, 0
	}
}

// fill reads once from r into the space after the window. When there is
// none it first moves the window to the front of the buffer, or doubles the
// buffer if the window already fills it.
func (rb *readBuffer) fill(r io.Reader) (int, error) {
	if len(rb.buf) == 0 {
		rb.buf = make([]byte, defaultReadBufSize)
	}
	if rb.end == len(rb.buf) {
		if err := rb.makeRoom(); err != nil {
			return 0, err
		}
	}
	n, err := r.Read(rb.buf[rb.end:])
	rb.end += n
	return n, err
}

func (rb *readBuffer) makeRoom() error {
	held := rb.end - rb.start
	if held < len(rb.buf) {
		copy(rb.buf, rb.window())
		rb.start, rb.end = 0, held
		return nil
	}
	if len(rb.buf) >= maxReadBufSize {
		return fmt.Errorf("%w: %d bytes buffered without a complete sequence", ErrBufferTooLarge, held)
	}

	grown := make([]byte, min(2*len(rb.buf), maxReadBufSize))
	copy(grown, rb.window())
	rb.buf = grown
	rb.start, rb.end = 0, held
	return nil
}
