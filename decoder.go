package rapidutf16

import (
	"errors"
	"io"
)

// Decoder decodes UTF-8 read from an io.Reader into UTF-16 code units.
// A sequence split between two reads of the underlying reader is decoded as
// a whole, so the units produced are exactly those DecodeAll would produce
// for the concatenated input.
type Decoder struct {
	r          io.Reader
	rb         readBuffer
	scalarOnly bool

	out     []uint16
	pending []uint16 // decoded, not yet returned by Read
	stats   Stats
	err     error // sticky error from the underlying reader
}

type DecoderOption func(d *Decoder)

func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{r: r}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// WithBufferSize sets the initial size of the input buffer.
func WithBufferSize(size int) DecoderOption {
	return func(d *Decoder) {
		if size > 0 {
			d.rb = readBuffer{buf: make([]byte, size)}
		}
	}
}

// WithScalarOnly disables the vector kernel for this Decoder.
func WithScalarOnly() DecoderOption {
	return func(d *Decoder) {
		d.scalarOnly = true
	}
}

var (
	ErrBufferTooLarge = errors.New("rapidutf16: read buffer too large")
)

// Read decodes up to len(p) units into p. At the end of the input it returns
// 0, io.EOF; other errors of the underlying reader are returned once all
// units decoded before the error have been read.
func (d *Decoder) Read(p []uint16) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(d.pending) == 0 {
		if d.err != nil {
			return 0, d.err
		}
		d.fill()
	}
	n := copy(p, d.pending)
	d.pending = d.pending[n:]
	return n, nil
}

// ReadAll decodes until the end of the input.
func (d *Decoder) ReadAll() ([]uint16, error) {
	var units []uint16
	buf := make([]uint16, defaultReadBufSize)
	for {
		n, err := d.Read(buf)
		units = append(units, buf[:n]...)
		if errors.Is(err, io.EOF) {
			return units, nil
		}
		if err != nil {
			return units, err
		}
	}
}

// Stats returns the work split accumulated over all reads so far.
func (d *Decoder) Stats() Stats {
	return d.stats
}

// fill reads once from the underlying reader and decodes every complete
// sequence in the buffer. An incomplete sequence at the end stays buffered
// until more input arrives or the reader reports io.EOF.
func (d *Decoder) fill() {
	_, err := d.rb.fill(d.r)
	win := d.rb.window()
	switch {
	case err == nil:
		win = win[:completePrefix(win)]
	case errors.Is(err, io.EOF):
		d.err = io.EOF
	default:
		win = win[:completePrefix(win)]
		d.err = err
	}
	if len(win) == 0 {
		return
	}

	if cap(d.out) < len(win) {
		d.out = make([]uint16, len(win))
	}
	dst := d.out[:len(win)]

	var n int
	if d.scalarOnly {
		n, _ = decodeGeneric(dst, win)
		d.stats.ScalarBytes += len(win)
		d.stats.Abort = AbortDisabled
	} else {
		var st Stats
		n, _ = decode(dst, win, &st)
		d.stats.add(st)
	}
	d.pending = dst[:n]
	d.rb.consume(len(win))
}

// completePrefix returns the length of the longest prefix of p that does not
// end inside a sequence more input could still complete.
func completePrefix(p []byte) int {
	for k := 1; k <= 3 && k <= len(p); k++ {
		c := p[len(p)-k]
		if c&0xC0 == 0x80 {
			continue
		}
		if n := int(firstByteLen[c]); n > k && n <= 4 {
			return len(p) - k
		}
		break
	}
	return len(p)
}
