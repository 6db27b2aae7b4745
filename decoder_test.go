package rapidutf16

import (
	"bytes"
	"errors"
	"io"
	mathrand "math/rand"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestDecoder(t *testing.T) {
	setSIMDDecode(t, true)

	rng := mathrand.New(mathrand.NewSource(42))
	src := AppendCorpus(nil, rng, 256*1024, ProfileMixed)
	expected := DecodeAll(src)

	cases := []struct {
		name string
		r    func() io.Reader
		opts []DecoderOption
	}{
		{"default", func() io.Reader { return bytes.NewReader(src) }, nil},
		{"one byte reads", func() io.Reader { return iotest.OneByteReader(bytes.NewReader(src)) }, nil},
		{"half reads", func() io.Reader { return iotest.HalfReader(bytes.NewReader(src)) }, nil},
		{"data with EOF", func() io.Reader { return iotest.DataErrReader(bytes.NewReader(src)) }, nil},
		{"small buffer", func() io.Reader { return bytes.NewReader(src) }, []DecoderOption{WithBufferSize(1)}},
		{"odd buffer", func() io.Reader { return bytes.NewReader(src) }, []DecoderOption{WithBufferSize(17)}},
		{"scalar only", func() io.Reader { return bytes.NewReader(src) }, []DecoderOption{WithScalarOnly()}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dec := NewDecoder(tc.r(), tc.opts...)
			units, err := dec.ReadAll()
			require.NoError(t, err)
			require.Equal(t, expected, units)

			st := dec.Stats()
			require.Equal(t, len(src), st.VectorBytes+st.ScalarBytes)
		})
	}
}

// TestSplitReads splits every sequence across reads
func TestSplitReads(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"two byte", "\u00e9\u00e9\u00e9"},
		{"three byte", "\u20ac\u20ac\u20ac"},
		{"four byte", "\U0001d11e\U0001d11e"},
		{"truncated at end", "ab\xF0\x9D\x84"},
		{"invalid", "\xC0\xAF\xE0\x80\xAF\xF8\x88\x80\x80\x80\xED\xA0\x80"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := []byte(tc.raw)

			r, w := io.Pipe()

			go func() {
				for i := range raw {
					if _, err := w.Write(raw[i : i+1]); err != nil {
						panic(err)
					}
				}
				if err := w.Close(); err != nil {
					panic(err)
				}
			}()

			dec := NewDecoder(r)
			var units []uint16
			buf := make([]uint16, 3)
			for {
				n, err := dec.Read(buf)
				units = append(units, buf[:n]...)
				if errors.Is(err, io.EOF) {
					break
				}
				require.NoError(t, err)
			}
			require.Equal(t, referenceDecode(raw), units)
		})
	}
}

func TestDecoderReaderError(t *testing.T) {
	errBroken := errors.New("broken")
	src := []byte("abc\u20ac")
	// The error arrives with the first two bytes of the euro sign.
	r := io.MultiReader(bytes.NewReader(src[:5]), iotest.ErrReader(errBroken))

	dec := NewDecoder(r)
	buf := make([]uint16, 16)

	var units []uint16
	var err error
	for err == nil {
		var n int
		n, err = dec.Read(buf)
		units = append(units, buf[:n]...)
	}
	require.ErrorIs(t, err, errBroken)
	require.Equal(t, []uint16{'a', 'b', 'c'}, units)

	// The error is sticky.
	_, err = dec.Read(buf)
	require.ErrorIs(t, err, errBroken)
}

func TestDecoderEmpty(t *testing.T) {
	dec := NewDecoder(bytes.NewReader(nil))
	n, err := dec.Read(make([]uint16, 4))
	require.Zero(t, n)
	require.ErrorIs(t, err, io.EOF)

	n, err = dec.Read(nil)
	require.Zero(t, n)
	require.NoError(t, err)
}

func TestCompletePrefix(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "abc", 3},
		{"complete", "a\u20ac", 4},
		{"two byte lead", "a\xC3", 1},
		{"three byte lead", "a\xE2", 1},
		{"three byte half", "a\xE2\x82", 1},
		{"four byte", "a\xF0\x9D\x84", 1},
		{"stray continuations", "\x80\x80\x80\x80", 4},
		{"five byte lead", "a\xF8\x88", 3},
		{"lead then ascii", "\xE2a", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, completePrefix([]byte(tc.raw)))
		})
	}
}

func BenchmarkDecoder(b *testing.B) {
	rng := mathrand.New(mathrand.NewSource(42))
	src := AppendCorpus(nil, rng, 1024*1024, ProfileMixed)
	buf := make([]uint16, 64*1024)

	b.SetBytes(int64(len(src)))
	for b.Loop() {
		dec := NewDecoder(bytes.NewReader(src))
		for {
			_, err := dec.Read(buf)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
