package rapidutf16

import (
	mathrand "math/rand"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
)

func TestDecodeGeneric(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		expected []uint16
	}{
		{"empty", "", []uint16{}},
		{"ascii", "hello, world", utf16.Encode([]rune("hello, world"))},
		{"mixed", "A\u20ac\U0001d11e", []uint16{0x0041, 0x20AC, 0xD834, 0xDD1E}},
		{"stray continuation", "a\x80b", []uint16{'a', 0xFFFD, 'b'}},
		{"overlong 2", "\xC0\xAF", []uint16{0xFFFD, 0xFFFD}},
		{"overlong 3", "\xE0\x80\xAF", []uint16{0xFFFD, 0xFFFD, 0xFFFD}},
		{"overlong 4", "\xF0\x80\x80\xAF", []uint16{0xFFFD, 0xFFFD, 0xFFFD, 0xFFFD}},
		{"surrogate", "\xED\xA0\x80", []uint16{0xFFFD, 0xFFFD, 0xFFFD}},
		{"too large", "\xF4\x90\x80\x80", []uint16{0xFFFD, 0xFFFD, 0xFFFD, 0xFFFD}},
		{"truncated", "x\xE2\x82", []uint16{'x', 0xFFFD, 0xFFFD}},
		{"missing continuation", "\xE2\x82x", []uint16{0xFFFD, 0xFFFD, 'x'}},
		{"noncharacter", "\xEF\xBF\xBF", []uint16{0xFFFF}},
		{"max", "\xF4\x8F\xBF\xBF", []uint16{0xDBFF, 0xDFFF}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]uint16, len(tc.raw))
			nDst, nSrc := decodeGeneric(dst, []byte(tc.raw))
			require.Equal(t, len(tc.raw), nSrc)
			require.Equal(t, tc.expected, dst[:nDst])
			require.Equal(t, referenceDecode([]byte(tc.raw)), dst[:nDst])
		})
	}
}

// Random bytes are mostly malformed, which exercises every rejection path.
func TestDecodeGenericRandomBytes(t *testing.T) {
	rng := mathrand.New(mathrand.NewSource(42))
	for range 1000 {
		raw := make([]byte, rng.Intn(64))
		rng.Read(raw)
		// Bias towards bytes that form sequences.
		for i := range raw {
			if raw[i] < 0x80 && rng.Intn(2) == 0 {
				raw[i] |= 0x80
			}
		}

		dst := make([]uint16, len(raw))
		n, _ := decodeGeneric(dst, raw)
		require.Equal(t, referenceDecode(raw), dst[:n], "input % x", raw)
		require.Equal(t, n, UnitCount(raw))
	}
}

func TestDecodeTrusted(t *testing.T) {
	rng := mathrand.New(mathrand.NewSource(42))
	raw := AppendCorpus(nil, rng, 4096, ProfileMixed)

	dst := make([]uint16, MaxLength(len(raw)))
	n, err := DecodeTrusted(dst, raw)
	require.NoError(t, err)
	require.Equal(t, referenceDecode(raw), dst[:n])

	_, err = DecodeTrusted(dst[:1], raw)
	require.ErrorIs(t, err, ErrShortDst)
}
