package rapidutf16

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRune(t *testing.T) {
	var buf, want [4]byte
	for r := rune(0); r <= maxRune; r++ {
		if surrogateMin <= r && r <= surrogateMax {
			continue
		}
		n := EncodeRune(buf[:], r)
		wn := utf8.EncodeRune(want[:], r)
		if n != wn || buf != want {
			t.Fatalf("EncodeRune(%U) = % x, want % x", r, buf[:n], want[:wn])
		}
		if l := RuneLen(r); l != n {
			t.Fatalf("RuneLen(%U) = %d, want %d", r, l, n)
		}
		got, size := DecodeRune(buf[:n])
		if got != r || size != n {
			t.Fatalf("DecodeRune(% x) = %U, %d, want %U, %d", buf[:n], got, size, r, n)
		}
		buf = [4]byte{}
		want = [4]byte{}
	}
}

func TestEncodeRuneInvalid(t *testing.T) {
	cases := []struct {
		name string
		r    rune
	}{
		{"high surrogate", surrogateMin},
		{"last high surrogate", 0xDBFF},
		{"low surrogate", surrogateMax},
		{"too large", maxRune + 1},
		{"negative", -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf [4]byte
			n := EncodeRune(buf[:], tc.r)
			require.Equal(t, []byte("\uFFFD"), buf[:n])
			require.Equal(t, 3, RuneLen(tc.r))
		})
	}
}

func TestDecodeRuneInvalid(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		r    rune
		size int
	}{
		{"empty", "", utf8.RuneError, 0},
		{"continuation", "\x80", utf8.RuneError, 1},
		{"truncated 2", "\xC3", utf8.RuneError, 1},
		{"truncated 3", "\xE2\x82", utf8.RuneError, 1},
		{"truncated 4", "\xF0\x9D\x84", utf8.RuneError, 1},
		{"five byte lead", "\xF8\x88\x80\x80\x80", utf8.RuneError, 1},
		{"invalid lead", "\xFF", utf8.RuneError, 1},
		// Continuation bytes are not checked.
		{"trusting", "\xC3\x29", 0xE9, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, size := DecodeRune([]byte(tc.raw))
			require.Equal(t, tc.r, r)
			require.Equal(t, tc.size, size)
		})
	}
}

func TestSequenceLength(t *testing.T) {
	cases := []struct {
		b    byte
		want int
	}{
		{0x00, 1},
		{0x41, 1},
		{0x7F, 1},
		{0x80, 0},
		{0xBF, 0},
		{0xC0, 2},
		{0xDF, 2},
		{0xE0, 3},
		{0xEF, 3},
		{0xF0, 4},
		{0xF7, 4},
		{0xF8, 5},
		{0xFC, 6},
		{0xFE, 0},
		{0xFF, 0},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, SequenceLength(tc.b), "byte %#02x", tc.b)
	}

	for b := 0; b < 0x80; b++ {
		require.Equal(t, 1, SequenceLength(byte(b)))
	}
}
