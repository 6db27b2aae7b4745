package rapidutf16

import (
	"errors"
	"unicode/utf16"
)

// ErrShortDst is returned when dst cannot hold the decoded units. MaxLength
// gives a capacity that is always sufficient.
var ErrShortDst = errors.New("rapidutf16: destination too small")

// Decode decodes the UTF-8 in src into UTF-16 code units in dst and returns
// the number of units written. dst must be at least MaxLength(len(src)) long.
//
// Code points above U+FFFF are written as a surrogate pair, high unit first.
// Malformed input is not an error: each byte that does not start a well-formed
// sequence is written as U+FFFD, as utf8.DecodeRune would report it.
func Decode(dst []uint16, src []byte) (int, error) {
	n, _, err := DecodeStats(dst, src)
	return n, err
}

// DecodeStats is Decode and additionally reports how the work was split
// between the vector kernel and the scalar decoder.
func DecodeStats(dst []uint16, src []byte) (int, Stats, error) {
	var st Stats
	if len(dst) < MaxLength(len(src)) {
		return 0, st, ErrShortDst
	}
	n, _ := decode(dst, src, &st)
	return n, st, nil
}

func decode(dst []uint16, src []byte, st *Stats) (nDst, nSrc int) {
	if !useSIMDDecode {
		st.Abort = AbortDisabled
		nDst, nSrc = decodeGeneric(dst, src)
		st.ScalarBytes += nSrc
		return nDst, nSrc
	}
	return decodeSIMD(dst, src, vectorKernel(), st)
}

// vectorKernel returns the hardware kernel of this build, or the lane
// emulation where there is none.
func vectorKernel() chunkKernel {
	if hwChunkKernel != nil {
		return hwChunkKernel
	}
	return decodeChunk
}

// DecodeScalar is Decode without the vector kernel. Both always produce the
// same output.
func DecodeScalar(dst []uint16, src []byte) (int, error) {
	if len(dst) < MaxLength(len(src)) {
		return 0, ErrShortDst
	}
	n, _ := decodeGeneric(dst, src)
	return n, nil
}

// DecodeTrusted decodes src, which must be valid UTF-8, without validating
// it. Output for invalid input is unspecified.
func DecodeTrusted(dst []uint16, src []byte) (int, error) {
	if len(dst) < MaxLength(len(src)) {
		return 0, ErrShortDst
	}
	return decodeTrusted(dst, src), nil
}

// DecodeAll decodes src into a newly allocated slice.
func DecodeAll(src []byte) []uint16 {
	dst := make([]uint16, MaxLength(len(src)))
	var st Stats
	n, _ := decode(dst, src, &st)
	return dst[:n]
}

// DecodeScalarAll is DecodeAll without the vector kernel.
func DecodeScalarAll(src []byte) []uint16 {
	dst := make([]uint16, MaxLength(len(src)))
	n, _ := decodeGeneric(dst, src)
	return dst[:n]
}

// DecodeString decodes s into a newly allocated slice.
func DecodeString(s string) []uint16 {
	return DecodeAll([]byte(s))
}

// referenceDecode is the standard library rendering of src. It is the oracle
// CrossCheck compares against.
func referenceDecode(src []byte) []uint16 {
	return utf16.Encode([]rune(string(src)))
}
