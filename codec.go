package rapidutf16

import "unicode/utf8"

const (
	maxRune         = 0x10FFFF
	replacementChar = 0xFFFD

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	surrSelf     = 0x10000

	// Payload masks for lead bytes of 2, 3 and 4 byte sequences, and for
	// continuation bytes.
	mask2    = 0x1F
	mask3    = 0x0F
	mask4    = 0x07
	maskCont = 0x3F
)

// DecodeRune decodes the sequence at the start of p and returns the code point
// and the number of bytes it spans.
//
// The length is taken from the lead byte alone and continuation bytes are
// assumed to carry the 10xxxxxx pattern; they are not checked. DecodeRune is
// meant for input that has already been validated. A lead byte that cannot
// start a sequence, or a sequence running past the end of p, yields
// (utf8.RuneError, 1).
func DecodeRune(p []byte) (r rune, size int) {
	if len(p) == 0 {
		return utf8.RuneError, 0
	}
	c := p[0]
	n := int(firstByteLen[c])
	switch {
	case n == 1:
		return rune(c), 1
	case n == 0 || n > 4 || n > len(p):
		return utf8.RuneError, 1
	}

	var cp uint32
	switch n {
	case 2:
		cp = uint32(c&mask2)<<6 | uint32(p[1]&maskCont)
	case 3:
		cp = uint32(c&mask3)<<12 | uint32(p[1]&maskCont)<<6 | uint32(p[2]&maskCont)
	default:
		cp = uint32(c&mask4)<<18 | uint32(p[1]&maskCont)<<12 | uint32(p[2]&maskCont)<<6 | uint32(p[3]&maskCont)
	}
	return rune(cp), n
}

// EncodeRune writes the UTF-8 encoding of r into p, which must be large enough
// (4 bytes always are), and returns the number of bytes written. Surrogates and
// values outside the Unicode range are written as U+FFFD.
func EncodeRune(p []byte, r rune) int {
	cp := uint32(r)
	if cp > maxRune || surrogateMin <= cp && cp <= surrogateMax {
		cp = replacementChar
	}

	switch {
	case cp < 0x80:
		p[0] = byte(cp)
		return 1
	case cp < 0x800:
		_ = p[1]
		p[0] = 0xC0 | byte(cp>>6)
		p[1] = 0x80 | byte(cp)&maskCont
		return 2
	case cp < surrSelf:
		_ = p[2]
		p[0] = 0xE0 | byte(cp>>12)
		p[1] = 0x80 | byte(cp>>6)&maskCont
		p[2] = 0x80 | byte(cp)&maskCont
		return 3
	default:
		_ = p[3]
		p[0] = 0xF0 | byte(cp>>18)
		p[1] = 0x80 | byte(cp>>12)&maskCont
		p[2] = 0x80 | byte(cp>>6)&maskCont
		p[3] = 0x80 | byte(cp)&maskCont
		return 4
	}
}

// RuneLen returns the number of bytes EncodeRune writes for r.
func RuneLen(r rune) int {
	cp := uint32(r)
	switch {
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp > maxRune, surrogateMin <= cp && cp <= surrogateMax:
		return 3 // U+FFFD
	case cp < surrSelf:
		return 3
	default:
		return 4
	}
}

// putSurrogates writes the high/low surrogate pair for a supplementary code
// point.
func putSurrogates(dst []uint16, cp uint32) {
	_ = dst[1]
	cp -= surrSelf
	dst[0] = uint16(cp>>10) + surrogateMin
	dst[1] = uint16(cp&0x3FF) + 0xDC00
}
