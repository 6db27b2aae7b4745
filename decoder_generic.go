package rapidutf16

import (
	"encoding/binary"
	"unicode/utf8"
)

// hi8 selects the high bit of every byte in a little-endian word.
const hi8 = uint64(0x8080808080808080)

// decodeGeneric is the pure Go scalar decoder. It decodes all of src into dst,
// which must hold at least len(src) units, and returns the units written and
// bytes consumed.
//
// Malformed input never stops decoding: every byte that does not begin a
// well-formed sequence (bad lead, missing or stray continuation, overlong form,
// encoded surrogate, value above U+10FFFF, truncated tail) is written as U+FFFD
// and skipped on its own. This matches utf8.DecodeRune.
func decodeGeneric(dst []uint16, src []byte) (nDst, nSrc int) {
	p := 0 // dst write offset
	i := 0 // src read offset

	for i < len(src) {
		// ASCII runs, a word at a time
		for i+8 <= len(src) {
			if binary.LittleEndian.Uint64(src[i:])&hi8 != 0 {
				break
			}
			d := dst[p : p+8 : p+8]
			s := src[i : i+8 : i+8]
			for k := range d {
				d[k] = uint16(s[k])
			}
			p += 8
			i += 8
		}
		if i >= len(src) {
			break
		}

		c := src[i]
		if c < utf8.RuneSelf {
			dst[p] = uint16(c)
			p++
			i++
			continue
		}

		r, size := decodeRuneChecked(src[i:])
		if r >= surrSelf {
			putSurrogates(dst[p:], uint32(r))
			p += 2
		} else {
			dst[p] = uint16(r)
			p++
		}
		i += size
	}

	return p, i
}

// decodeRuneChecked is DecodeRune with full validation. p must not be empty.
func decodeRuneChecked(p []byte) (rune, int) {
	c := p[0]
	n := int(firstByteLen[c])
	if n == 1 {
		return rune(c), 1
	}
	if n < 2 || n > 4 || n > len(p) {
		return utf8.RuneError, 1
	}
	for _, b := range p[1:n] {
		if b&0xC0 != 0x80 {
			return utf8.RuneError, 1
		}
	}

	var cp, lo uint32
	switch n {
	case 2:
		cp = uint32(c&mask2)<<6 | uint32(p[1]&maskCont)
		lo = 0x80
	case 3:
		cp = uint32(c&mask3)<<12 | uint32(p[1]&maskCont)<<6 | uint32(p[2]&maskCont)
		lo = 0x800
	default:
		cp = uint32(c&mask4)<<18 | uint32(p[1]&maskCont)<<12 | uint32(p[2]&maskCont)<<6 | uint32(p[3]&maskCont)
		lo = surrSelf
	}
	if cp < lo || cp > maxRune || surrogateMin <= cp && cp <= surrogateMax {
		return utf8.RuneError, 1
	}
	return rune(cp), n
}
