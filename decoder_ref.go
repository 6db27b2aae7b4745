package rapidutf16

// decodeTrusted repeatedly applies DecodeRune without checking continuation
// bytes. It is the reference loop for input known to be valid; on malformed
// input the output is unspecified but memory safe.
func decodeTrusted(dst []uint16, src []byte) int {
	p := 0
	for i := 0; i < len(src); {
		r, size := DecodeRune(src[i:])
		if cp := uint32(r); cp >= surrSelf {
			putSurrogates(dst[p:], cp)
			p += 2
		} else {
			dst[p] = uint16(cp)
			p++
		}
		i += size
	}
	return p
}
