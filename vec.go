package rapidutf16

// vec16 models a 128-bit vector register as 16 byte lanes, lane 0 being the
// lowest address. The methods mirror the SSE2/SSSE3 operations the kernel is
// written against and keep their operand order, so andnot(a, b) is ^a & b as
// in _mm_andnot_si128.
type vec16 [chunkSize]byte

// splat is _mm_set1_epi8.
func splat(b byte) (v vec16) {
	for i := range v {
		v[i] = b
	}
	return v
}

// movemask is _mm_movemask_epi8: bit i is the high bit of lane i.
func (v vec16) movemask() uint16 {
	var m uint16
	for i, b := range v {
		m |= uint16(b>>7) << i
	}
	return m
}

func (v vec16) add(o vec16) (r vec16) {
	for i := range r {
		r[i] = v[i] + o[i]
	}
	return r
}

func (v vec16) sub(o vec16) (r vec16) {
	for i := range r {
		r[i] = v[i] - o[i]
	}
	return r
}

// subs is _mm_subs_epu8, unsigned saturating subtraction.
func (v vec16) subs(o vec16) (r vec16) {
	for i := range r {
		if v[i] > o[i] {
			r[i] = v[i] - o[i]
		}
	}
	return r
}

func (v vec16) and(o vec16) (r vec16) {
	for i := range r {
		r[i] = v[i] & o[i]
	}
	return r
}

func (v vec16) or(o vec16) (r vec16) {
	for i := range r {
		r[i] = v[i] | o[i]
	}
	return r
}

// andnot returns ^v & o.
func (v vec16) andnot(o vec16) (r vec16) {
	for i := range r {
		r[i] = ^v[i] & o[i]
	}
	return r
}

// cmpgt is _mm_cmpgt_epi8; lanes compare as signed bytes.
func (v vec16) cmpgt(o vec16) (r vec16) {
	for i := range r {
		if int8(v[i]) > int8(o[i]) {
			r[i] = 0xFF
		}
	}
	return r
}

func (v vec16) cmpeq(o vec16) (r vec16) {
	for i := range r {
		if v[i] == o[i] {
			r[i] = 0xFF
		}
	}
	return r
}

// blendv is _mm_blendv_epi8: lanes of b where the high bit of mask is set,
// lanes of a elsewhere.
func blendv(a, b, mask vec16) (r vec16) {
	for i := range r {
		if mask[i]&0x80 != 0 {
			r[i] = b[i]
		} else {
			r[i] = a[i]
		}
	}
	return r
}

// slli is _mm_slli_si128: lane i receives lane i-n, the first n lanes are zero.
func (v vec16) slli(n int) (r vec16) {
	copy(r[n:], v[:chunkSize-n])
	return r
}

// srli is _mm_srli_si128: lane i receives lane i+n, the last n lanes are zero.
func (v vec16) srli(n int) (r vec16) {
	copy(r[:chunkSize-n], v[n:])
	return r
}

// shl shifts every lane left by n bits. On hardware this is a 16-bit shift
// followed by a mask removing the bits that crossed into the next lane.
func (v vec16) shl(n uint) (r vec16) {
	for i := range r {
		r[i] = v[i] << n
	}
	return r
}

// shr is the right-shift counterpart of shl.
func (v vec16) shr(n uint) (r vec16) {
	for i := range r {
		r[i] = v[i] >> n
	}
	return r
}

// shuffle is _mm_shuffle_epi8 (pshufb): lane i receives lane ctrl[i]&15, or
// zero when the high bit of ctrl[i] is set.
func (v vec16) shuffle(ctrl vec16) (r vec16) {
	for i, c := range ctrl {
		if c&0x80 == 0 {
			r[i] = v[c&0x0F]
		}
	}
	return r
}

// extract16 is _mm_extract_epi16: lanes 2i and 2i+1 as a little-endian word.
func (v vec16) extract16(i int) uint16 {
	return uint16(v[2*i]) | uint16(v[2*i+1])<<8
}

// unpack interleaves a low and a high byte plane into 16 code units, the
// pair _mm_unpacklo_epi8 / _mm_unpackhi_epi8.
func unpack(lo, hi vec16) (u [chunkSize]uint16) {
	for i := range u {
		u[i] = uint16(lo[i]) | uint16(hi[i])<<8
	}
	return u
}
