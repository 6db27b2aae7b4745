package rapidutf16

// chunkKernel decodes the sequences that end inside src[:chunkSize]. It
// writes chunkSize units to dst, of which the first nDst are valid, and
// reports the number of bytes consumed. src must hold more than chunkSize
// bytes and dst at least chunkSize units. A non-zero abort means nothing was
// consumed and the caller has to finish with the scalar decoder.
type chunkKernel func(dst []uint16, src []byte) (nDst, nSrc int, abort Abort)

// unitCheck reports whether any decoded unit is a surrogate or one of the
// noncharacters U+FDD0..U+FDEF, U+FFFE, U+FFFF.
var unitCheck = maskCompareUnits

// decodeChunk is the reference kernel. Every lane op corresponds to one
// SSE2/SSSE3 instruction (see vec.go); the only non-vector step is filling
// the shuffle control, which hardware does with a table lookup. Emulated lane
// by lane it is slower than decodeGeneric, so no build selects it for Decode.
// Hardware kernels are tested against it.
func decodeChunk(dst []uint16, src []byte) (nDst, nSrc int, abort Abort) {
	var chunk vec16
	copy(chunk[:], src[:chunkSize])

	nonASCII := chunk.movemask()
	if nonASCII == 0 {
		d := dst[:chunkSize:chunkSize]
		for i, b := range chunk {
			d[i] = uint16(b)
		}
		return chunkSize, chunkSize, AbortNone
	}

	// Shift 0x80..0xFF down to 0x00..0x7F so signed compares see lead bytes
	// as the largest values.
	biased := chunk.add(splat(0x80))
	cond2 := biased.cmpgt(splat(0x41)) // >= 0xC2
	cond3 := biased.cmpgt(splat(0x5F)) // >= 0xE0
	cond4 := biased.cmpgt(splat(0x6F)) // >= 0xF0
	if cond4.movemask() != 0 {
		return 0, 0, AbortLead4
	}
	if cond2.andnot(biased.cmpgt(splat(0x3F))).movemask() != 0 {
		return 0, 0, AbortInvalidLead
	}

	// state carries both the lead prefix bits to strip (high five bits) and
	// the sequence length (low three bits).
	state := blendv(splat(0x80), splat(0xC2), cond2)
	state = blendv(state, splat(0xE3), cond3)

	count := state.and(splat(0x07))
	countSub1 := count.subs(splat(1))
	counts := count.add(countSub1.slli(1))
	counts = counts.add(counts.subs(splat(2)).slli(2))

	// Every non-ASCII byte must be covered by a sequence, every lead must
	// start a fresh one, and counts may only fall by one from lane to lane.
	if counts.cmpgt(splat(0)).movemask() != nonASCII {
		return 0, 0, AbortCounts
	}
	if counts.cmpeq(count).andnot(cond2).movemask() != 0 {
		return 0, 0, AbortCounts
	}
	if counts.slli(1).sub(counts).cmpgt(splat(1)).movemask() != 0 {
		return 0, 0, AbortTruncated
	}

	payload := state.and(splat(0xF8)).andnot(chunk)
	prev := payload.slli(1)

	// The last byte of every sequence collects the low and high byte of its
	// code unit. Other lanes hold garbage and are dropped by the shuffle.
	last := counts.cmpeq(splat(1))
	low := blendv(payload, payload.or(prev.shl(6)), last)

	follows3 := cond3.slli(1)
	high := payload.shr(2).and(counts.cmpeq(splat(2))).
		or(prev.shl(4).and(follows3))
	if high.and(splat(0xF8)).cmpeq(splat(0)).and(follows3).movemask() != 0 {
		return 0, 0, AbortOverlong
	}
	high = high.slli(1)

	// Sequences that do not end inside the chunk are left for the next one.
	nSrc = chunkSize
	if c := counts.extract16(7); c&0x0200 != 0 {
		nSrc--
		if c&0x0002 != 0 {
			nSrc--
		}
	}

	shifts := countSub1.add(countSub1.slli(1))
	shifts = shifts.add(shifts.slli(2))
	shifts = shifts.add(shifts.slli(4))
	shifts = shifts.add(shifts.slli(8))

	ctrl := splat(0x80)
	for i := 0; i < nSrc; i++ {
		if counts[i] <= 1 {
			ctrl[i-int(shifts[i])] = byte(i)
		}
	}
	nDst = nSrc - int(shifts[nSrc-1])

	units := unpack(low.shuffle(ctrl), high.shuffle(ctrl))
	if unitCheck(units[:nDst]) {
		return 0, 0, AbortUnit
	}
	copy(dst[:chunkSize], units[:])
	return nDst, nSrc, AbortNone
}

// unitRanges lists the rejected unit ranges as inclusive pairs, the operand
// layout PCMPESTRM expects in _SIDD_CMP_RANGES mode.
var unitRanges = [...]uint16{
	0xD800, 0xDFFF,
	0xFDD0, 0xFDEF,
	0xFFFE, 0xFFFF,
}

// rangeCompareUnits emulates one PCMPESTRM over eight units at a time.
func rangeCompareUnits(units []uint16) bool {
	for len(units) > 0 {
		n := min(len(units), 8)
		var mask uint8
		for i, u := range units[:n] {
			for r := 0; r < len(unitRanges); r += 2 {
				if unitRanges[r] <= u && u <= unitRanges[r+1] {
					mask |= 1 << i
				}
			}
		}
		if mask != 0 {
			return true
		}
		units = units[n:]
	}
	return false
}

// maskCompareUnits is the SSE2 fallback built from plain compares.
func maskCompareUnits(units []uint16) bool {
	for _, u := range units {
		if u&0xF800 == 0xD800 || u-0xFDD0 < 0x20 || u >= 0xFFFE {
			return true
		}
	}
	return false
}
