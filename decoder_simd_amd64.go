//go:build goexperiment.simd && amd64

package rapidutf16

import (
	"math/bits"
	"simd/archsimd"
	"unsafe"
)

// The chunk sits in the low 128-bit group of an Int8x32 so that
// PermuteOrZeroGrouped acts as a single pshufb over it. The high group stays
// zero throughout.

// shiftUp[n] moves every byte of the low group up by n lanes, zero filling.
var shiftUp = [5][32]int8{
	1: laneShift(1),
	2: laneShift(2),
	4: laneShift(4),
}

func laneShift(n int) [32]int8 {
	var idx [32]int8
	for i := range idx {
		idx[i] = -1
		if i < chunkSize && i >= n {
			idx[i] = int8(i - n)
		}
	}
	return idx
}

// compactLUT[g][m] lists the lanes of group g (0 for lanes 0..7, 1 for 8..15)
// whose bit is set in m, in order, padded with -1.
var compactLUT = buildCompactLUT()

func buildCompactLUT() (lut [2][256][8]int8) {
	for g := range lut {
		for m := range lut[g] {
			p := 0
			for j := range 8 {
				if m>>j&1 != 0 {
					lut[g][m][p] = int8(8*g + j)
					p++
				}
			}
			for ; p < 8; p++ {
				lut[g][m][p] = -1
			}
		}
	}
	return lut
}

var noLanes = [32]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// lowBits is movemask over the low group of mask.
func lowBits(mask archsimd.Mask8x32) uint32 {
	return uint32(mask.ToInt8x32().GetLo().AsUint8x16().Equal(archsimd.BroadcastUint8x16(0xFF)).ToBits())
}

// decodeChunkAVX2 is decodeChunk on AVX2. It follows the same steps and
// aborts for the same reasons; the shuffle control comes from compactLUT.
func decodeChunkAVX2(dst []uint16, src []byte) (nDst, nSrc int, abort Abort) {
	_ = dst[chunkSize-1]

	var in [32]int8
	*(*[chunkSize]byte)(unsafe.Pointer(&in)) = [chunkSize]byte(src[:chunkSize])
	chunk := archsimd.LoadInt8x32(&in)
	out := (*[chunkSize]int16)(unsafe.Pointer(&dst[0]))

	zero := archsimd.BroadcastInt8x32(0)
	one := archsimd.BroadcastInt8x32(1)
	two := archsimd.BroadcastInt8x32(2)

	nonASCII := lowBits(zero.Greater(chunk))
	if nonASCII == 0 {
		chunk.GetLo().ExtendToInt16().Store(out)
		return chunkSize, chunkSize, AbortNone
	}

	slli := func(v archsimd.Int8x32, n int) archsimd.Int8x32 {
		return v.PermuteOrZeroGrouped(archsimd.LoadInt8x32(&shiftUp[n]))
	}

	// Shift 0x80..0xFF down to 0x00..0x7F so signed compares see lead bytes
	// as the largest values.
	biased := chunk.Add(archsimd.BroadcastInt8x32(-128))
	cond2 := biased.Greater(archsimd.BroadcastInt8x32(0x41)) // >= 0xC2
	cond3 := biased.Greater(archsimd.BroadcastInt8x32(0x5F)) // >= 0xE0
	cond4 := biased.Greater(archsimd.BroadcastInt8x32(0x6F)) // >= 0xF0
	if lowBits(cond4) != 0 {
		return 0, 0, AbortLead4
	}
	lead2 := lowBits(cond2)
	if lowBits(biased.Greater(archsimd.BroadcastInt8x32(0x3F)))&^lead2 != 0 {
		return 0, 0, AbortInvalidLead
	}

	count := two.Merge(zero, cond2)
	count = archsimd.BroadcastInt8x32(3).Merge(count, cond3)
	countSub1 := one.Merge(zero, cond2)
	countSub1 = two.Merge(countSub1, cond3)
	counts := count.Add(slli(countSub1, 1))
	counts = counts.Add(slli(counts.Sub(counts.Min(two)), 2))

	if lowBits(counts.Greater(zero)) != nonASCII {
		return 0, 0, AbortCounts
	}
	if lead2&^lowBits(counts.Equal(count)) != 0 {
		return 0, 0, AbortCounts
	}
	if lowBits(slli(counts, 1).Sub(counts).Greater(one)) != 0 {
		return 0, 0, AbortTruncated
	}

	keep := archsimd.BroadcastInt8x32(0x3F).Merge(archsimd.BroadcastInt8x32(0x7F), cond2)
	keep = archsimd.BroadcastInt8x32(0x1F).Merge(keep, cond3)
	payload := chunk.And(keep)
	prev := slli(payload, 1)

	shl6 := prev.AsInt16x16().ShiftAllLeft(6).AsInt8x32().And(archsimd.BroadcastInt8x32(-64)) // 0xC0
	low := payload.Or(shl6).Merge(payload, counts.Equal(one))

	follows3 := slli(cond3.ToInt8x32(), 1).Equal(archsimd.BroadcastInt8x32(-1))
	shr2 := payload.AsInt16x16().ShiftAllRight(2).AsInt8x32().And(archsimd.BroadcastInt8x32(0x3F))
	shl4 := prev.AsInt16x16().ShiftAllLeft(4).AsInt8x32().And(archsimd.BroadcastInt8x32(-16)) // 0xF0
	high := shr2.Merge(zero, counts.Equal(two)).Or(shl4.Merge(zero, follows3))
	if lowBits(high.And(archsimd.BroadcastInt8x32(-8)).Equal(zero))&lowBits(follows3) != 0 {
		return 0, 0, AbortOverlong
	}
	high = slli(high, 1)

	open := lowBits(counts.Greater(one))
	nSrc = chunkSize
	if open&(1<<15) != 0 {
		nSrc--
		if open&(1<<14) != 0 {
			nSrc--
		}
	}
	kept := ^open & (1<<nSrc - 1)
	nDst = bits.OnesCount32(kept)

	ctrl := noLanes
	*(*[8]int8)(ctrl[0:8]) = compactLUT[0][kept&0xFF]
	n := bits.OnesCount32(kept & 0xFF)
	*(*[8]int8)(ctrl[n : n+8]) = compactLUT[1][kept>>8&0xFF]
	shuf := archsimd.LoadInt8x32(&ctrl)
	low = low.PermuteOrZeroGrouped(shuf)
	high = high.PermuteOrZeroGrouped(shuf)

	// Surrogates, U+FDD0..U+FDEF, U+FFFE and U+FFFF, tested on the byte
	// halves. Lanes past nDst are zero.
	surrogate := high.And(archsimd.BroadcastInt8x32(-8)).Equal(archsimd.BroadcastInt8x32(-40)) // 0xD8
	lowNibble := low.And(archsimd.BroadcastInt8x32(-16))
	fdd0 := high.Equal(archsimd.BroadcastInt8x32(-3)).And( // 0xFD
		lowNibble.Equal(archsimd.BroadcastInt8x32(-48)).Or(lowNibble.Equal(archsimd.BroadcastInt8x32(-32))))
	fffe := high.Equal(archsimd.BroadcastInt8x32(-1)).And(
		low.And(archsimd.BroadcastInt8x32(-2)).Equal(archsimd.BroadcastInt8x32(-2)))
	if lowBits(surrogate.Or(fdd0).Or(fffe)) != 0 {
		return 0, 0, AbortUnit
	}

	lo := low.GetLo().ExtendToInt16().And(archsimd.BroadcastInt16x16(0xFF))
	hi := high.GetLo().ExtendToInt16().ShiftAllLeft(8)
	lo.Or(hi).Store(out)
	return nDst, nSrc, AbortNone
}
