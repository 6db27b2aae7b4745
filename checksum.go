package rapidutf16

import "github.com/ajroetker/go-highway/hwy"

// Checksum returns the sum of all units, each widened to 64 bits, modulo
// 2^64. Equal unit sequences always have equal checksums, which makes it a
// cheap way to compare the output of two decoders.
func Checksum(units []uint16) uint64 {
	var sum uint64
	lanes := hwy.MaxLanes[uint16]()
	i := 0
	if lanes > 0 {
		// Halves are widened to 32 bits before reducing; one vector of
		// units cannot overflow a 32-bit lane.
		for ; i+lanes <= len(units); i += lanes {
			v := hwy.Load(units[i : i+lanes])
			w := hwy.Add(hwy.PromoteLowerU16ToU32(v), hwy.PromoteUpperU16ToU32(v))
			sum += uint64(hwy.ReduceSum(w))
		}
	}
	for _, u := range units[i:] {
		sum += uint64(u)
	}
	return sum
}
