package rapidutf16

import "encoding/binary"

// MaxLength returns the number of units Decode may need for length bytes of
// input. One byte never yields more than one unit: ASCII maps one to one,
// two and three byte sequences yield one unit, four byte sequences yield a
// surrogate pair, and every rejected byte yields one U+FFFD.
func MaxLength(length int) int {
	return length
}

// UnitCount returns the exact number of units Decode writes for src.
func UnitCount(src []byte) int {
	n := 0
	for i := 0; i < len(src); {
		k := asciiPrefix(src[i:])
		n += k
		i += k
		if i == len(src) {
			break
		}
		if src[i] < 0x80 {
			n++
			i++
			continue
		}

		r, size := decodeRuneChecked(src[i:])
		if r >= surrSelf {
			n += 2
		} else {
			n++
		}
		i += size
	}
	return n
}

// asciiPrefix returns the length of the all-ASCII prefix of p rounded down
// to a whole number of words.
func asciiPrefix(p []byte) int {
	i := 0
	for i+8 <= len(p) && binary.LittleEndian.Uint64(p[i:])&hi8 == 0 {
		i += 8
	}
	return i
}
