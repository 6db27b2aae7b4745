package rapidutf16

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// Report is the result of CrossCheck.
type Report struct {
	Bytes int // input length
	Units int // units produced by the vector path

	// Checksums of the three decodes.
	Vector    uint64
	Scalar    uint64
	Reference uint64

	Stats Stats // split of the vector path

	// Mismatch is the index of the first unit where the decodes disagree,
	// or -1.
	Mismatch int
}

// compare fills in r from the three decodes and returns an error of kind
// errors.Integrity if they are not identical.
func (r *Report) compare(vector, scalar, reference []uint16) error {
	r.Units = len(vector)
	r.Vector = Checksum(vector)
	r.Scalar = Checksum(scalar)
	r.Reference = Checksum(reference)
	r.Mismatch = -1

	name, other := "scalar", scalar
	if i := firstDiff(vector, scalar); i >= 0 {
		r.Mismatch = i
	} else if i := firstDiff(vector, reference); i >= 0 {
		r.Mismatch = i
		name, other = "reference", reference
	}
	if r.Mismatch < 0 {
		return nil
	}

	msg := fmt.Sprintf("vector decode disagrees with %s decode at unit %d (%s vs %s, %d vs %d units, split %+v)",
		name, r.Mismatch, unitAt(vector, r.Mismatch), unitAt(other, r.Mismatch), len(vector), len(other), r.Stats)
	log.Error.Printf("rapidutf16: %s", msg)
	return errors.E(errors.Integrity, msg)
}

// firstDiff returns the first index at which a and b differ, counting a
// length difference as a difference at the end of the shorter slice.
func firstDiff(a, b []uint16) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

func unitAt(units []uint16, i int) string {
	if i >= len(units) {
		return "end"
	}
	return fmt.Sprintf("U+%04X", units[i])
}
