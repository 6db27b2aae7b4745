package rapidutf16

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"golang.org/x/sync/errgroup"
)

// CrossCheck decodes src with the vector kernel, the scalar decoder and the
// standard library concurrently, and verifies that all three agree. The
// vector kernel is used even where Decode would not select it: the hardware
// kernel if the build has one, the lane emulation otherwise.
//
// The returned Report is valid whether or not the decodes agree; a
// disagreement, or a decode whose length differs from UnitCount, is reported
// as an error of kind errors.Integrity from github.com/grailbio/base/errors.
func CrossCheck(src []byte) (*Report, error) {
	return crossCheck(src, vectorKernel())
}

func crossCheck(src []byte, kernel chunkKernel) (*Report, error) {
	r := &Report{Bytes: len(src)}
	want := UnitCount(src)
	var vector, scalar, reference []uint16

	var g errgroup.Group
	g.Go(func() error {
		dst := make([]uint16, MaxLength(len(src)))
		n, _ := decodeSIMD(dst, src, kernel, &r.Stats)
		vector = dst[:n]
		return checkUnitCount("vector", len(vector), want)
	})
	g.Go(func() error {
		scalar = DecodeScalarAll(src)
		return checkUnitCount("scalar", len(scalar), want)
	})
	g.Go(func() error {
		reference = referenceDecode(src)
		return checkUnitCount("reference", len(reference), want)
	})
	err := g.Wait()

	if cmpErr := r.compare(vector, scalar, reference); err == nil {
		err = cmpErr
	}
	return r, err
}

func checkUnitCount(name string, got, want int) error {
	if got == want {
		return nil
	}
	msg := fmt.Sprintf("%s decode wrote %d units, UnitCount reports %d", name, got, want)
	log.Error.Printf("rapidutf16: %s", msg)
	return errors.E(errors.Integrity, msg)
}
