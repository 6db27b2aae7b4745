package rapidutf16

import "fmt"

// chunkSize is the width in bytes of one vector register.
const chunkSize = 16

// Abort is the reason the vector loop handed the remaining input to the scalar
// decoder. An abort is never an error: the scalar decoder produces the same
// output, only slower.
type Abort int

const (
	AbortNone        Abort = iota // ran until fewer than chunkSize+1 bytes were left
	AbortLead4                    // 4-byte (or longer) lead inside the chunk
	AbortInvalidLead              // 0xC0 or 0xC1, which only start overlong sequences
	AbortCounts                   // continuation layout disagrees with the lead bytes
	AbortTruncated                // a sequence ends before its expected length
	AbortOverlong                 // 3-byte sequence encoding a value below U+0800
	AbortUnit                     // decoded a surrogate or a noncharacter
	AbortDisabled                 // vector kernel switched off
)

var abortNames = [...]string{
	AbortNone:        "none",
	AbortLead4:       "lead4",
	AbortInvalidLead: "invalid-lead",
	AbortCounts:      "counts",
	AbortTruncated:   "truncated",
	AbortOverlong:    "overlong",
	AbortUnit:        "unit",
	AbortDisabled:    "disabled",
}

func (a Abort) String() string {
	if a < 0 || int(a) >= len(abortNames) {
		return fmt.Sprintf("Abort(%d)", int(a))
	}
	return abortNames[a]
}

// Stats describes how a decode call split the input between the vector kernel
// and the scalar decoder.
type Stats struct {
	Chunks      int   // chunks accepted by the vector kernel
	ASCIIChunks int   // of which took the all-ASCII path
	VectorBytes int   // input bytes consumed by the vector kernel
	ScalarBytes int   // input bytes consumed by the scalar decoder
	Abort       Abort // why the vector loop stopped
}

// add accumulates s2 into s. The abort reason of the most recent call wins.
func (s *Stats) add(s2 Stats) {
	s.Chunks += s2.Chunks
	s.ASCIIChunks += s2.ASCIIChunks
	s.VectorBytes += s2.VectorBytes
	s.ScalarBytes += s2.ScalarBytes
	s.Abort = s2.Abort
}
