package rapidutf16

import (
	"fmt"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/grailbio/base/log"
)

const version = 0x010000

func init() {
	if hwy.NoSimdEnv() {
		useSIMDDecode = false
	}
	log.Debug.Printf("rapidutf16: decode kernel %s", DecodeKernel())
}

// Version returns the version of the decoder.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", version>>16&0xff, version>>8&0xff, version&0xff)
}

// DecodeKernel returns the name of the implementation being used for decode
// operations, followed by the SIMD level the host was detected at.
//
// "generic" is the scalar decoder. "avx2" is the archsimd kernel, built with
// GOEXPERIMENT=simd. "emulated" is the pure Go lane kernel, which Decode only
// uses when the vector path is forced on in a build without a hardware one.
func DecodeKernel() string {
	kernel := "generic"
	if useSIMDDecode {
		kernel = "emulated"
		if hwChunkKernel != nil {
			kernel = hwKernelName
		}
	}
	return kernel + "/" + hwy.CurrentLevel().String()
}
