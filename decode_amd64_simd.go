//go:build goexperiment.simd && amd64

package rapidutf16

import "golang.org/x/sys/cpu"

// useSIMDDecode indicates whether the AVX2 kernel in decoder_simd_amd64.go
// can run. It needs 256-bit integer compares, shuffles and shifts.
var (
	useSIMDDecode = cpu.X86.HasAVX2
	hwKernelName  = "avx2"
)

var hwChunkKernel chunkKernel = decodeChunkAVX2
