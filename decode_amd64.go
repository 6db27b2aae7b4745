//go:build amd64 && !goexperiment.simd

package rapidutf16

// The AVX2 kernel is built with GOEXPERIMENT=simd only. Without it the lane
// emulation in kernel.go is the only kernel, and it is slower than
// decodeGeneric, so Decode stays scalar.
var (
	useSIMDDecode = false
	hwKernelName  = ""
)

var hwChunkKernel chunkKernel
