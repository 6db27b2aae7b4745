//go:build !amd64

package rapidutf16

// No SIMD acceleration available on this platform. simd/archsimd only
// targets amd64, so arm64 decodes with decodeGeneric too.
var (
	useSIMDDecode = false
	hwKernelName  = ""
)

var hwChunkKernel chunkKernel
