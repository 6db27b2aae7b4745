package rapidutf16

// decodeSIMD runs kernel over src for as long as more than one chunk of input
// is left and the kernel accepts the chunk, then decodes the rest with
// decodeGeneric. dst must hold at least len(src) units: a chunk never emits
// more units than it consumes bytes, so at least chunkSize+1 units of dst are
// free whenever the kernel runs.
func decodeSIMD(dst []uint16, src []byte, kernel chunkKernel, st *Stats) (nDst, nSrc int) {
	for len(src)-nSrc > chunkSize {
		d, s, abort := kernel(dst[nDst:], src[nSrc:])
		if abort != AbortNone {
			st.Abort = abort
			break
		}
		st.Chunks++
		if d == chunkSize {
			st.ASCIIChunks++
		}
		nDst += d
		nSrc += s
	}
	st.VectorBytes += nSrc

	if nSrc < len(src) {
		d, s := decodeGeneric(dst[nDst:], src[nSrc:])
		nDst += d
		nSrc += s
		st.ScalarBytes += s
	}
	return nDst, nSrc
}
