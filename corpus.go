package rapidutf16

import "math/rand"

// Profile weights the encoded lengths of the code points AppendCorpus draws.
// Weights are relative; a zero Profile produces ASCII only.
type Profile struct {
	ASCII, Two, Three, Four int
}

// Preset profiles roughly matching common scripts.
var (
	ProfileASCII    = Profile{ASCII: 1}
	ProfileLatin    = Profile{ASCII: 90, Two: 10}
	ProfileCyrillic = Profile{ASCII: 20, Two: 80}
	ProfileCJK      = Profile{ASCII: 10, Three: 90}
	ProfileEmoji    = Profile{ASCII: 50, Two: 10, Three: 10, Four: 30}
	ProfileBMP      = Profile{ASCII: 1, Two: 1, Three: 1}
	ProfileMixed    = Profile{ASCII: 1, Two: 1, Three: 1, Four: 1}
)

// AppendCorpus appends at least n bytes of valid UTF-8 to dst, drawn from rng
// according to p. Surrogates and noncharacters are never generated.
func AppendCorpus(dst []byte, rng *rand.Rand, n int, p Profile) []byte {
	total := p.ASCII + p.Two + p.Three + p.Four
	var buf [4]byte
	for start := len(dst); len(dst)-start < n; {
		w := 0
		if total > 0 {
			w = rng.Intn(total)
		}
		var r rune
		switch {
		case total == 0 || w < p.ASCII:
			r = rune(0x20 + rng.Intn(0x5F))
		case w < p.ASCII+p.Two:
			r = rune(0x80 + rng.Intn(0x800-0x80))
		case w < p.ASCII+p.Two+p.Three:
			r = rune(0x800 + rng.Intn(0x10000-0x800))
		default:
			r = rune(surrSelf + rng.Intn(maxRune+1-surrSelf))
		}
		if surrogateMin <= r && r <= surrogateMax || isNoncharacter(r) {
			continue
		}
		dst = append(dst, buf[:EncodeRune(buf[:], r)]...)
	}
	return dst
}

func isNoncharacter(r rune) bool {
	return 0xFDD0 <= r && r <= 0xFDEF || r&0xFFFE == 0xFFFE
}
