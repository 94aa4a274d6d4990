package demo

import "math"

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgMask       = 0x7fffffff
)

// lcg is a 31-bit linear congruential generator. Each step is evaluated in float64 and
// then truncated to 32 bits before masking, which rounds the product above 2^53. The stream
// is therefore the one every double-precision client of this generator produces.
type lcg struct {
	state uint64
}

func newLCG(seed uint64) *lcg {
	return &lcg{state: seed & lcgMask}
}

// next advances the state and returns a value in [0, 1].
func (g *lcg) next() float64 {
	p := float64(g.state)*lcgMultiplier + lcgIncrement
	g.state = uint64(int64(math.Mod(p, 1<<32))) & lcgMask
	return float64(g.state) / lcgMask
}

// intn returns a value in [0, n). The generator can hit 1.0 exactly, which is clamped to n-1.
func (g *lcg) intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(g.next() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// between returns a value in [lo, hi).
func (g *lcg) between(lo, hi int) int {
	return lo + g.intn(hi-lo)
}

// shuffle returns a Fisher-Yates shuffled copy of in.
func (g *lcg) shuffle(in []int) []int {
	out := make([]int, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := g.intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
