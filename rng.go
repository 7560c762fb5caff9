package rescue

// The password cipher keystream comes from a 56-slot subtractive
// generator. The game seeds it with a 16-bit value taken from the first
// two password bytes, so only seeds in [0, 65535] occur in practice.
const (
	genSeedBase = 0x9A4EC86
	genMax      = 0x7FFFFFFF
)

type generator struct {
	state  [56]int32
	i1, i2 int
}

func newGenerator(seed int32) *generator {
	g := &generator{}
	if seed < 0 {
		seed = -seed
	}
	prev := genSeedBase - seed
	g.state[55] = prev

	value := int32(1)
	for i := 1; i < 55; i++ {
		g.state[(21*i)%55] = value
		temp := prev - value
		prev = value
		if temp < 0 {
			temp += genMax
		}
		value = temp
	}
	for pass := 0; pass < 4; pass++ {
		for k := 0; k < 56; k++ {
			g.state[k] -= g.state[1+(k+30)%55]
			if g.state[k] < 0 {
				g.state[k] += genMax
			}
		}
	}
	g.i1, g.i2 = 0, 21
	return g
}

// next returns the following generator output. Both cursors advance by
// one and wrap from 56 back to 1; slot 0 is never read after setup.
func (g *generator) next() int32 {
	g.i1++
	g.i2++
	if g.i1 >= 56 {
		g.i1 = 1
	}
	if g.i2 >= 56 {
		g.i2 = 1
	}
	v := g.state[g.i1] - g.state[g.i2]
	if v < 0 {
		v += genMax
	}
	g.state[g.i1] = v
	return v
}
