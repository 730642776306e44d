package tool

// scriptedRand replays fixed draws. Intn values are taken modulo n so a
// script can be written in terms of the final 0-based offset.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// breakTool drives durability to zero
func breakTool(t Tool) {
	t.Degrade(t.Durability())
}
