package virusdefense

// SimpleRNG is a small linear congruential generator. Its whole state is
// one word, so copying the value checkpoints the sequence.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a generator from seed.
func NewSimpleRNG(seed int64) SimpleRNG {
	return SimpleRNG{state: uint64(seed)*6364136223846793005 + 1442695040888963407} //#nosec G115 -- seed mixing
}

// Next returns the next raw value.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n). Returns 0 for n <= 0.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n > 0
}

// State returns the generator state.
func (r SimpleRNG) State() uint64 {
	return r.state
}
