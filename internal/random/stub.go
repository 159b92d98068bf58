package random

// Fixed is a deterministic Source. Float64 always returns F; IntN returns
// Pick(n) when set, otherwise 0 or n-1 depending on High. Shuffle is the
// identity permutation.
type Fixed struct {
	F    float64
	High bool
	Pick func(n int) int
}

func (f Fixed) Float64() float64 { return f.F }

func (f Fixed) IntN(n int) int {
	if f.Pick != nil {
		return f.Pick(n)
	}
	if f.High {
		return n - 1
	}
	return 0
}

func (Fixed) Shuffle(int, func(i, j int)) {}
