package license

// Algorithm derives the input of one subkey from the seed. Implementations
// must be deterministic and free of side effects.
type Algorithm interface {
	Transform(seed string) string
}

// AlgorithmFunc adapts an ordinary function to Algorithm.
type AlgorithmFunc func(seed string) string

func (f AlgorithmFunc) Transform(seed string) string {
	return f(seed)
}
