package shortener

// NewGenerator creates a code generator from config, applying the default
// length when none is set
func NewGenerator(config Config) (Generator, error) {
	length := config.CodeLength
	if length == 0 {
		length = DefaultCodeLength
	}
	return NewRandomGenerator(length)
}
