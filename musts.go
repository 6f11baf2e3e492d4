package places

// MustParse is like Parse but panics on error. Intended for package-level
// constants and tests.
func MustParse(s string) Row {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// MustNewFromDigits is like NewFromDigits but panics on error.
func MustNewFromDigits(digits []Word) Row {
	r, err := NewFromDigits(digits)
	if err != nil {
		panic(err)
	}
	return r
}
