package morse

import "fmt"

// SelfTest encodes every letter A-Z and decodes the result again in one
// pass, verifying the codec against its own codebook. The first mismatch
// or codec failure aborts the run with a descriptive error.
func SelfTest() error {
	for c := byte('A'); c <= 'Z'; c++ {
		w, err := Encode(c)
		if err != nil {
			return fmt.Errorf("morse: self test: %w", err)
		}

		r, err := Decode(w[:w.Len()])
		if err != nil {
			return fmt.Errorf("morse: self test: %w", err)
		}

		if r != c {
			return fmt.Errorf("morse: self test: %q decoded to %q via [%s]", c, r, w)
		}
	}

	return nil
}
