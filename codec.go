package morse

// Encode returns the code word assigned to char.
//
// Only characters holding a regular codebook slot - the uppercase letters
// A-Z - have a code word. For anything else, the reserved characters '*'
// and '?' included, Encode returns a NotEncodableError.
func Encode(char byte) (CodeWord, error) {
	var w CodeWord

	pos := -1
	for i := 0; i < len(codebook); i++ {
		if codebook[i] == char {
			pos = i
			break
		}
	}

	// The guard is on the matched slot's value rather than on char, so
	// seeking either reserved character fails the same way as a miss.
	if pos < 0 || codebook[pos] == Node || codebook[pos] == Unassigned {
		return w, &NotEncodableError{Char: char}
	}

	// Climbing from the slot towards the root yields the symbols leaf
	// first: odd slots are dash children, even slots dot children.
	n := 0
	for ; pos > 1; pos >>= 1 {
		if pos&1 == 1 {
			w[n] = Dash
		} else {
			w[n] = Dot
		}
		n++
	}

	reverseSymbols(w[:n])

	return w, nil
}

// Decode returns the character encoded by the given sequence of dot and
// dash symbols. The end of the slice terminates the code word.
//
// The word is walked down the code tree and the slot it lands on is
// returned verbatim, so words landing on a reserved slot yield Node or
// Unassigned as regular results - an empty word yields Node (the root) -
// and words walking below the deepest slot yield Unassigned. None of those
// are failures. The only failure mode is a byte that is neither a dot nor
// a dash, reported as an InvalidSymbolError for the first such byte.
func Decode(word []byte) (byte, error) {
	// Slot 1 seeds the walk: the implicit leading bit keeps words with
	// leading dots from collapsing onto each other.
	pos := 1

	for i := 0; i < len(word); i++ {
		switch word[i] {
		case Dot:
			pos <<= 1
		case Dash:
			pos = pos<<1 + 1
		default:
			return 0, &InvalidSymbolError{Symbol: word[i], Offset: i}
		}

		if pos >= len(codebook) {
			// Below the deepest slot already. Clamp so arbitrarily long
			// words cannot overflow, but keep scanning - a bad symbol
			// further in must still fail.
			pos = len(codebook)
		}
	}

	if pos >= len(codebook) {
		return Unassigned, nil
	}

	return codebook[pos], nil
}

// DecodeString decodes a code word held in a string.
// See Decode for the semantics.
func DecodeString(word string) (byte, error) {
	return Decode([]byte(word))
}

// reverseSymbols flips the climb order in place, yielding the symbols
// root first.
func reverseSymbols(s []byte) {
	last := len(s) - 1
	for i := 0; i < len(s)/2; i++ {
		s[i], s[last-i] = s[last-i], s[i]
	}
}
