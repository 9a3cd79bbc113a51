// Package morse converts between single characters and their Morse code
// representation.
//
// The codec only deals with clean, already-discretized symbol sequences.
// Turning a raw signal into dots and dashes - pulse lengths, inter-word
// spacing, noise, operator speed - is somebody else's problem.
package morse

const (
	// Dot and Dash are the two symbols a code word is built from.
	Dot  = '.'
	Dash = '-'

	// MaxSymbols is the maximum number of symbols in a single code word,
	// bounded by the depth of the code tree.
	MaxSymbols = 5
)

const (
	// Node marks a codebook slot that is structurally present in the code
	// tree but has no character assigned to it, the root included. An
	// empty code word decodes to it.
	Node = '*'

	// Unassigned marks a leaf reserved for "no character here". Decode
	// also returns it for code words that walk below the deepest slot.
	Unassigned = '?'
)

// codebook is the Morse code tree flattened with 1-based heap indexing:
// slot 0 is padding, slot 1 the root, and the children of slot i sit at
// 2i (dot) and 2i+1 (dash).
//
//	     DOT or '.' <-- * --> DASH or '-'
//	             /             \
//	            E               T
//	          /   \           /   \
//	        I       A       N       M
//	       / \     / \     / \     / \
//	      S   U   R   W   D   K   G   O
//	     / \ / \ / \ / \ / \ / \ / \ / \
//	     H V F ? L ? P J B X C Y Z Q ? ?
//
// The trailing slot keeps five dots (slot 32) addressable.
const codebook = "**ETIANMSURWDKGOHVF?L?PJBXCYZQ???"

// CodeWord is the dot/dash sequence of a single encoded character. The
// symbols sit at the front of the array and the remainder is zero padding.
type CodeWord [MaxSymbols]byte

// Len returns the number of symbols in the code word.
func (w CodeWord) Len() int {
	for i := 0; i < MaxSymbols; i++ {
		if w[i] == 0 {
			return i
		}
	}

	return MaxSymbols
}

// IsZero checks whether the CodeWord is a zero value, which encodes no
// symbols at all.
func (w CodeWord) IsZero() bool {
	return w == CodeWord{}
}

// String returns the symbols of the code word as a string.
// It implements the std fmt Stringer interface.
func (w CodeWord) String() string {
	return string(w[:w.Len()])
}

// AppendTo appends the symbols of the code word to dst and returns the
// extended slice.
func (w CodeWord) AppendTo(dst []byte) []byte {
	return append(dst, w[:w.Len()]...)
}
