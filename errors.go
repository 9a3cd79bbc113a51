package morse

import "fmt"

// NotEncodableError gets returned when a character has no assigned code
// word - it is either absent from the codebook entirely or maps to one of
// the reserved slots.
type NotEncodableError struct {
	Char byte
}

func (e *NotEncodableError) Error() string {
	return fmt.Sprintf("morse: character %q has no code word", e.Char)
}

// InvalidSymbolError gets returned when a code word contains a byte that
// is neither a dot nor a dash. Offset is the position of the first such
// byte within the word.
type InvalidSymbolError struct {
	Symbol byte
	Offset int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("morse: invalid symbol %q at offset %d", e.Symbol, e.Offset)
}
