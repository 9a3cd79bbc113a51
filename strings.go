package morse

import "strings"

// EncodeString encodes every byte of s, returning the code words joined by
// single spaces. Encoding is strict: it aborts with the NotEncodableError
// of the first byte without a code word.
func EncodeString(s string) (string, error) {
	if s == "" {
		return "", nil
	}

	var b strings.Builder
	b.Grow(len(s) * (MaxSymbols + 1))

	for i := 0; i < len(s); i++ {
		w, err := Encode(s[i])
		if err != nil {
			return "", err
		}

		if i > 0 {
			b.WriteByte(' ')
		}
		b.Write(w[:w.Len()])
	}

	return b.String(), nil
}

// DecodeFields decodes each whitespace-separated code word of s and
// concatenates the decoded characters. It aborts with the error of the
// first word that fails to decode.
func DecodeFields(s string) (string, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", nil
	}

	out := make([]byte, len(fields))
	for i, f := range fields {
		c, err := DecodeString(f)
		if err != nil {
			return "", err
		}
		out[i] = c
	}

	return string(out), nil
}
