package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single", "E", "."},
		{"sos", "SOS", "... --- ..."},
		{"alphabet head", "ABC", ".- -... -.-."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("strict", func(t *testing.T) {
		_, err := EncodeString("SoS")

		var nerr *NotEncodableError
		require.ErrorAs(t, err, &nerr)
		assert.Equal(t, byte('o'), nerr.Char)
	})
}

func TestDecodeFields(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"single", "--.-", "Q"},
		{"sos", "... --- ...", "SOS"},
		{"ragged whitespace", " .-   -...\t-.-. ", "ABC"},
		{"unassigned words pass through", "...... ----", "??"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeFields(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("strict", func(t *testing.T) {
		_, err := DecodeFields(".- ..x")

		var serr *InvalidSymbolError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, byte('x'), serr.Symbol)
		assert.Equal(t, 2, serr.Offset)
	})
}
