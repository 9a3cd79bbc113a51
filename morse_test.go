package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeWord(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		var w CodeWord

		assert.True(t, w.IsZero())
		assert.Equal(t, 0, w.Len())
		assert.Equal(t, "", w.String())
	})

	t.Run("partial", func(t *testing.T) {
		w := CodeWord{Dash, Dot}

		assert.False(t, w.IsZero())
		assert.Equal(t, 2, w.Len())
		assert.Equal(t, "-.", w.String())
	})

	t.Run("full", func(t *testing.T) {
		w := CodeWord{Dot, Dot, Dot, Dot, Dot}

		assert.Equal(t, MaxSymbols, w.Len())
		assert.Equal(t, ".....", w.String())
	})

	t.Run("append", func(t *testing.T) {
		w, err := Encode('K')
		require.NoError(t, err)

		dst := w.AppendTo([]byte("K is "))
		assert.Equal(t, "K is -.-", string(dst))
	})
}

func TestCodebook(t *testing.T) {
	// 1-based heap indexing over a depth-five tree plus the padding slot.
	require.Len(t, codebook, 33)

	letters := make(map[byte]int, 26)
	for i := 0; i < len(codebook); i++ {
		c := codebook[i]
		if c == Node || c == Unassigned {
			continue
		}

		require.GreaterOrEqual(t, c, byte('A'), "slot %d", i)
		require.LessOrEqual(t, c, byte('Z'), "slot %d", i)
		letters[c]++
	}

	assert.Len(t, letters, 26, "every letter appears")
	for c, n := range letters {
		assert.Equal(t, 1, n, "letter %q appears exactly once", c)
	}

	// Slot 0 is padding, slot 1 the root; both are structural.
	assert.Equal(t, byte(Node), codebook[0])
	assert.Equal(t, byte(Node), codebook[1])
}
