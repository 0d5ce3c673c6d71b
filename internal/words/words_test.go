package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_RandomWord(t *testing.T) {
	source, err := New()
	require.NoError(t, err)

	t.Run("Returns an uppercase five-letter word for every tier", func(t *testing.T) {
		for _, tier := range []string{DifficultyEasy, DifficultyMedium, DifficultyHard} {
			// When: a word is drawn from the tier
			word, err := source.RandomWord(tier)

			// Then: it is a normalized five-letter word
			require.NoError(t, err)
			assert.Len(t, word, WordLength)
			assert.True(t, isAlpha(word), "word %q should be uppercase letters only", word)
		}
	})

	t.Run("Unknown tier is an error", func(t *testing.T) {
		_, err := source.RandomWord("impossible")

		assert.ErrorIs(t, err, ErrUnknownDifficulty)
	})
}

func TestParseList(t *testing.T) {
	// Given: a raw list with casing noise, short words and blank lines
	raw := "apple\n\nMANGO \ncat\nlongerword\ngr4pe\n"

	// When: the list is parsed
	list := parseList(raw)

	// Then: only valid five-letter words survive, uppercased
	assert.Equal(t, []string{"APPLE", "MANGO"}, list)
}
