// Package words supplies random target words for a round from static,
// embedded lists split by difficulty tier.
package words

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	_ "embed"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	WordLength = 5
)

var (
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrEmptyWordList     = errors.New("word list is empty")
)

//go:embed easy.txt
var embeddedEasy string

//go:embed medium.txt
var embeddedMedium string

//go:embed hard.txt
var embeddedHard string

// Source holds the parsed word lists. It is immutable after New and safe
// for concurrent use.
type Source struct {
	tiers map[string][]string
}

func New() (*Source, error) {
	tiers := map[string][]string{
		DifficultyEasy:   parseList(embeddedEasy),
		DifficultyMedium: parseList(embeddedMedium),
		DifficultyHard:   parseList(embeddedHard),
	}

	for tier, list := range tiers {
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyWordList, tier)
		}
	}

	return &Source{tiers: tiers}, nil
}

// RandomWord returns a random uppercase word from the given tier.
func (that *Source) RandomWord(difficulty string) (string, error) {
	list, ok := that.tiers[difficulty]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownDifficulty, difficulty)
	}

	return list[rand.Intn(len(list))], nil //nolint: gosec // it's ok
}

// parseList normalizes one embedded list: one word per line, uppercased,
// anything that is not exactly five letters is dropped.
func parseList(raw string) []string {
	var out []string

	for _, line := range strings.Split(raw, "\n") {
		word := strings.ToUpper(strings.TrimSpace(line))
		if len(word) != WordLength || !isAlpha(word) {
			continue
		}
		out = append(out, word)
	}

	return out
}

func isAlpha(word string) bool {
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}
