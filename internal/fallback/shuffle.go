package fallback

import (
	"math/rand/v2"

	"github.com/abhisek/assessgen/internal/items"
)

// ShuffleProbability is the chance that a fallback MCQ item has its
// options reordered when the generator is built with a random source.
const ShuffleProbability = 0.3

// ShuffleOptions permutes the four options and returns the new option map
// together with the letter that now holds the previously correct text.
// The input map is not modified. A nil r returns a copy unchanged.
func ShuffleOptions(options map[string]string, correct string, r *rand.Rand) (map[string]string, string) {
	out := make(map[string]string, len(options))
	if r == nil {
		for k, v := range options {
			out[k] = v
		}
		return out, correct
	}

	letters := items.OptionLetters
	perm := r.Perm(len(letters))

	newCorrect := correct
	for i, letter := range letters {
		src := letters[perm[i]]
		out[letter] = options[src]
		if src == correct {
			newCorrect = letter
		}
	}
	return out, newCorrect
}
