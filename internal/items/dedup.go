package items

import (
	"errors"
	"strings"
	"unicode"
)

// FingerprintTokens is the number of leading word tokens that make up a
// near-duplicate fingerprint.
const FingerprintTokens = 5

// ErrFallbackExhausted reports that a generator could not produce the
// requested number of unique items.
var ErrFallbackExhausted = errors.New("not enough unique items")

// Normalize lower-cases s and strips everything except letters and digits.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Fingerprint concatenates the first FingerprintTokens normalized word
// tokens of s. Tokens that normalize to nothing (punctuation, the blank
// marker) are skipped.
func Fingerprint(s string) string {
	var b strings.Builder
	n := 0
	for _, tok := range strings.Fields(s) {
		norm := Normalize(tok)
		if norm == "" {
			continue
		}
		b.WriteString(norm)
		n++
		if n == FingerprintTokens {
			break
		}
	}
	return b.String()
}

// Duplicate describes the first repeated item found in a batch.
type Duplicate struct {
	Index int    // position of the repeated item
	First int    // position of the earlier item it repeats
	Field string // "text", "fingerprint" or "key_term"
}

// seen tracks the uniqueness keys of items accepted so far.
type seen struct {
	text  map[string]int
	print map[string]int
	term  map[string]int
}

func newSeen(n int) *seen {
	return &seen{
		text:  make(map[string]int, n),
		print: make(map[string]int, n),
		term:  make(map[string]int, n),
	}
}

// check returns the conflicting field and index, or "" if it is new.
func (s *seen) check(it Item) (string, int) {
	text := it.PrimaryText()
	if i, ok := s.text[Normalize(text)]; ok {
		return "text", i
	}
	if i, ok := s.print[Fingerprint(text)]; ok {
		return "fingerprint", i
	}
	if fb, ok := it.(FillBlankItem); ok {
		if i, ok := s.term[fb.KeyTerm()]; ok {
			return "key_term", i
		}
	}
	return "", -1
}

func (s *seen) add(it Item, idx int) {
	text := it.PrimaryText()
	s.text[Normalize(text)] = idx
	s.print[Fingerprint(text)] = idx
	if fb, ok := it.(FillBlankItem); ok {
		s.term[fb.KeyTerm()] = idx
	}
}

// Dedupe removes duplicate and near-duplicate items, keeping the first
// occurrence and preserving order. An item is dropped when its normalized
// text, its fingerprint or (for fill-in-the-blank) its blank word was
// already seen.
func Dedupe(batch []Item) []Item {
	s := newSeen(len(batch))
	out := make([]Item, 0, len(batch))
	for _, it := range batch {
		if field, _ := s.check(it); field != "" {
			continue
		}
		s.add(it, len(out))
		out = append(out, it)
	}
	return out
}

// CheckUnique returns the first duplicate in batch, or nil if every item
// is unique under the Dedupe rules.
func CheckUnique(batch []Item) *Duplicate {
	s := newSeen(len(batch))
	for i, it := range batch {
		if field, first := s.check(it); field != "" {
			return &Duplicate{Index: i, First: first, Field: field}
		}
		s.add(it, i)
	}
	return nil
}
