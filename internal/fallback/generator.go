package fallback

import (
	"math/rand/v2"
	"strings"

	"github.com/abhisek/assessgen/internal/items"
	"github.com/abhisek/assessgen/internal/logger"
)

// Generator produces items from hand-authored template banks without any
// network access. It never fails: it always returns exactly the requested
// number of items.
type Generator struct {
	rng *rand.Rand
	log *logger.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand enables probability-gated MCQ option shuffling driven by r.
// Without it the generator is fully deterministic.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithLogger attaches a logger for exhaustion warnings.
func WithLogger(l *logger.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{log: logger.Nop()}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate returns count items for topic. Candidates come from the first
// matching keyword category, then from the generic {topic} banks, and are
// deduplicated before truncation. If deduplication still leaves a gap the
// batch is completed with numbered review items.
func (g *Generator) Generate(topic string, count int, kind items.Kind) []items.Item {
	if count <= 0 {
		return nil
	}
	topic = strings.TrimSpace(topic)

	var candidates []items.Item
	if c, ok := classify(topic, kind); ok {
		candidates = append(candidates, fromCategory(c, kind)...)
	}
	candidates = append(candidates, generic(topic, kind)...)

	out := items.Dedupe(candidates)
	if len(out) > count {
		out = out[:count]
	}

	if len(out) < count {
		g.log.Warn("fallback bank exhausted, padding with review items",
			"topic", topic, "kind", kind.String(), "have", len(out), "want", count)
		out = g.pad(out, topic, count, kind)
	}

	if kind == items.KindMCQ && g.rng != nil {
		for i, it := range out {
			if g.rng.Float64() >= ShuffleProbability {
				continue
			}
			q := it.(items.MCQItem)
			opts, correct := ShuffleOptions(q.Options, q.CorrectAnswer, g.rng)
			out[i] = items.NewMCQ(q.Question, opts, correct)
		}
	}
	return out
}

// pad appends numbered review items until count unique items exist.
func (g *Generator) pad(out []items.Item, topic string, count int, kind items.Kind) []items.Item {
	for n := 1; len(out) < count && n <= count*4; n++ {
		candidate := append(append([]items.Item(nil), out...), padItem(kind, topic, n))
		if next := items.Dedupe(candidate); len(next) > len(out) {
			out = next
		}
	}
	return out
}

func fromCategory(c category, kind items.Kind) []items.Item {
	switch kind {
	case items.KindMCQ:
		out := make([]items.Item, 0, len(c.mcq))
		for _, t := range c.mcq {
			out = append(out, items.NewMCQ(t.question, optionMap(t.options, ""), t.correct))
		}
		return out
	case items.KindFillBlank:
		out := make([]items.Item, 0, len(c.blanks))
		for _, t := range c.blanks {
			out = append(out, items.NewFillBlank(t.sentence, t.blankWord, t.hint))
		}
		return out
	case items.KindTrueFalse:
		out := make([]items.Item, 0, len(c.statements))
		for _, t := range c.statements {
			out = append(out, items.NewTrueFalse(t.statement, t.answer, t.explanation))
		}
		return out
	}
	return nil
}

func generic(topic string, kind items.Kind) []items.Item {
	switch kind {
	case items.KindMCQ:
		return genericMCQ(topic)
	case items.KindFillBlank:
		return genericFillBlank(topic)
	case items.KindTrueFalse:
		return genericTrueFalse(topic)
	}
	return nil
}
