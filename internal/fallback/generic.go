package fallback

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abhisek/assessgen/internal/items"
)

// Generic banks are used when no keyword category matches. Every entry
// carries a {topic} placeholder. Each bank, with its rephrasing forms,
// yields more distinct items than the largest allowed count; the forms
// are written so that each one starts with a distinct lead-in followed by
// the frame's own distinctive words, keeping fingerprints apart.

// genericSubject is an MCQ frame: the subject phrase is dropped into each
// question form, the options and correct letter stay fixed.
type genericSubject struct {
	subject string
	options [4]string
	correct string
}

var genericMCQSubjects = []genericSubject{
	{
		subject: "the fundamental concept of {topic}",
		options: [4]string{"The basic principle underlying {topic}", "An advanced feature of {topic}", "A tool used in {topic}", "The history of {topic}"},
		correct: "a",
	},
	{
		subject: "the overall scope of {topic}",
		options: [4]string{"A comprehensive body of knowledge and practice around {topic}", "A single tool used only in {topic}", "An obsolete approach to {topic}", "A theoretical idea unrelated to {topic}"},
		correct: "a",
	},
	{
		subject: "the primary application of {topic}",
		options: [4]string{"Entertainment purposes", "Practical problem-solving in the {topic} domain", "Decoration only", "No practical use"},
		correct: "b",
	},
	{
		subject: "the main goal of studying {topic}",
		options: [4]string{"Memorizing isolated facts about {topic}", "Avoiding any practical use of {topic}", "Building a working understanding of {topic} and its uses", "Replacing every other discipline with {topic}"},
		correct: "c",
	},
	{
		subject: "the key skill needed to work with {topic}",
		options: [4]string{"Pure luck", "Ignoring established methods", "Avoiding all practice", "Careful reasoning about the core ideas of {topic}"},
		correct: "d",
	},
	{
		subject: "the usual starting point when learning {topic}",
		options: [4]string{"Its most advanced research results", "The basic terminology and ideas of {topic}", "Unrelated subjects", "Skipping straight to assessment"},
		correct: "b",
	},
	{
		subject: "the most common misconception about {topic}",
		options: [4]string{"That {topic} has a body of established knowledge", "That {topic} can be studied systematically", "That {topic} has no practical relevance", "That {topic} builds on core principles"},
		correct: "c",
	},
	{
		subject: "the best way to assess progress in {topic}",
		options: [4]string{"Applying {topic} concepts to unfamiliar problems", "Counting pages read", "Measuring time spent without practice", "Avoiding feedback entirely"},
		correct: "a",
	},
	{
		subject: "the value of historical context in {topic}",
		options: [4]string{"It has no value at all", "It replaces the need for practice", "It only matters for trivia", "It explains why current {topic} ideas developed as they did"},
		correct: "d",
	},
	{
		subject: "the relationship between theory and practice in {topic}",
		options: [4]string{"They are unrelated", "Theory guides practice and practice refines theory", "Practice makes theory unnecessary", "Theory makes practice unnecessary"},
		correct: "b",
	},
}

// mcqForms rephrase a subject into a question. Form 0 is the plain
// question; the others rotate in when the count exceeds the subject bank.
var mcqForms = []string{
	"What is %s?",
	"Regarding %s, which of the following best describes it?",
	"Considering %s, what is its primary characteristic?",
	"Concerning %s, which statement is most accurate?",
}

// genericBlankFrames each contain the blank marker and a {topic} slot.
// Concept phrases are plural, and the frames agree with them.
var genericBlankFrames = []string{
	"The concept of _____ is fundamental to understanding {topic}.",
	"In {topic}, _____ play a crucial role in the overall process.",
	"Understanding _____ is essential for mastering {topic}.",
	"The theory of {topic} rests on _____.",
	"Advanced applications of {topic} often involve _____.",
	"Most methodologies in {topic} draw on _____.",
	"Professionals working with {topic} must understand _____.",
	"The development of {topic} was shaped by _____.",
	"Practical implementation of {topic} requires knowledge of _____.",
	"Researchers study how _____ relate to {topic}.",
}

// blankLeadIns prefix a frame on later passes over the frame bank.
var blankLeadIns = []string{
	"",
	"Students learn that ",
	"Experts agree that ",
}

type conceptWord struct {
	word string
	hint string
}

var genericConcepts = []conceptWord{
	{"core principles", "Fundamental concepts"},
	{"key methodologies", "Important methods"},
	{"theoretical foundations", "Basic theories"},
	{"practical applications", "Real-world uses"},
	{"advanced techniques", "Sophisticated methods"},
	{"fundamental concepts", "Basic ideas"},
	{"critical components", "Essential parts"},
	{"underlying mechanisms", "Basic processes"},
	{"primary objectives", "Main goals"},
	{"significant developments", "Important advances"},
	{"standard practices", "Accepted ways of working"},
	{"guiding theories", "Explanatory frameworks"},
	{"analytical tools", "Instruments for analysis"},
	{"evaluation criteria", "Measures of quality"},
	{"common patterns", "Recurring structures"},
	{"design principles", "Rules for building solutions"},
	{"historical milestones", "Key moments in the past"},
	{"measurement methods", "Ways to quantify results"},
	{"problem-solving strategies", "Approaches to challenges"},
	{"specialized terms", "Field-specific vocabulary"},
	{"experimental results", "Findings from tests"},
	{"ethical considerations", "Moral questions"},
	{"quality standards", "Benchmarks to meet"},
	{"best practices", "Recommended approaches"},
	{"foundational models", "Simplified representations"},
	{"emerging trends", "New directions"},
	{"case studies", "Worked real examples"},
	{"structured frameworks", "Organizing structures"},
	{"empirical observations", "Evidence from experience"},
	{"interdisciplinary connections", "Links to other fields"},
}

// genericStatements alternate false/true starting with false, so any
// prefix of two or more items is balanced.
var genericStatements = []statementTemplate{
	{"Research on {topic} only began in the 21st century.", false, "The foundations of {topic} were laid well before the 21st century in academic work."},
	{"Mastering {topic} depends on understanding its core principles.", true, "Core principles form the foundation for advanced understanding of {topic}."},
	{"Entertainment is the only purpose of {topic}.", false, "{topic} has serious applications across various industries and research fields."},
	{"Academic literature documents the theoretical basis of {topic} in detail.", true, "Numerous research papers and textbooks cover the theoretical foundations of {topic}."},
	{"Human expertise plays no part in applying {topic}.", false, "Human expertise and oversight remain crucial in the application of {topic}."},
	{"Professional certification programs exist for practitioners of {topic}.", true, "Various organizations offer certification programs for {topic} professionals."},
	{"Only computer scientists have any use for {topic}.", false, "{topic} has applications across multiple disciplines including business, healthcare, and engineering."},
	{"New developments continue to expand what is known about {topic}.", true, "Ongoing research constantly expands the boundaries and applications of {topic}."},
	{"Expensive specialized equipment is always required to work with {topic}.", false, "Many aspects of {topic} can be implemented using commonly available tools and platforms."},
	{"Universities around the world teach the principles of {topic}.", true, "Higher education institutions globally include {topic} in their curriculum."},
}

var statementLeadIns = []string{
	"",
	"True or false: ",
	"It is claimed that ",
	"Evaluate this statement: ",
}

func substitute(s, topic string) string {
	return strings.ReplaceAll(s, "{topic}", topic)
}

// lowerFirst lower-cases the first rune so a frame can follow a lead-in.
func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// upperFirst capitalizes a substituted sentence that begins with the topic.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lead(prefix, frame string) string {
	if prefix == "" {
		return frame
	}
	return prefix + lowerFirst(frame)
}

func genericMCQ(topic string) []items.Item {
	out := make([]items.Item, 0, len(mcqForms)*len(genericMCQSubjects))
	for _, form := range mcqForms {
		for _, s := range genericMCQSubjects {
			q := fmt.Sprintf(form, substitute(s.subject, topic))
			out = append(out, items.NewMCQ(q, optionMap(s.options, topic), s.correct))
		}
	}
	return out
}

func genericFillBlank(topic string) []items.Item {
	n := len(blankLeadIns) * len(genericBlankFrames)
	if n > len(genericConcepts) {
		n = len(genericConcepts)
	}
	out := make([]items.Item, 0, n)
	for i := 0; i < n; i++ {
		frame := genericBlankFrames[i%len(genericBlankFrames)]
		prefix := blankLeadIns[i/len(genericBlankFrames)]
		c := genericConcepts[i]
		out = append(out, items.NewFillBlank(lead(prefix, substitute(frame, topic)), c.word, c.hint))
	}
	return out
}

func genericTrueFalse(topic string) []items.Item {
	out := make([]items.Item, 0, len(statementLeadIns)*len(genericStatements))
	for _, prefix := range statementLeadIns {
		for _, s := range genericStatements {
			stmt := lead(prefix, substitute(s.statement, topic))
			out = append(out, items.NewTrueFalse(stmt, s.answer, upperFirst(substitute(s.explanation, topic))))
		}
	}
	return out
}

// padItem builds the n-th numbered catch-all item. Only used when the
// banks above collapse under deduplication.
func padItem(kind items.Kind, topic string, n int) items.Item {
	switch kind {
	case items.KindMCQ:
		return items.NewMCQ(
			fmt.Sprintf("Review question %d on %s: which statement is accurate?", n, topic),
			optionMap([4]string{
				"{topic} rests on principles that can be studied and applied",
				"{topic} has no established body of knowledge",
				"{topic} cannot be learned through practice",
				"{topic} is unrelated to any other field",
			}, topic),
			"a",
		)
	case items.KindFillBlank:
		return items.NewFillBlank(
			fmt.Sprintf("Review item %d: the _____ of %s should be revisited before the exam.", n, topic),
			fmt.Sprintf("key idea %d", n),
			"A central point from the lesson",
		)
	default:
		if n%2 == 0 {
			return items.NewTrueFalse(
				fmt.Sprintf("Review statement %d: %s can be studied as a structured discipline.", n, upperFirst(topic)),
				true,
				fmt.Sprintf("%s has principles and methods that can be learned and practiced.", upperFirst(topic)),
			)
		}
		return items.NewTrueFalse(
			fmt.Sprintf("Review statement %d: %s has no underlying principles at all.", n, upperFirst(topic)),
			false,
			fmt.Sprintf("%s is built on principles that learners can identify and apply.", upperFirst(topic)),
		)
	}
}

func optionMap(opts [4]string, topic string) map[string]string {
	m := make(map[string]string, len(opts))
	for i, letter := range items.OptionLetters {
		m[letter] = upperFirst(substitute(opts[i], topic))
	}
	return m
}
