package itemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/assessgen/internal/items"
	"github.com/abhisek/assessgen/internal/llm"
)

const (
	mcqSystemPrompt = "You are an expert educator creating clear multiple choice questions."

	fillBlankSystemPrompt = "You are an expert educator specializing in creating high-quality, unique fill-in-the-blank questions. " +
		"You follow every instruction exactly and never repeat a question. " +
		"Every blank tests real knowledge of the topic."

	trueFalseSystemPrompt = "You are an expert educator specializing in creating high-quality, unique True/False questions. " +
		"You follow every instruction exactly and never repeat a statement. " +
		"Every statement is factually checkable and tests real knowledge of the topic."
)

// BuildPrompt assembles the LLM request for count items of kind about topic.
// It returns an error wrapping ErrInvalidRequest when the inputs are out of
// range.
func BuildPrompt(topic string, count int, kind items.Kind, cfg Config) (llm.Request, error) {
	topic = strings.TrimSpace(topic)
	if err := (Request{Topic: topic, Count: count, Kind: kind}).Validate(); err != nil {
		return llm.Request{}, err
	}

	var system, user string
	switch kind {
	case items.KindMCQ:
		system, user = mcqSystemPrompt, buildMCQMessage(topic, count)
	case items.KindFillBlank:
		system, user = fillBlankSystemPrompt, buildFillBlankMessage(topic, count)
	case items.KindTrueFalse:
		system, user = trueFalseSystemPrompt, buildTrueFalseMessage(topic, count)
	}

	p := cfg.ParamsFor(kind)
	return llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: user},
		},
		MaxTokens:        p.MaxTokens,
		Temperature:      p.Temperature,
		TopP:             p.TopP,
		FrequencyPenalty: p.FrequencyPenalty,
		PresencePenalty:  p.PresencePenalty,
	}, nil
}

func buildMCQMessage(topic string, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate exactly %d multiple choice questions about '%s' for university students.\n\n", count, topic)
	b.WriteString("Rules:\n")
	fmt.Fprintf(&b, "- Every question must be unique and specifically about '%s'.\n", topic)
	fmt.Fprintf(&b, "- Do not ask generic questions such as \"What is %s?\".\n", topic)
	b.WriteString("- Each question has exactly 4 options labelled a) to d), with one correct answer.\n")
	b.WriteString("- Options must be real, plausible answers. Never write placeholders like \"Option A\" or \"First answer\".\n\n")

	b.WriteString("Use this EXACT format:\n\n")
	b.WriteString("1. Which loop construct always executes its body at least once?\n")
	b.WriteString("a) for loop\n")
	b.WriteString("b) while loop\n")
	b.WriteString("c) do-while loop\n")
	b.WriteString("d) foreach loop\n")
	b.WriteString("Answer: c\n\n")
	b.WriteString("2. Which keyword skips to the next iteration of a loop?\n")
	b.WriteString("a) break\n")
	b.WriteString("b) continue\n")
	b.WriteString("c) return\n")
	b.WriteString("d) exit\n")
	b.WriteString("Answer: b\n\n")

	fmt.Fprintf(&b, "Now generate %d questions about '%s' in exactly this format, with no other text.", count, topic)
	return b.String()
}

func buildFillBlankMessage(topic string, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CRITICAL INSTRUCTIONS FOR FILL-IN-THE-BLANK QUESTIONS ABOUT: '%s'\n\n", topic)

	b.WriteString("STRICT REQUIREMENTS:\n")
	fmt.Fprintf(&b, "1. Generate EXACTLY %d UNIQUE, NON-REPETITIVE questions\n", count)
	fmt.Fprintf(&b, "2. EVERY question MUST be SPECIFICALLY about '%s', NO generic questions\n", topic)
	fmt.Fprintf(&b, "3. Blank out ONLY meaningful, important terms related to '%s'\n", topic)
	fmt.Fprintf(&b, "4. NEVER blank out: %s\n", quoteList(items.ForbiddenBlankWords))
	fmt.Fprintf(&b, "5. Each sentence contains the blank marker %s exactly once\n", items.BlankMarker)
	b.WriteString("6. Sentences must be complete, grammatical and end with a period\n")
	b.WriteString("7. Every blank word must be different\n\n")

	b.WriteString("QUALITY CONTROL:\n")
	b.WriteString("- No meaningless or trivial blanks\n")
	b.WriteString("- No repeated concepts\n")
	b.WriteString("- All questions must be factually correct\n")
	fmt.Fprintf(&b, "- Each question should test a different aspect of '%s'\n\n", topic)

	b.WriteString("OUTPUT FORMAT: STRICT JSON array only, no prose and no code fences.\n")
	b.WriteString("Each object must have:\n")
	b.WriteString(`{"sentence": "Complete sentence with _____ where the blank appears", "blank_word": "the exact term removed", "hint": "a helpful clue about the term"}`)
	b.WriteString("\n\nEXAMPLES for topic 'Artificial Intelligence':\n")
	b.WriteString(`[
  {"sentence": "_____ is the branch of computer science dealing with intelligent machines.", "blank_word": "Artificial Intelligence", "hint": "Field of study for smart machines"},
  {"sentence": "The _____ algorithm is used for decision tree learning in machine learning.", "blank_word": "ID3", "hint": "Iterative Dichotomiser 3"}
]`)
	fmt.Fprintf(&b, "\n\nNOW generate %d HIGH-QUALITY, UNIQUE fill-in-the-blank questions specifically about '%s':", count, topic)
	return b.String()
}

func buildTrueFalseMessage(topic string, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "CRITICAL INSTRUCTIONS FOR TRUE/FALSE QUESTIONS ABOUT: '%s'\n\n", topic)

	b.WriteString("STRICT REQUIREMENTS:\n")
	fmt.Fprintf(&b, "1. Generate EXACTLY %d UNIQUE, NON-REPETITIVE statements\n", count)
	fmt.Fprintf(&b, "2. EVERY statement MUST be SPECIFICALLY about '%s', NO generic statements\n", topic)
	b.WriteString("3. Mix true and false statements in roughly equal numbers\n")
	b.WriteString("4. False statements must be plausible, not obviously wrong\n")
	b.WriteString("5. Each statement is a single complete sentence\n")
	b.WriteString("6. Each explanation says in one or two sentences why the statement is true or false\n\n")

	b.WriteString("QUALITY CONTROL:\n")
	b.WriteString("- No ambiguous or opinion-based statements\n")
	b.WriteString("- No repeated concepts\n")
	b.WriteString("- All facts must be accurate\n")
	fmt.Fprintf(&b, "- Each statement should test a different aspect of '%s'\n\n", topic)

	b.WriteString("OUTPUT FORMAT: STRICT JSON array only, no prose and no code fences.\n")
	b.WriteString("Each object must have:\n")
	b.WriteString(`{"statement": "a complete sentence", "answer": true, "explanation": "why it is true or false"}`)
	b.WriteString("\nThe answer field is a JSON boolean, never a string.\n\n")
	b.WriteString("EXAMPLES for topic 'Machine Learning':\n")
	b.WriteString(`[
  {"statement": "Machine learning is a subset of artificial intelligence.", "answer": true, "explanation": "Machine learning is one of the main approaches within the field of AI."},
  {"statement": "Neural networks were first developed in the 21st century.", "answer": false, "explanation": "The perceptron, an early neural network, dates back to the 1950s."}
]`)
	fmt.Fprintf(&b, "\n\nNOW generate %d HIGH-QUALITY, UNIQUE True/False statements specifically about '%s':", count, topic)
	return b.String()
}

func quoteList(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = "'" + w + "'"
	}
	return strings.Join(quoted, ", ")
}
