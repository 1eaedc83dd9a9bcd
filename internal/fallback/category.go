package fallback

import (
	"strings"

	"github.com/abhisek/assessgen/internal/items"
)

// category pairs a keyword predicate with the template bank it selects.
// Categories are evaluated in slice order and the first match wins; the
// order is part of the observable behavior and must not be re-ranked.
type category struct {
	name     string
	keywords []string

	mcq        []mcqTemplate
	blanks     []blankTemplate
	statements []statementTemplate
}

// matches reports whether the lower-cased topic contains any keyword.
func (c category) matches(topicLower string) bool {
	for _, kw := range c.keywords {
		if strings.Contains(topicLower, kw) {
			return true
		}
	}
	return false
}

var mcqCategories = []category{
	{name: "programming", keywords: []string{"loop", "programming", "code", "algorithm"}, mcq: programmingMCQ},
	{name: "database", keywords: []string{"database", "dbms", "sql", "mysql"}, mcq: databaseMCQ},
	{name: "network", keywords: []string{"network", "tcp", "ip", "protocol"}, mcq: networkMCQ},
	{name: "web", keywords: []string{"web", "html", "css", "javascript"}, mcq: webMCQ},
	{name: "data-structures", keywords: []string{"data structure", "array", "stack", "queue"}, mcq: dataStructureMCQ},
}

var fillBlankCategories = []category{
	{name: "loop", keywords: []string{"loop"}, blanks: loopBlanks},
	{name: "python", keywords: []string{"python"}, blanks: pythonBlanks},
	{name: "java", keywords: []string{"java"}, blanks: javaBlanks},
	{name: "array", keywords: []string{"array"}, blanks: arrayBlanks},
	{name: "function", keywords: []string{"function"}, blanks: functionBlanks},
	{name: "object", keywords: []string{"object", "oop"}, blanks: objectBlanks},
	{name: "programming", keywords: []string{"programming", "code"}, blanks: programmingBlanks},
	{name: "database", keywords: []string{"database", "sql"}, blanks: databaseBlanks},
	{name: "network", keywords: []string{"network", "internet"}, blanks: networkBlanks},
	{name: "web", keywords: []string{"web", "html"}, blanks: webBlanks},
}

var trueFalseCategories = []category{
	{name: "loop", keywords: []string{"loop"}, statements: loopStatements},
	{name: "python", keywords: []string{"python"}, statements: pythonStatements},
	{name: "java", keywords: []string{"java"}, statements: javaStatements},
	{name: "array", keywords: []string{"array"}, statements: arrayStatements},
	{name: "function", keywords: []string{"function"}, statements: functionStatements},
	{name: "object", keywords: []string{"object", "oop"}, statements: objectStatements},
	{name: "programming", keywords: []string{"programming", "code"}, statements: programmingStatements},
	{name: "database", keywords: []string{"database", "sql"}, statements: databaseStatements},
	{name: "network", keywords: []string{"network", "internet"}, statements: networkStatements},
	{name: "web", keywords: []string{"web", "html"}, statements: webStatements},
}

func categoriesFor(kind items.Kind) []category {
	switch kind {
	case items.KindMCQ:
		return mcqCategories
	case items.KindFillBlank:
		return fillBlankCategories
	case items.KindTrueFalse:
		return trueFalseCategories
	}
	return nil
}

// Classify returns the name of the first category whose keywords occur in
// topic, or "" when the topic falls through to the generic bank.
func Classify(topic string, kind items.Kind) string {
	if c, ok := classify(topic, kind); ok {
		return c.name
	}
	return ""
}

func classify(topic string, kind items.Kind) (category, bool) {
	lower := strings.ToLower(strings.TrimSpace(topic))
	for _, c := range categoriesFor(kind) {
		if c.matches(lower) {
			return c, true
		}
	}
	return category{}, false
}
