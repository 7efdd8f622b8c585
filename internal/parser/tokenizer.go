// Package parser turns raw player input into structured commands: it
// tokenizes a line, classifies words against the vocabulary, matches noun
// phrases against the reachable-object set, and resolves pronouns.
package parser

import (
	"strings"
	"unicode"

	"github.com/jsredmond/zork1-sub000/internal/vocab"
)

// Tokenize splits a trimmed command line into classified tokens. If the line
// begins with a verbatim verb (a say/echo-style command), everything after
// the verb is returned untouched as literal instead of being split; the
// token slice then holds only the verb. Empty input yields no tokens.
func Tokenize(line string, tab *vocab.Table) (tokens []vocab.Token, literal string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ""
	}

	fields := strings.Fields(line)
	first := stripPunct(fields[0])
	if first != "" && tab.Classify(first) == vocab.Verb && tab.Verbatim(first) {
		rest := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
		return []vocab.Token{tab.Token(first)}, rest
	}

	for _, f := range fields {
		w := stripPunct(f)
		if w == "" {
			continue
		}
		tokens = append(tokens, tab.Token(w))
	}
	return tokens, ""
}

// stripPunct removes punctuation from a word, keeping letters, digits,
// hyphens, and apostrophes ("lantern," → "lantern", "grue's" stays intact).
func stripPunct(word string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '\'' {
			return unicode.ToLower(r)
		}
		return -1
	}, word)
}
