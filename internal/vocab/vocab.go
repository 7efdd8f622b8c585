// Package vocab holds the game's closed vocabulary: every word the parser
// can recognize, its grammatical category, and its canonical spelling.
package vocab

import "strings"

// Category is the grammatical class of a word. Every known word belongs to
// exactly one category; anything outside the table is Unknown.
type Category int

const (
	Unknown Category = iota
	Verb
	Noun
	Adjective
	Preposition
	Direction
	Article
	Pronoun
)

func (c Category) String() string {
	switch c {
	case Verb:
		return "verb"
	case Noun:
		return "noun"
	case Adjective:
		return "adjective"
	case Preposition:
		return "preposition"
	case Direction:
		return "direction"
	case Article:
		return "article"
	case Pronoun:
		return "pronoun"
	default:
		return "unknown"
	}
}

// Token is a single classified word from a command line. It is built once by
// the tokenizer and never modified afterwards.
type Token struct {
	Text      string   // the word as the player typed it (lowercased)
	Canonical string   // synonym-resolved spelling
	Category  Category // classification at construction time
}

type entry struct {
	category  Category
	canonical string
}

// Table maps word spellings to categories and canonical forms. It is built
// once at startup by the content loader and passed by reference into every
// resolution call; nothing in this package keeps global state.
type Table struct {
	entries  map[string]entry
	verbatim map[string]bool
}

// NewTable returns an empty vocabulary table.
func NewTable() *Table {
	return &Table{
		entries:  make(map[string]entry),
		verbatim: make(map[string]bool),
	}
}

// Add registers a word under its own spelling as canonical. Words are stored
// lowercased; re-adding a word overwrites its previous classification.
func (t *Table) Add(word string, cat Category) {
	w := strings.ToLower(word)
	t.entries[w] = entry{category: cat, canonical: w}
}

// AddSynonym registers word as a synonym of canonical, sharing its category.
// The canonical word must already be in the table.
func (t *Table) AddSynonym(word, canonical string) {
	w := strings.ToLower(word)
	c := strings.ToLower(canonical)
	base, ok := t.entries[c]
	if !ok {
		return
	}
	t.entries[w] = entry{category: base.category, canonical: c}
}

// MarkVerbatim flags a verb as taking free-form trailing text. The tokenizer
// keeps everything after a verbatim verb as one literal payload.
func (t *Table) MarkVerbatim(verb string) {
	t.verbatim[strings.ToLower(verb)] = true
}

// Verbatim reports whether the word (after synonym expansion) is a verb that
// consumes the rest of the line literally.
func (t *Table) Verbatim(word string) bool {
	return t.verbatim[t.Expand(word)]
}

// Classify returns the grammatical category of a word, or Unknown when the
// word is not in the table. Unknown is permanent: it never depends on what is
// currently reachable in the world.
func (t *Table) Classify(word string) Category {
	if e, ok := t.entries[strings.ToLower(word)]; ok {
		return e.category
	}
	return Unknown
}

// Expand resolves abbreviations and synonyms to their canonical spelling.
// Expansion is idempotent: Expand(Expand(w)) == Expand(w) for every word.
// Words outside the table expand to their own lowercased spelling.
func (t *Table) Expand(word string) string {
	w := strings.ToLower(word)
	if e, ok := t.entries[w]; ok {
		return e.canonical
	}
	return w
}

// Token classifies a single word into an immutable token.
func (t *Table) Token(word string) Token {
	w := strings.ToLower(word)
	return Token{
		Text:      w,
		Canonical: t.Expand(w),
		Category:  t.Classify(w),
	}
}

// Words returns every spelling in the table. Used by tests and debugging
// dumps; order is unspecified.
func (t *Table) Words() []string {
	words := make([]string, 0, len(t.entries))
	for w := range t.entries {
		words = append(words, w)
	}
	return words
}
