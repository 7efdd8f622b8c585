package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T) *Table {
	t.Helper()
	tab := NewTable()
	tab.Add("take", Verb)
	tab.AddSynonym("get", "take")
	tab.AddSynonym("grab", "take")
	tab.Add("say", Verb)
	tab.MarkVerbatim("say")
	tab.AddSynonym("shout", "say")
	tab.Add("north", Direction)
	tab.AddSynonym("n", "north")
	tab.Add("lamp", Noun)
	tab.AddSynonym("lantern", "lamp")
	tab.Add("brass", Adjective)
	tab.Add("in", Preposition)
	tab.Add("the", Article)
	tab.Add("it", Pronoun)
	return tab
}

func TestClassify(t *testing.T) {
	tab := buildTable(t)

	assert.Equal(t, Verb, tab.Classify("take"))
	assert.Equal(t, Verb, tab.Classify("get"), "synonyms share the base word's category")
	assert.Equal(t, Direction, tab.Classify("n"))
	assert.Equal(t, Noun, tab.Classify("lantern"))
	assert.Equal(t, Adjective, tab.Classify("brass"))
	assert.Equal(t, Preposition, tab.Classify("in"))
	assert.Equal(t, Article, tab.Classify("the"))
	assert.Equal(t, Pronoun, tab.Classify("it"))
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	tab := buildTable(t)
	assert.Equal(t, Verb, tab.Classify("TAKE"))
	assert.Equal(t, Noun, tab.Classify("Lantern"))
}

func TestClassifyUnknown(t *testing.T) {
	tab := buildTable(t)
	assert.Equal(t, Unknown, tab.Classify("xyzzy"))
}

func TestExpand(t *testing.T) {
	tab := buildTable(t)

	assert.Equal(t, "take", tab.Expand("get"))
	assert.Equal(t, "take", tab.Expand("take"))
	assert.Equal(t, "north", tab.Expand("n"))
	assert.Equal(t, "lamp", tab.Expand("lantern"))
	assert.Equal(t, "xyzzy", tab.Expand("xyzzy"), "unknown words expand to themselves")
}

func TestExpandIsIdempotent(t *testing.T) {
	tab := buildTable(t)
	for _, w := range tab.Words() {
		once := tab.Expand(w)
		assert.Equal(t, once, tab.Expand(once), "Expand(Expand(%q))", w)
	}
}

func TestVerbatim(t *testing.T) {
	tab := buildTable(t)
	assert.True(t, tab.Verbatim("say"))
	assert.True(t, tab.Verbatim("shout"), "verbatim follows synonym expansion")
	assert.False(t, tab.Verbatim("take"))
}

func TestToken(t *testing.T) {
	tab := buildTable(t)

	tok := tab.Token("GET")
	require.Equal(t, "get", tok.Text)
	assert.Equal(t, "take", tok.Canonical)
	assert.Equal(t, Verb, tok.Category)

	unknown := tab.Token("plugh")
	assert.Equal(t, Unknown, unknown.Category)
	assert.Equal(t, "plugh", unknown.Canonical)
}

func TestAddSynonymRequiresCanonical(t *testing.T) {
	tab := NewTable()
	tab.AddSynonym("get", "take") // "take" not registered yet
	assert.Equal(t, Unknown, tab.Classify("get"))
}
