package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsredmond/zork1-sub000/internal/vocab"
)

func tokenizerVocab() *vocab.Table {
	tab := vocab.NewTable()
	tab.Add("take", vocab.Verb)
	tab.Add("say", vocab.Verb)
	tab.MarkVerbatim("say")
	tab.Add("lamp", vocab.Noun)
	tab.Add("the", vocab.Article)
	return tab
}

func TestTokenizeSplitsAndClassifies(t *testing.T) {
	tab := tokenizerVocab()

	tokens, literal := Tokenize("take the lamp", tab)
	require.Len(t, tokens, 3)
	assert.Empty(t, literal)
	assert.Equal(t, vocab.Verb, tokens[0].Category)
	assert.Equal(t, vocab.Article, tokens[1].Category)
	assert.Equal(t, vocab.Noun, tokens[2].Category)
}

func TestTokenizeStripsPunctuation(t *testing.T) {
	tab := tokenizerVocab()

	tokens, _ := Tokenize("take the lamp, please!", tab)
	require.Len(t, tokens, 4)
	assert.Equal(t, "lamp", tokens[2].Text)
	assert.Equal(t, "please", tokens[3].Text)
}

func TestTokenizeLowercases(t *testing.T) {
	tab := tokenizerVocab()

	tokens, _ := Tokenize("TAKE LAMP", tab)
	require.Len(t, tokens, 2)
	assert.Equal(t, "take", tokens[0].Text)
	assert.Equal(t, vocab.Verb, tokens[0].Category)
}

func TestTokenizeEmptyInput(t *testing.T) {
	tab := tokenizerVocab()

	tokens, literal := Tokenize("", tab)
	assert.Empty(t, tokens)
	assert.Empty(t, literal)

	tokens, _ = Tokenize("   ", tab)
	assert.Empty(t, tokens)
}

func TestTokenizeVerbatimVerbKeepsTrailingText(t *testing.T) {
	tab := tokenizerVocab()

	tokens, literal := Tokenize("say Hello, sailor!", tab)
	require.Len(t, tokens, 1)
	assert.Equal(t, "say", tokens[0].Text)
	assert.Equal(t, "Hello, sailor!", literal, "verbatim payload keeps case and punctuation")
}

func TestTokenizeVerbatimVerbAlone(t *testing.T) {
	tab := tokenizerVocab()

	tokens, literal := Tokenize("say", tab)
	require.Len(t, tokens, 1)
	assert.Empty(t, literal)
}

func TestTokenizeNonVerbatimSplitsNormally(t *testing.T) {
	tab := tokenizerVocab()

	tokens, literal := Tokenize("take Hello, sailor!", tab)
	assert.Empty(t, literal)
	assert.Len(t, tokens, 3)
}
