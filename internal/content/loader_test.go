package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsredmond/zork1-sub000/internal/vocab"
	"github.com/jsredmond/zork1-sub000/internal/world"
)

const miniWorld = `
name: Test World
start: cave
rooms:
  - id: cave
    name: Cave
    exits:
      north: ledge
      up:
        to: ledge
        if_open: hatch
    ambient: [walls]
  - id: ledge
    name: Ledge
    exits:
      south: cave
objects:
  - id: lamp
    name: lamp
    synonyms: [lantern]
    adjectives: [brass]
    location: cave
    flags: [portable]
  - id: chest
    name: chest
    location: cave
    flags: [container, open]
  - id: coin
    name: coin
    location: in:chest
    flags: [portable]
  - id: walls
    name: walls
    location: nowhere
    flags: [scenery]
  - id: hatch
    name: hatch
    location: cave
    flags: [scenery]
  - id: rope
    name: rope
    location: held
    flags: [portable]
vocabulary:
  verbs:
    - word: take
      synonyms: [get]
    - word: say
      verbatim: true
  directions:
    - word: north
      synonyms: [n]
  prepositions: [in]
  articles: [the]
  pronouns: [it, them]
  nouns: [all]
  synonyms:
    into: in
`

func TestLoad(t *testing.T) {
	w, tab, err := Load([]byte(miniWorld))
	require.NoError(t, err)

	assert.Equal(t, world.RoomID("cave"), w.Current)
	require.Contains(t, w.Rooms, world.RoomID("cave"))
	assert.Equal(t, world.RoomID("ledge"), w.Rooms["cave"].Exits["north"].To)

	lamp := w.Objects["lamp"]
	require.NotNil(t, lamp)
	assert.Equal(t, world.InRoom("cave"), lamp.Loc)
	assert.True(t, lamp.Flags.Has(world.FlagPortable))

	assert.Equal(t, world.Inside("chest"), w.Objects["coin"].Loc)
	assert.Equal(t, world.Held(), w.Objects["rope"].Loc)
	assert.Equal(t, world.Nowhere(), w.Objects["walls"].Loc)

	assert.Equal(t, vocab.Verb, tab.Classify("get"))
	assert.Equal(t, "take", tab.Expand("get"))
	assert.True(t, tab.Verbatim("say"))
}

func TestLoadConditionalExit(t *testing.T) {
	w, _, err := Load([]byte(miniWorld))
	require.NoError(t, err)

	up := w.Rooms["cave"].Exits["up"]
	assert.Equal(t, world.RoomID("ledge"), up.To)
	assert.Equal(t, world.ObjectID("hatch"), up.IfOpen)
}

func TestLoadRegistersObjectWords(t *testing.T) {
	_, tab, err := Load([]byte(miniWorld))
	require.NoError(t, err)

	assert.Equal(t, vocab.Noun, tab.Classify("lamp"))
	assert.Equal(t, vocab.Noun, tab.Classify("lantern"))
	assert.Equal(t, "lamp", tab.Expand("lantern"))
	assert.Equal(t, vocab.Adjective, tab.Classify("brass"))
	assert.Equal(t, vocab.Preposition, tab.Classify("into"))
}

func TestLoadExpansionIdempotentOverWholeTable(t *testing.T) {
	_, tab, err := Load([]byte(miniWorld))
	require.NoError(t, err)

	for _, w := range tab.Words() {
		once := tab.Expand(w)
		assert.Equal(t, once, tab.Expand(once), "Expand(Expand(%q))", w)
	}
}

func TestLoadRejectsUnknownStart(t *testing.T) {
	_, _, err := Load([]byte("name: x\nstart: void\nrooms:\n  - id: cave\n    name: Cave\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start room")
}

func TestLoadRejectsDanglingExit(t *testing.T) {
	src := `
start: cave
rooms:
  - id: cave
    name: Cave
    exits:
      north: nowhere-land
`
	_, _, err := Load([]byte(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown room")
}

func TestLoadRejectsUnknownFlag(t *testing.T) {
	src := `
start: cave
rooms:
  - id: cave
    name: Cave
objects:
  - id: lamp
    name: lamp
    location: cave
    flags: [sparkly]
`
	_, _, err := Load([]byte(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestLoadRejectsNonContainerLocation(t *testing.T) {
	src := `
start: cave
rooms:
  - id: cave
    name: Cave
objects:
  - id: lamp
    name: lamp
    location: cave
    flags: [portable]
  - id: coin
    name: coin
    location: in:lamp
    flags: [portable]
`
	_, _, err := Load([]byte(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a container")
}

func TestLoadRejectsDuplicateObject(t *testing.T) {
	src := `
start: cave
rooms:
  - id: cave
    name: Cave
objects:
  - id: lamp
    name: lamp
    location: cave
  - id: lamp
    name: lamp
    location: cave
`
	_, _, err := Load([]byte(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate object")
}

func TestLoadDefaultWorld(t *testing.T) {
	w, tab, err := LoadDefault()
	require.NoError(t, err)
	require.NotNil(t, w.CurrentRoom())
	assert.NotEmpty(t, w.Objects)
	assert.Equal(t, vocab.Verb, tab.Classify("take"))
	assert.Equal(t, vocab.Direction, tab.Classify("n"))
}
