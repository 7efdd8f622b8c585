// Package content loads world definitions: the room/object graph and the
// vocabulary, supplied as static YAML data at startup.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsredmond/zork1-sub000/internal/vocab"
	"github.com/jsredmond/zork1-sub000/internal/world"
)

//go:embed data/world.yaml
var defaultWorld []byte

// exitDef is either a bare destination room id or a destination gated on a
// door object being open.
type exitDef struct {
	To     string `yaml:"to"`
	IfOpen string `yaml:"if_open"`
}

func (e *exitDef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		e.To = value.Value
		return nil
	}
	type raw exitDef
	return value.Decode((*raw)(e))
}

type roomDef struct {
	ID      string             `yaml:"id"`
	Name    string             `yaml:"name"`
	Exits   map[string]exitDef `yaml:"exits"`
	Ambient []string           `yaml:"ambient"`
}

type objectDef struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Synonyms   []string `yaml:"synonyms"`
	Adjectives []string `yaml:"adjectives"`
	Location   string   `yaml:"location"` // room id, "held", "nowhere", or "in:<object>"
	Flags      []string `yaml:"flags"`
}

type verbDef struct {
	Word     string   `yaml:"word"`
	Synonyms []string `yaml:"synonyms"`
	Verbatim bool     `yaml:"verbatim"`
}

type directionDef struct {
	Word     string   `yaml:"word"`
	Synonyms []string `yaml:"synonyms"`
}

type vocabularyDef struct {
	Verbs        []verbDef         `yaml:"verbs"`
	Directions   []directionDef    `yaml:"directions"`
	Prepositions []string          `yaml:"prepositions"`
	Articles     []string          `yaml:"articles"`
	Pronouns     []string          `yaml:"pronouns"`
	Nouns        []string          `yaml:"nouns"` // extra nouns, e.g. "all"
	Adjectives   []string          `yaml:"adjectives"`
	Synonyms     map[string]string `yaml:"synonyms"` // word -> canonical
}

type worldDef struct {
	Name       string        `yaml:"name"`
	Start      string        `yaml:"start"`
	Rooms      []roomDef     `yaml:"rooms"`
	Objects    []objectDef   `yaml:"objects"`
	Vocabulary vocabularyDef `yaml:"vocabulary"`
}

var flagNames = map[string]world.Flags{
	"portable":     world.FlagPortable,
	"container":    world.FlagContainer,
	"open":         world.FlagOpen,
	"scenery":      world.FlagScenery,
	"always-known": world.FlagAlwaysKnown,
}

// Load parses a world definition and builds the world graph and vocabulary
// table. Object names, synonyms, and adjectives are registered in the
// vocabulary automatically.
func Load(data []byte) (*world.World, *vocab.Table, error) {
	var def worldDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, nil, fmt.Errorf("parsing world: %w", err)
	}

	w := world.New()
	for _, rd := range def.Rooms {
		if rd.ID == "" {
			return nil, nil, fmt.Errorf("room with empty id")
		}
		if _, dup := w.Rooms[world.RoomID(rd.ID)]; dup {
			return nil, nil, fmt.Errorf("duplicate room id %q", rd.ID)
		}
		room := &world.Room{
			ID:    world.RoomID(rd.ID),
			Name:  rd.Name,
			Exits: make(map[string]world.Exit, len(rd.Exits)),
		}
		for dir, ex := range rd.Exits {
			room.Exits[strings.ToLower(dir)] = world.Exit{
				To:     world.RoomID(ex.To),
				IfOpen: world.ObjectID(ex.IfOpen),
			}
		}
		for _, id := range rd.Ambient {
			room.Ambient = append(room.Ambient, world.ObjectID(id))
		}
		w.Rooms[room.ID] = room
	}

	for _, od := range def.Objects {
		if od.ID == "" {
			return nil, nil, fmt.Errorf("object with empty id")
		}
		if _, dup := w.Objects[world.ObjectID(od.ID)]; dup {
			return nil, nil, fmt.Errorf("duplicate object id %q", od.ID)
		}
		obj := &world.Object{
			ID:         world.ObjectID(od.ID),
			Name:       od.Name,
			Synonyms:   od.Synonyms,
			Adjectives: od.Adjectives,
		}
		for _, f := range od.Flags {
			bit, ok := flagNames[strings.ToLower(f)]
			if !ok {
				return nil, nil, fmt.Errorf("object %q: unknown flag %q", od.ID, f)
			}
			obj.Flags |= bit
		}
		loc, err := parseLocation(od.Location)
		if err != nil {
			return nil, nil, fmt.Errorf("object %q: %w", od.ID, err)
		}
		obj.Loc = loc
		w.Objects[obj.ID] = obj
	}

	if err := validate(w, def); err != nil {
		return nil, nil, err
	}
	w.Current = world.RoomID(def.Start)

	tab := buildVocabulary(def)
	return w, tab, nil
}

// LoadFile loads a world definition from disk.
func LoadFile(path string) (*world.World, *vocab.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading world file: %w", err)
	}
	return Load(data)
}

// LoadDefault loads the embedded world shipped with the binary.
func LoadDefault() (*world.World, *vocab.Table, error) {
	return Load(defaultWorld)
}

func parseLocation(s string) (world.Location, error) {
	switch {
	case s == "" || s == "nowhere":
		return world.Nowhere(), nil
	case s == "held":
		return world.Held(), nil
	case strings.HasPrefix(s, "in:"):
		return world.Inside(world.ObjectID(strings.TrimPrefix(s, "in:"))), nil
	default:
		return world.InRoom(world.RoomID(s)), nil
	}
}

// validate checks all cross-references after both maps are populated.
func validate(w *world.World, def worldDef) error {
	if _, ok := w.Rooms[world.RoomID(def.Start)]; !ok {
		return fmt.Errorf("start room %q not defined", def.Start)
	}
	for _, room := range w.Rooms {
		for dir, ex := range room.Exits {
			if _, ok := w.Rooms[ex.To]; !ok {
				return fmt.Errorf("room %q: exit %s leads to unknown room %q", room.ID, dir, ex.To)
			}
			if ex.IfOpen != "" {
				if _, ok := w.Objects[ex.IfOpen]; !ok {
					return fmt.Errorf("room %q: exit %s gated on unknown object %q", room.ID, dir, ex.IfOpen)
				}
			}
		}
		for _, id := range room.Ambient {
			if _, ok := w.Objects[id]; !ok {
				return fmt.Errorf("room %q: unknown ambient object %q", room.ID, id)
			}
		}
	}
	for _, obj := range w.Objects {
		switch obj.Loc.Kind {
		case world.LocRoom:
			if _, ok := w.Rooms[obj.Loc.Room]; !ok {
				return fmt.Errorf("object %q: unknown room %q", obj.ID, obj.Loc.Room)
			}
		case world.LocObject:
			parent, ok := w.Objects[obj.Loc.Parent]
			if !ok {
				return fmt.Errorf("object %q: unknown container %q", obj.ID, obj.Loc.Parent)
			}
			if !parent.Flags.Has(world.FlagContainer) {
				return fmt.Errorf("object %q: %q is not a container", obj.ID, obj.Loc.Parent)
			}
		}
	}
	return nil
}

// buildVocabulary assembles the vocabulary table from the explicit word
// lists plus every object's nouns and adjectives.
func buildVocabulary(def worldDef) *vocab.Table {
	tab := vocab.NewTable()
	v := def.Vocabulary

	for _, vd := range v.Verbs {
		tab.Add(vd.Word, vocab.Verb)
		if vd.Verbatim {
			tab.MarkVerbatim(vd.Word)
		}
		for _, syn := range vd.Synonyms {
			tab.AddSynonym(syn, vd.Word)
		}
	}
	for _, dd := range v.Directions {
		tab.Add(dd.Word, vocab.Direction)
		for _, syn := range dd.Synonyms {
			tab.AddSynonym(syn, dd.Word)
		}
	}
	for _, p := range v.Prepositions {
		tab.Add(p, vocab.Preposition)
	}
	for _, a := range v.Articles {
		tab.Add(a, vocab.Article)
	}
	for _, p := range v.Pronouns {
		tab.Add(p, vocab.Pronoun)
	}
	for _, n := range v.Nouns {
		tab.Add(n, vocab.Noun)
	}
	for _, a := range v.Adjectives {
		tab.Add(a, vocab.Adjective)
	}

	for _, od := range def.Objects {
		tab.Add(od.Name, vocab.Noun)
		for _, syn := range od.Synonyms {
			tab.AddSynonym(syn, od.Name)
		}
		for _, adj := range od.Adjectives {
			// Adjectives never displace an existing noun entry: "brass"
			// stays an adjective unless some object is literally named it.
			if tab.Classify(adj) == vocab.Unknown {
				tab.Add(adj, vocab.Adjective)
			}
		}
	}

	for word, canonical := range v.Synonyms {
		tab.AddSynonym(word, canonical)
	}
	return tab
}
