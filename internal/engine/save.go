package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jsredmond/zork1-sub000/internal/parser"
	"github.com/jsredmond/zork1-sub000/internal/world"
)

// savedLocation is the on-disk form of a world.Location.
type savedLocation struct {
	Kind   string `yaml:"kind"` // "room", "object", "held", "nowhere"
	Room   string `yaml:"room,omitempty"`
	Parent string `yaml:"parent,omitempty"`
}

// savedState captures everything that changes during play. The static world
// definition is not saved; loading requires the same world content.
type savedState struct {
	SessionID string                   `yaml:"session_id"`
	Current   string                   `yaml:"current_room"`
	Turns     int                      `yaml:"turns"`
	Locations map[string]savedLocation `yaml:"locations"`
	Open      map[string]bool          `yaml:"open"`
	Pronouns  map[string][]string      `yaml:"pronouns"`
	History   []HistoryEntry           `yaml:"history"`
}

var pronounNames = map[parser.PronounKind]string{
	parser.PronounIt:   "it",
	parser.PronounThem: "them",
}

// Save writes the session's mutable state to <dir>/<name>/session.yaml.
func (s *Session) Save(dir, name string) error {
	state := savedState{
		SessionID: s.ID.String(),
		Current:   string(s.World.Current),
		Turns:     s.Turns,
		Locations: make(map[string]savedLocation, len(s.World.Objects)),
		Open:      make(map[string]bool),
		Pronouns:  make(map[string][]string),
		History:   s.History,
	}
	for id, o := range s.World.Objects {
		state.Locations[string(id)] = encodeLocation(o.Loc)
		if o.Flags.Has(world.FlagContainer) || o.Flags.Has(world.FlagOpen) {
			state.Open[string(id)] = o.Flags.Has(world.FlagOpen)
		}
	}
	for kind, ids := range s.Pronouns.Bindings() {
		pname, ok := pronounNames[kind]
		if !ok {
			continue
		}
		for _, id := range ids {
			state.Pronouns[pname] = append(state.Pronouns[pname], string(id))
		}
	}

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(state)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(path, "session.yaml"), data, 0644)
}

// Restore applies a saved state on top of the session's freshly loaded
// world. The world definition must match the one the save was made from.
func (s *Session) Restore(dir, name string) error {
	data, err := os.ReadFile(filepath.Join(dir, name, "session.yaml"))
	if err != nil {
		return err
	}
	var state savedState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return err
	}

	if _, err := s.World.Room(world.RoomID(state.Current)); err != nil {
		return fmt.Errorf("save does not match this world: %w", err)
	}
	for id, loc := range state.Locations {
		o, err := s.World.Object(world.ObjectID(id))
		if err != nil {
			return fmt.Errorf("save does not match this world: %w", err)
		}
		o.Loc = decodeLocation(loc)
	}
	for id, open := range state.Open {
		if err := s.World.SetOpen(world.ObjectID(id), open); err != nil {
			return fmt.Errorf("save does not match this world: %w", err)
		}
	}
	s.World.Current = world.RoomID(state.Current)
	s.Turns = state.Turns
	s.History = state.History

	bindings := make(map[parser.PronounKind][]world.ObjectID)
	for name, ids := range state.Pronouns {
		var kind parser.PronounKind
		switch name {
		case "it":
			kind = parser.PronounIt
		case "them":
			kind = parser.PronounThem
		default:
			continue
		}
		for _, id := range ids {
			bindings[kind] = append(bindings[kind], world.ObjectID(id))
		}
	}
	s.Pronouns.Restore(bindings)
	return nil
}

// ListSaves returns the saved session names under dir.
func ListSaves(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		marker := filepath.Join(dir, entry.Name(), "session.yaml")
		if _, err := os.Stat(marker); err == nil {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func encodeLocation(loc world.Location) savedLocation {
	switch loc.Kind {
	case world.LocRoom:
		return savedLocation{Kind: "room", Room: string(loc.Room)}
	case world.LocObject:
		return savedLocation{Kind: "object", Parent: string(loc.Parent)}
	case world.LocHeld:
		return savedLocation{Kind: "held"}
	default:
		return savedLocation{Kind: "nowhere"}
	}
}

func decodeLocation(loc savedLocation) world.Location {
	switch loc.Kind {
	case "room":
		return world.InRoom(world.RoomID(loc.Room))
	case "object":
		return world.Inside(world.ObjectID(loc.Parent))
	case "held":
		return world.Held()
	default:
		return world.Nowhere()
	}
}
