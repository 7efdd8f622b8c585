// Package world models rooms, objects, and containment for a single game
// session, and answers the "what can the player refer to right now" query
// that drives noun resolution.
package world

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ObjectID uniquely identifies an object for the lifetime of a session.
type ObjectID string

// RoomID uniquely identifies a room.
type RoomID string

// Flags are object capability bits.
type Flags uint8

const (
	FlagPortable Flags = 1 << iota
	FlagContainer
	FlagOpen
	FlagScenery
	// FlagAlwaysKnown marks scenery with no location that is nameable from
	// anywhere (e.g. "house", "self").
	FlagAlwaysKnown
)

// Has reports whether all bits in f2 are set.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// LocationKind tags where an object currently is.
type LocationKind int

const (
	LocNowhere LocationKind = iota
	LocRoom
	LocObject
	LocHeld
)

// Location is an object's single current position. Exactly one of Room or
// Parent is meaningful, selected by Kind.
type Location struct {
	Kind   LocationKind
	Room   RoomID
	Parent ObjectID
}

// InRoom returns a room location.
func InRoom(id RoomID) Location { return Location{Kind: LocRoom, Room: id} }

// Inside returns a containment location.
func Inside(id ObjectID) Location { return Location{Kind: LocObject, Parent: id} }

// Held is the player-inventory location.
func Held() Location { return Location{Kind: LocHeld} }

// Nowhere is the off-stage location.
func Nowhere() Location { return Location{Kind: LocNowhere} }

// Object is a referenceable thing in the world.
type Object struct {
	ID         ObjectID
	Name       string
	Synonyms   []string
	Adjectives []string
	Loc        Location
	Flags      Flags
}

// Matches reports whether word names this object: its display name or any
// synonym, case-insensitive.
func (o *Object) Matches(word string) bool {
	if strings.EqualFold(o.Name, word) {
		return true
	}
	for _, s := range o.Synonyms {
		if strings.EqualFold(s, word) {
			return true
		}
	}
	return false
}

// HasAdjective reports whether word is in the object's adjective set.
func (o *Object) HasAdjective(word string) bool {
	for _, a := range o.Adjectives {
		if strings.EqualFold(a, word) {
			return true
		}
	}
	return false
}

// Exit leads from a room to a destination, optionally gated on another
// object being open (a door).
type Exit struct {
	To     RoomID
	IfOpen ObjectID // empty means unconditional
}

// Room is a location in the map.
type Room struct {
	ID      RoomID
	Name    string
	Exits   map[string]Exit // keyed by canonical direction word
	Ambient []ObjectID      // always nameable here regardless of placement
}

// World holds the full room/object graph plus the player's position for one
// session. It is never shared across sessions.
type World struct {
	Rooms   map[RoomID]*Room
	Objects map[ObjectID]*Object
	Current RoomID
}

// New returns an empty world.
func New() *World {
	return &World{
		Rooms:   make(map[RoomID]*Room),
		Objects: make(map[ObjectID]*Object),
	}
}

// Typed mutation errors.
var (
	ErrUnknownObject    = errors.New("unknown object")
	ErrUnknownRoom      = errors.New("unknown room")
	ErrNotContainer     = errors.New("not a container")
	ErrContainmentCycle = errors.New("containment cycle")
)

// Object looks up an object by id.
func (w *World) Object(id ObjectID) (*Object, error) {
	o, ok := w.Objects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownObject, id)
	}
	return o, nil
}

// Room looks up a room by id.
func (w *World) Room(id RoomID) (*Room, error) {
	r, ok := w.Rooms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoom, id)
	}
	return r, nil
}

// CurrentRoom returns the room the player is in.
func (w *World) CurrentRoom() *Room { return w.Rooms[w.Current] }

// MoveToRoom places an object directly in a room.
func (w *World) MoveToRoom(id ObjectID, room RoomID) error {
	o, err := w.Object(id)
	if err != nil {
		return err
	}
	if _, err := w.Room(room); err != nil {
		return err
	}
	o.Loc = InRoom(room)
	return nil
}

// MoveInto places an object inside a container. The move is rejected with
// ErrContainmentCycle if the object appears anywhere in the container's own
// ownership chain, keeping containment a tree.
func (w *World) MoveInto(id, container ObjectID) error {
	o, err := w.Object(id)
	if err != nil {
		return err
	}
	c, err := w.Object(container)
	if err != nil {
		return err
	}
	if !c.Flags.Has(FlagContainer) {
		return fmt.Errorf("%w: %s", ErrNotContainer, container)
	}
	for cur := c; ; {
		if cur.ID == o.ID {
			return fmt.Errorf("%w: %s into %s", ErrContainmentCycle, id, container)
		}
		if cur.Loc.Kind != LocObject {
			break
		}
		next, err := w.Object(cur.Loc.Parent)
		if err != nil {
			return err
		}
		cur = next
	}
	o.Loc = Inside(container)
	return nil
}

// Take moves an object into the player's hands.
func (w *World) Take(id ObjectID) error {
	o, err := w.Object(id)
	if err != nil {
		return err
	}
	o.Loc = Held()
	return nil
}

// SetOpen opens or closes an object. Whether the object is something that
// can sensibly be opened (a container, a door) is the action executor's
// judgement, not the world model's.
func (w *World) SetOpen(id ObjectID, open bool) error {
	o, err := w.Object(id)
	if err != nil {
		return err
	}
	if open {
		o.Flags |= FlagOpen
	} else {
		o.Flags &^= FlagOpen
	}
	return nil
}

// Held returns the inventory, sorted by id.
func (w *World) Held() []*Object {
	var held []*Object
	for _, o := range w.Objects {
		if o.Loc.Kind == LocHeld {
			held = append(held, o)
		}
	}
	sortObjects(held)
	return held
}

// Contents returns the objects directly inside a container, sorted by id.
func (w *World) Contents(id ObjectID) []*Object {
	var in []*Object
	for _, o := range w.Objects {
		if o.Loc.Kind == LocObject && o.Loc.Parent == id {
			in = append(in, o)
		}
	}
	sortObjects(in)
	return in
}

// InRoom returns the objects directly in a room, sorted by id.
func (w *World) InRoom(id RoomID) []*Object {
	var in []*Object
	for _, o := range w.Objects {
		if o.Loc.Kind == LocRoom && o.Loc.Room == id {
			in = append(in, o)
		}
	}
	sortObjects(in)
	return in
}

// Reachable computes the set of objects the player can refer to this turn:
// held objects, objects in the current room, the contents of open reachable
// containers (recursively; closed containers hide their contents), the
// room's ambient objects, and always-nameable global scenery. The set is
// recomputed on every call because openness and location change between
// turns; callers must not cache it.
func (w *World) Reachable() []*Object {
	seen := make(map[ObjectID]bool)
	var out []*Object
	add := func(o *Object) {
		if !seen[o.ID] {
			seen[o.ID] = true
			out = append(out, o)
		}
	}

	// Seed with everything directly referenceable: inventory, the current
	// room's contents, its ambient objects, and global scenery.
	var frontier []*Object
	seed := func(o *Object) {
		if !seen[o.ID] {
			add(o)
			frontier = append(frontier, o)
		}
	}
	for _, o := range w.Held() {
		seed(o)
	}
	for _, o := range w.InRoom(w.Current) {
		seed(o)
	}
	if room := w.CurrentRoom(); room != nil {
		for _, id := range room.Ambient {
			if o, ok := w.Objects[id]; ok {
				seed(o)
			}
		}
	}
	for _, o := range w.Objects {
		if o.Loc.Kind == LocNowhere && o.Flags.Has(FlagAlwaysKnown) {
			seed(o)
		}
	}

	// Descend through open containers only; closed ones hide their
	// contents.
	for len(frontier) > 0 {
		o := frontier[0]
		frontier = frontier[1:]
		if !o.Flags.Has(FlagContainer | FlagOpen) {
			continue
		}
		for _, inner := range w.Contents(o.ID) {
			seed(inner)
		}
	}

	sortObjects(out)
	return out
}

func sortObjects(objs []*Object) {
	sort.Slice(objs, func(i, j int) bool { return objs[i].ID < objs[j].ID })
}
