package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsredmond/zork1-sub000/internal/parser"
	"github.com/jsredmond/zork1-sub000/internal/world"
)

type handler func(s *Session, cmd *parser.ParsedCommand) string

var handlers = map[string]handler{
	"walk":      doWalk,
	"take":      doTake,
	"drop":      doDrop,
	"put":       doPut,
	"open":      doOpen,
	"close":     doClose,
	"look":      doLook,
	"examine":   doExamine,
	"read":      doExamine,
	"inventory": doInventory,
	"say":       doSay,
	"wait":      doWait,
	"quit":      doQuit,
}

func (s *Session) dispatch(cmd *parser.ParsedCommand) string {
	h, ok := handlers[cmd.Verb]
	if !ok {
		return fmt.Sprintf("You can't %s anything here.", cmd.Verb)
	}
	return h(s, cmd)
}

// renderError turns a structured parse error into player-facing text. The
// resolver supplies only the structural payload; all phrasing lives here.
func renderError(perr *parser.ParseError) string {
	switch perr.Kind {
	case parser.NoVerb:
		return "There was no verb in that sentence!"
	case parser.UnknownWord:
		return fmt.Sprintf("I don't know the word %q.", perr.Word)
	case parser.ObjectNotFound:
		return fmt.Sprintf("You can't see any %s here!", perr.Word)
	case parser.Ambiguous:
		names := make([]string, len(perr.Candidates))
		for i, o := range perr.Candidates {
			names[i] = "the " + displayName(o)
		}
		return fmt.Sprintf("Which %s do you mean, %s?", perr.Word, strings.Join(names, " or "))
	case parser.InvalidSyntax:
		return "That sentence isn't one I recognize."
	default:
		return "I beg your pardon?"
	}
}

// displayName renders an object with its first adjective, "brass lantern"
// style, so ambiguity prompts are distinguishable.
func displayName(o *world.Object) string {
	if len(o.Adjectives) > 0 {
		return o.Adjectives[0] + " " + o.Name
	}
	return o.Name
}

func doWalk(s *Session, cmd *parser.ParsedCommand) string {
	if cmd.Direction == "" {
		return "Which way do you want to go?"
	}
	room := s.World.CurrentRoom()
	exit, ok := room.Exits[cmd.Direction]
	if !ok {
		return "You can't go that way."
	}
	if exit.IfOpen != "" {
		door, err := s.World.Object(exit.IfOpen)
		if err != nil {
			return "You can't go that way."
		}
		if !door.Flags.Has(world.FlagOpen) {
			return fmt.Sprintf("The %s is closed.", door.Name)
		}
	}
	s.World.Current = exit.To
	return describeRoom(s.World)
}

func doTake(s *Session, cmd *parser.ParsedCommand) string {
	if cmd.Direct == nil {
		return "What do you want to take?"
	}
	var lines []string
	for _, o := range cmd.Direct.Objects {
		lines = append(lines, takeOne(s, o, len(cmd.Direct.Objects) > 1))
	}
	return strings.Join(lines, "\n")
}

func takeOne(s *Session, o *world.Object, prefixed bool) string {
	var msg string
	switch {
	case o.Loc.Kind == world.LocHeld:
		msg = "You already have that."
	case !o.Flags.Has(world.FlagPortable):
		msg = fmt.Sprintf("You can't be serious. The %s stays where it is.", o.Name)
	default:
		if err := s.World.Take(o.ID); err != nil {
			msg = "You can't take that."
		} else {
			msg = "Taken."
		}
	}
	if prefixed {
		return fmt.Sprintf("%s: %s", displayName(o), msg)
	}
	return msg
}

func doDrop(s *Session, cmd *parser.ParsedCommand) string {
	if cmd.Direct == nil {
		return "What do you want to drop?"
	}
	var lines []string
	for _, o := range cmd.Direct.Objects {
		var msg string
		if o.Loc.Kind != world.LocHeld {
			msg = "You're not carrying that."
		} else if err := s.World.MoveToRoom(o.ID, s.World.Current); err != nil {
			msg = "You can't drop that here."
		} else {
			msg = "Dropped."
		}
		if len(cmd.Direct.Objects) > 1 {
			msg = fmt.Sprintf("%s: %s", displayName(o), msg)
		}
		lines = append(lines, msg)
	}
	return strings.Join(lines, "\n")
}

func doPut(s *Session, cmd *parser.ParsedCommand) string {
	if cmd.Direct == nil {
		return "What do you want to put?"
	}
	if cmd.Preposition != "in" || cmd.Indirect == nil {
		return "You need to say where to put it."
	}
	target := cmd.Indirect.Object()
	if target == nil {
		return "You can only put things into one container at a time."
	}
	if !target.Flags.Has(world.FlagContainer) {
		return fmt.Sprintf("You can't put anything in the %s.", target.Name)
	}
	if !target.Flags.Has(world.FlagOpen) {
		return fmt.Sprintf("The %s is closed.", target.Name)
	}
	var lines []string
	for _, o := range cmd.Direct.Objects {
		var msg string
		err := s.World.MoveInto(o.ID, target.ID)
		switch {
		case errors.Is(err, world.ErrContainmentCycle):
			msg = "You can't put something inside itself."
		case err != nil:
			msg = "You can't do that."
		default:
			msg = "Done."
		}
		if len(cmd.Direct.Objects) > 1 {
			msg = fmt.Sprintf("%s: %s", displayName(o), msg)
		}
		lines = append(lines, msg)
	}
	return strings.Join(lines, "\n")
}

func doOpen(s *Session, cmd *parser.ParsedCommand) string {
	o := directObject(cmd)
	if o == nil {
		return "What do you want to open?"
	}
	if !openable(s.World, o) {
		return fmt.Sprintf("You can't open the %s.", o.Name)
	}
	if o.Flags.Has(world.FlagOpen) {
		return "It's already open."
	}
	s.World.SetOpen(o.ID, true)
	if contents := s.World.Contents(o.ID); len(contents) > 0 {
		names := make([]string, len(contents))
		for i, c := range contents {
			names[i] = "a " + displayName(c)
		}
		return fmt.Sprintf("Opening the %s reveals %s.", o.Name, strings.Join(names, ", "))
	}
	return "Opened."
}

func doClose(s *Session, cmd *parser.ParsedCommand) string {
	o := directObject(cmd)
	if o == nil {
		return "What do you want to close?"
	}
	if !openable(s.World, o) {
		return fmt.Sprintf("You can't close the %s.", o.Name)
	}
	if !o.Flags.Has(world.FlagOpen) {
		return "It's already closed."
	}
	s.World.SetOpen(o.ID, false)
	return "Closed."
}

// openable covers containers and door-like objects that gate an exit.
func openable(w *world.World, o *world.Object) bool {
	if o.Flags.Has(world.FlagContainer) {
		return true
	}
	for _, room := range w.Rooms {
		for _, exit := range room.Exits {
			if exit.IfOpen == o.ID {
				return true
			}
		}
	}
	return false
}

func doLook(s *Session, cmd *parser.ParsedCommand) string {
	// "look at lamp" examines; bare "look" describes the room.
	if cmd.Preposition == "at" && cmd.Indirect != nil {
		return examineObjects(s, cmd.Indirect.Objects)
	}
	if cmd.Direct != nil {
		return examineObjects(s, cmd.Direct.Objects)
	}
	return describeRoom(s.World)
}

func doExamine(s *Session, cmd *parser.ParsedCommand) string {
	if cmd.Direct == nil {
		return "What do you want to examine?"
	}
	return examineObjects(s, cmd.Direct.Objects)
}

func examineObjects(s *Session, objs []*world.Object) string {
	var lines []string
	for _, o := range objs {
		lines = append(lines, examineOne(s, o))
	}
	return strings.Join(lines, "\n")
}

func examineOne(s *Session, o *world.Object) string {
	desc := fmt.Sprintf("You see nothing special about the %s.", displayName(o))
	if !o.Flags.Has(world.FlagContainer) {
		return desc
	}
	if !o.Flags.Has(world.FlagOpen) {
		return fmt.Sprintf("The %s is closed.", displayName(o))
	}
	contents := s.World.Contents(o.ID)
	if len(contents) == 0 {
		return fmt.Sprintf("The %s is open but empty.", displayName(o))
	}
	names := make([]string, len(contents))
	for i, c := range contents {
		names[i] = "a " + displayName(c)
	}
	return fmt.Sprintf("The %s contains %s.", displayName(o), strings.Join(names, ", "))
}

func doInventory(s *Session, _ *parser.ParsedCommand) string {
	held := s.World.Held()
	if len(held) == 0 {
		return "You are empty-handed."
	}
	lines := []string{"You are carrying:"}
	for _, o := range held {
		lines = append(lines, "  A "+displayName(o))
	}
	return strings.Join(lines, "\n")
}

func doSay(_ *Session, cmd *parser.ParsedCommand) string {
	if strings.TrimSpace(cmd.Literal) == "" {
		return "You open your mouth, but nothing comes out."
	}
	return fmt.Sprintf("Okay. %q", cmd.Literal)
}

func doWait(_ *Session, _ *parser.ParsedCommand) string {
	return "Time passes."
}

func doQuit(s *Session, _ *parser.ParsedCommand) string {
	s.Quit = true
	return "Goodbye."
}

func directObject(cmd *parser.ParsedCommand) *world.Object {
	if cmd.Direct == nil {
		return nil
	}
	return cmd.Direct.Object()
}

// describeRoom renders the current room: its name, the visible objects, and
// the obvious exits.
func describeRoom(w *world.World) string {
	room := w.CurrentRoom()
	if room == nil {
		return "You are nowhere at all."
	}
	lines := []string{room.Name}
	for _, o := range w.InRoom(room.ID) {
		if o.Flags.Has(world.FlagScenery) {
			continue
		}
		lines = append(lines, fmt.Sprintf("There is a %s here.", displayName(o)))
	}
	var exits []string
	for dir := range room.Exits {
		exits = append(exits, dir)
	}
	if len(exits) > 0 {
		sort.Strings(exits)
		lines = append(lines, "Exits: "+strings.Join(exits, ", "))
	}
	return strings.Join(lines, "\n")
}
