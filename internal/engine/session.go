// Package engine executes resolved commands against the world: movement,
// taking, dropping, containment, and the other built-in verbs. It owns
// verb-requires-object validation, turn counting, and outcome text.
package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jsredmond/zork1-sub000/internal/parser"
	"github.com/jsredmond/zork1-sub000/internal/vocab"
	"github.com/jsredmond/zork1-sub000/internal/world"
)

// HistoryEntry records a single turn: what the player typed and what came
// back.
type HistoryEntry struct {
	Command string `yaml:"command"`
	Outcome string `yaml:"outcome"`
}

// Session owns all mutable state for one player: the world instance, the
// pronoun context, and the transcript. Sessions are never shared; a
// multi-session deployment creates one Session per player.
type Session struct {
	ID       uuid.UUID
	World    *world.World
	Vocab    *vocab.Table
	Pronouns *parser.PronounContext
	Resolver *parser.Resolver
	History  []HistoryEntry
	Turns    int
	Quit     bool

	log *zap.Logger
}

// NewSession wires a fresh session over a loaded world and vocabulary.
func NewSession(w *world.World, tab *vocab.Table, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	pronouns := parser.NewPronounContext()
	return &Session{
		ID:       uuid.New(),
		World:    w,
		Vocab:    tab,
		Pronouns: pronouns,
		Resolver: parser.New(tab, w, pronouns, log),
		log:      log,
	}
}

// Execute resolves and runs one command line, returning the outcome text.
// Parse failures are rendered but consume no turn and leave all world state
// untouched.
func (s *Session) Execute(line string) string {
	cmd, perr := s.Resolver.Resolve(line)
	if perr != nil {
		s.log.Debug("parse error",
			zap.String("line", line),
			zap.String("kind", perr.Kind.String()),
			zap.String("word", perr.Word))
		outcome := renderError(perr)
		s.History = append(s.History, HistoryEntry{Command: line, Outcome: outcome})
		return outcome
	}

	outcome := s.dispatch(cmd)
	s.Turns++
	s.History = append(s.History, HistoryEntry{Command: line, Outcome: outcome})
	s.log.Debug("executed command",
		zap.String("verb", cmd.Verb),
		zap.Int("turn", s.Turns))
	return outcome
}
