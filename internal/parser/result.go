package parser

import "github.com/jsredmond/zork1-sub000/internal/world"

// ErrorKind is the taxonomy of structured parse failures.
type ErrorKind int

const (
	NoVerb ErrorKind = iota
	UnknownWord
	ObjectNotFound
	Ambiguous
	InvalidSyntax
)

func (k ErrorKind) String() string {
	switch k {
	case NoVerb:
		return "no-verb"
	case UnknownWord:
		return "unknown-word"
	case ObjectNotFound:
		return "object-not-found"
	case Ambiguous:
		return "ambiguous"
	case InvalidSyntax:
		return "invalid-syntax"
	default:
		return "unknown"
	}
}

// ParseError is a structured parse failure. It carries only the structural
// payload a renderer needs: the offending word for UnknownWord and
// ObjectNotFound, and the full surviving candidate list for Ambiguous.
// Message phrasing belongs to the caller.
type ParseError struct {
	Kind       ErrorKind
	Word       string          // offending word or phrase, if any
	Candidates []*world.Object // every surviving candidate, Ambiguous only
}

// ResolvedPhrase is a noun phrase matched against the reachable set: the
// object identities it resolved to plus the literal text the player typed.
// Singular phrases resolve to one object; "all" and a plural pronoun may
// resolve to several.
type ResolvedPhrase struct {
	Objects []*world.Object
	Text    string
}

// Object returns the single resolved object, or nil for multi-object
// phrases.
func (r *ResolvedPhrase) Object() *world.Object {
	if r == nil || len(r.Objects) != 1 {
		return nil
	}
	return r.Objects[0]
}

// ParsedCommand is a fully resolved player command.
type ParsedCommand struct {
	Verb        string // canonical form
	Direction   string // canonical direction for movement commands
	Direct      *ResolvedPhrase
	Preposition string
	Indirect    *ResolvedPhrase
	Literal     string // trailing text of a verbatim verb
}
