package parser

import "github.com/jsredmond/zork1-sub000/internal/world"

// PronounKind distinguishes the singular and plural pronoun slots.
type PronounKind int

const (
	PronounIt PronounKind = iota
	PronounThem
)

// PronounContext remembers what "it" and "them" refer to across turns. It is
// owned by the session, bound only after a resolution fully succeeds, and
// never expires on its own; each successful reference overwrites the
// previous binding outright.
type PronounContext struct {
	bindings map[PronounKind][]world.ObjectID
}

// NewPronounContext returns an empty context with no antecedents.
func NewPronounContext() *PronounContext {
	return &PronounContext{bindings: make(map[PronounKind][]world.ObjectID)}
}

// Bind records the antecedent for a pronoun kind, replacing any prior one.
func (p *PronounContext) Bind(kind PronounKind, ids []world.ObjectID) {
	bound := make([]world.ObjectID, len(ids))
	copy(bound, ids)
	p.bindings[kind] = bound
}

// Resolve returns the current antecedent for a pronoun kind, or ok=false
// when nothing has been bound yet this session.
func (p *PronounContext) Resolve(kind PronounKind) (ids []world.ObjectID, ok bool) {
	ids, ok = p.bindings[kind]
	return ids, ok && len(ids) > 0
}

// Bindings exposes the raw state for session persistence.
func (p *PronounContext) Bindings() map[PronounKind][]world.ObjectID {
	out := make(map[PronounKind][]world.ObjectID, len(p.bindings))
	for k, v := range p.bindings {
		ids := make([]world.ObjectID, len(v))
		copy(ids, v)
		out[k] = ids
	}
	return out
}

// Restore replaces the context's state, used when loading a saved session.
func (p *PronounContext) Restore(bindings map[PronounKind][]world.ObjectID) {
	p.bindings = make(map[PronounKind][]world.ObjectID, len(bindings))
	for k, v := range bindings {
		p.Bind(k, v)
	}
}
