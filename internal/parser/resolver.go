package parser

import (
	"strings"

	"go.uber.org/zap"

	"github.com/jsredmond/zork1-sub000/internal/vocab"
	"github.com/jsredmond/zork1-sub000/internal/world"
)

// wordAll is the canonical spelling of the every-object noun.
const wordAll = "all"

// Resolver is the command resolution pipeline for one session. It holds no
// state of its own beyond its collaborators; the pronoun context is the only
// thing it mutates, and only after a resolution fully succeeds.
type Resolver struct {
	Vocab    *vocab.Table
	World    *world.World
	Pronouns *PronounContext

	log *zap.Logger
}

// New builds a resolver over a vocabulary, a world, and a pronoun context.
func New(tab *vocab.Table, w *world.World, pronouns *PronounContext, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{Vocab: tab, World: w, Pronouns: pronouns, log: log}
}

// Resolve runs the fixed-order decision procedure over one command line and
// returns either a structured command or a structured parse error. Shared
// state is untouched on failure; the pronoun context is rebound only when a
// command resolves completely.
func (r *Resolver) Resolve(line string) (*ParsedCommand, *ParseError) {
	tokens, literal := Tokenize(line, r.Vocab)

	i := 0
	for i < len(tokens) && tokens[i].Category == vocab.Article {
		i++
	}
	if i >= len(tokens) {
		return nil, &ParseError{Kind: NoVerb}
	}

	head := tokens[i]
	switch head.Category {
	case vocab.Direction:
		// A bare direction is an implicit movement command.
		if i+1 < len(tokens) {
			return nil, &ParseError{Kind: InvalidSyntax, Word: tokens[i+1].Text}
		}
		return &ParsedCommand{Verb: "walk", Direction: head.Canonical}, nil
	case vocab.Verb:
	case vocab.Unknown:
		return nil, &ParseError{Kind: UnknownWord, Word: head.Text}
	default:
		return nil, &ParseError{Kind: NoVerb, Word: head.Text}
	}

	verb := head.Canonical
	if r.Vocab.Verbatim(verb) {
		return &ParsedCommand{Verb: verb, Literal: literal}, nil
	}

	rest := tokens[i+1:]
	if len(rest) == 1 && rest[0].Category == vocab.Direction {
		return &ParsedCommand{Verb: verb, Direction: rest[0].Canonical}, nil
	}

	directToks, prep, indirectToks, hasPrep := splitAtPreposition(rest)

	// Syntax-shape checks come before any object resolution.
	if hasPrep && onlyArticles(indirectToks) {
		return nil, &ParseError{Kind: InvalidSyntax, Word: prep}
	}
	if len(directToks) > 0 && onlyArticles(directToks) {
		return nil, &ParseError{Kind: InvalidSyntax, Word: phraseText(directToks)}
	}

	// An unrecognized word anywhere in the command wins over any later
	// visibility or ambiguity failure, regardless of position.
	for _, t := range rest {
		if t.Category == vocab.Unknown {
			return nil, &ParseError{Kind: UnknownWord, Word: t.Text}
		}
	}

	reachable := r.World.Reachable()
	r.log.Debug("resolving command",
		zap.String("verb", verb),
		zap.Int("reachable", len(reachable)))

	var direct, indirect *ResolvedPhrase
	if len(directToks) > 0 {
		var perr *ParseError
		direct, perr = r.matchPhrase(directToks, reachable)
		if perr != nil {
			return nil, perr
		}
	}
	if hasPrep {
		var perr *ParseError
		indirect, perr = r.matchPhrase(indirectToks, reachable)
		if perr != nil {
			return nil, perr
		}
	}

	cmd := &ParsedCommand{
		Verb:        verb,
		Direct:      direct,
		Preposition: prep,
		Indirect:    indirect,
	}

	// Commit: bind pronouns only now that the whole command has resolved.
	if direct != nil {
		ids := objectIDs(direct.Objects)
		if len(ids) == 1 {
			r.Pronouns.Bind(PronounIt, ids)
		} else if len(ids) > 1 {
			r.Pronouns.Bind(PronounThem, ids)
		}
	}
	return cmd, nil
}

// matchPhrase resolves one noun phrase against the reachable set. The final
// word must equal a candidate's name or synonym; every earlier word must be
// in the candidate's adjective set. Candidates lacking a supplied adjective
// are excluded. The entire candidate set is evaluated before deciding
// between not-found, unique, and ambiguous.
func (r *Resolver) matchPhrase(toks []vocab.Token, reachable []*world.Object) (*ResolvedPhrase, *ParseError) {
	text := phraseText(toks)

	words := toks
	for len(words) > 0 && words[0].Category == vocab.Article {
		words = words[1:]
	}

	if len(words) == 1 && words[0].Category == vocab.Pronoun {
		return r.resolvePronoun(words[0], text)
	}
	if len(words) == 1 && words[0].Canonical == wordAll {
		return r.resolveAll(text, reachable)
	}

	noun := words[len(words)-1]
	adjectives := words[:len(words)-1]

	var candidates []*world.Object
	for _, o := range reachable {
		if !o.Matches(noun.Text) && !o.Matches(noun.Canonical) {
			continue
		}
		keep := true
		for _, adj := range adjectives {
			if !o.HasAdjective(adj.Text) && !o.HasAdjective(adj.Canonical) {
				keep = false
				break
			}
		}
		if keep {
			candidates = append(candidates, o)
		}
	}

	switch len(candidates) {
	case 0:
		return nil, &ParseError{Kind: ObjectNotFound, Word: text}
	case 1:
		return &ResolvedPhrase{Objects: candidates, Text: text}, nil
	default:
		return nil, &ParseError{Kind: Ambiguous, Word: text, Candidates: candidates}
	}
}

// resolvePronoun maps "it"/"them" through the pronoun context. The referent
// is whatever was last successfully referenced; it need not still be
// reachable, that judgement belongs to the action executor.
func (r *Resolver) resolvePronoun(tok vocab.Token, text string) (*ResolvedPhrase, *ParseError) {
	kind := PronounIt
	if tok.Canonical == "them" {
		kind = PronounThem
	}
	ids, ok := r.Pronouns.Resolve(kind)
	if !ok {
		return nil, &ParseError{Kind: ObjectNotFound, Word: tok.Text}
	}
	var objs []*world.Object
	for _, id := range ids {
		if o, err := r.World.Object(id); err == nil {
			objs = append(objs, o)
		}
	}
	if len(objs) == 0 {
		return nil, &ParseError{Kind: ObjectNotFound, Word: tok.Text}
	}
	return &ResolvedPhrase{Objects: objs, Text: text}, nil
}

// resolveAll expands "all" to every reachable portable object.
func (r *Resolver) resolveAll(text string, reachable []*world.Object) (*ResolvedPhrase, *ParseError) {
	var objs []*world.Object
	for _, o := range reachable {
		if o.Flags.Has(world.FlagPortable) && !o.Flags.Has(world.FlagScenery) {
			objs = append(objs, o)
		}
	}
	if len(objs) == 0 {
		return nil, &ParseError{Kind: ObjectNotFound, Word: text}
	}
	return &ResolvedPhrase{Objects: objs, Text: text}, nil
}

// splitAtPreposition divides tokens at the first preposition.
func splitAtPreposition(toks []vocab.Token) (direct []vocab.Token, prep string, indirect []vocab.Token, found bool) {
	for i, t := range toks {
		if t.Category == vocab.Preposition {
			return toks[:i], t.Canonical, toks[i+1:], true
		}
	}
	return toks, "", nil, false
}

func onlyArticles(toks []vocab.Token) bool {
	for _, t := range toks {
		if t.Category != vocab.Article {
			return false
		}
	}
	return true
}

func phraseText(toks []vocab.Token) string {
	words := make([]string, len(toks))
	for i, t := range toks {
		words[i] = t.Text
	}
	return strings.Join(words, " ")
}

func objectIDs(objs []*world.Object) []world.ObjectID {
	ids := make([]world.ObjectID, len(objs))
	for i, o := range objs {
		ids[i] = o.ID
	}
	return ids
}
