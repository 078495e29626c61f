package fol

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// A Term is an argument of a predicate: either a plain symbol or a Skolem
// witness term.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Symbol is a name token. By convention, a name starting with an uppercase
// letter denotes a logical variable; anything else denotes a constant or
// function symbol.
type Symbol string

func (s Symbol) isTerm() {}

func (s Symbol) String() string { return string(s) }

// IsVariable reports whether t is a logical variable, i.e. a symbol whose
// first rune is uppercase. Skolem terms are never variables.
func IsVariable(t Term) bool {
	s, ok := t.(Symbol)
	if !ok || s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(string(s))
	return unicode.IsUpper(r)
}

// A SkolemTerm is a witness introduced when an existential quantifier is
// eliminated. Its identity is the allocation id alone: two Skolem terms are
// equal iff they carry the same id. The captured names are the universally
// quantified variables that were in scope at the binder, in binding order.
type SkolemTerm struct {
	id       int
	captured []string
}

func (s *SkolemTerm) isTerm() {}

// ID returns the allocation id of the witness.
func (s *SkolemTerm) ID() int { return s.id }

// Captured returns a copy of the captured variable names.
func (s *SkolemTerm) Captured() []string {
	return append([]string(nil), s.captured...)
}

// Rename returns a witness with the same identity whose captured list has
// every occurrence of from replaced by to. If from is not captured, s itself
// is returned.
func (s *SkolemTerm) Rename(from, to string) *SkolemTerm {
	found := false
	for _, v := range s.captured {
		if v == from {
			found = true
			break
		}
	}
	if !found {
		return s
	}
	captured := make([]string, len(s.captured))
	for i, v := range s.captured {
		if v == from {
			captured[i] = to
		} else {
			captured[i] = v
		}
	}
	return &SkolemTerm{id: s.id, captured: captured}
}

func (s *SkolemTerm) String() string {
	return fmt.Sprintf("F_%d(%s)", s.id, strings.Join(s.captured, ", "))
}

// TermEq reports structural equality of two terms. Symbols compare by name,
// Skolem terms by identity.
func TermEq(a, b Term) bool {
	switch a := a.(type) {
	case Symbol:
		b, ok := b.(Symbol)
		return ok && a == b
	case *SkolemTerm:
		b, ok := b.(*SkolemTerm)
		return ok && a.id == b.id
	}
	return false
}

// A SkolemAllocator hands out fresh witness identities. Ids are strictly
// increasing in allocation order, so for a fixed input formula and starting
// state repeated runs produce identical trees. The zero value is ready to
// use; share one allocator across passes that must not reuse ids.
type SkolemAllocator struct {
	mu   sync.Mutex
	next int
}

// Fresh allocates a new witness over the given captured variables. The
// captured list is copied verbatim.
func (a *SkolemAllocator) Fresh(captured []string) *SkolemTerm {
	a.mu.Lock()
	id := a.next
	a.next++
	a.mu.Unlock()
	return &SkolemTerm{id: id, captured: append([]string(nil), captured...)}
}
