package unify

import (
	"errors"
	"fmt"

	"github.com/gofol/gofol/fol"
)

// ErrNoUnifier is returned when two literals or clauses cannot be made
// syntactically identical: two distinct non-variable terms disagree, or two
// same-named predicates differ in arity. Callers branch on it with
// errors.Is.
var ErrNoUnifier = errors.New("no unifier")

// A Binding maps one variable name to the term it must take.
type Binding struct {
	Var  string
	Term fol.Term
}

// A Substitution is an ordered list of bindings. Order matters: bindings
// are applied left to right, so a later binding may refine the payload of
// an earlier one.
type Substitution []Binding

// Apply rewrites t under the substitution, binding by binding. Symbols are
// replaced outright; a Skolem term keeps its identity but has its captured
// variable list rewritten when the replacement is itself a symbol.
func (s Substitution) Apply(t fol.Term) fol.Term {
	for _, b := range s {
		t = replace(t, b.Var, b.Term)
	}
	return t
}

// ApplyPredicate rewrites every argument of p under the substitution,
// returning a fresh predicate.
func (s Substitution) ApplyPredicate(p *fol.Predicate) *fol.Predicate {
	args := make([]fol.Term, len(p.Args))
	for i, a := range p.Args {
		args[i] = s.Apply(a)
	}
	return fol.Pred(p.Name, args...)
}

// replace substitutes r for the variable name inside t. Skolem terms are
// never replaced wholesale, only their captured lists are rewritten, and
// only a symbol can stand in a captured slot.
func replace(t fol.Term, name string, r fol.Term) fol.Term {
	switch t := t.(type) {
	case fol.Symbol:
		if string(t) == name {
			return r
		}
		return t
	case *fol.SkolemTerm:
		if s, ok := r.(fol.Symbol); ok {
			return t.Rename(name, string(s))
		}
		return t
	}
	return t
}

// A pair is one entry of the disagreement set: two terms at the same
// argument position that must be made equal.
type pair struct {
	a, b fol.Term
}

// Literals unifies a single pair of literals, returning the most general
// substitution that makes their argument lists identical. The names must
// match and so must the arities, else ErrNoUnifier.
func Literals(p, q *fol.Predicate) (Substitution, error) {
	if p.Name != q.Name {
		return nil, fmt.Errorf("predicates %s and %s: %w", p.Name, q.Name, ErrNoUnifier)
	}
	ds, err := argPairs(p, q)
	if err != nil {
		return nil, err
	}
	return resolve(ds)
}

// Clauses builds the disagreement set over every same-named literal pair
// across the two clause trees and resolves it. This is coarser than
// unifying one designated literal pair: it asks whether the two clauses
// can agree on every predicate name they share.
func Clauses(x, y fol.Clause) (Substitution, error) {
	xs, err := fol.ExtractPredicates(x)
	if err != nil {
		return nil, err
	}
	ys, err := fol.ExtractPredicates(y)
	if err != nil {
		return nil, err
	}
	var ds []pair
	for _, p := range xs {
		for _, q := range ys {
			if p.Name != q.Name {
				continue
			}
			more, err := argPairs(p, q)
			if err != nil {
				return nil, err
			}
			ds = append(ds, more...)
		}
	}
	return resolve(ds)
}

func argPairs(p, q *fol.Predicate) ([]pair, error) {
	if len(p.Args) != len(q.Args) {
		return nil, fmt.Errorf("predicate %s: arity %d vs %d: %w",
			p.Name, len(p.Args), len(q.Args), ErrNoUnifier)
	}
	ds := make([]pair, len(p.Args))
	for i := range p.Args {
		ds[i] = pair{p.Args[i], q.Args[i]}
	}
	return ds, nil
}

// resolve drains the disagreement set in insertion order. Each step either
// removes a pair or binds one variable and eliminates it from every
// remaining pair, so the loop terminates.
func resolve(ds []pair) (Substitution, error) {
	sub := Substitution{}
	for len(ds) > 0 {
		a, b := ds[0].a, ds[0].b
		ds = ds[1:]
		switch {
		case fol.TermEq(a, b):
			// Identical terms agree trivially, variable or not.
		case fol.IsVariable(a):
			ds = substitute(ds, string(a.(fol.Symbol)), b)
			sub = append(sub, Binding{Var: string(a.(fol.Symbol)), Term: b})
		case fol.IsVariable(b):
			ds = substitute(ds, string(b.(fol.Symbol)), a)
			sub = append(sub, Binding{Var: string(b.(fol.Symbol)), Term: a})
		default:
			return nil, fmt.Errorf("cannot unify %s with %s: %w", a, b, ErrNoUnifier)
		}
	}
	return sub, nil
}

func substitute(ds []pair, name string, t fol.Term) []pair {
	for i := range ds {
		ds[i].a = replace(ds[i].a, name, t)
		ds[i].b = replace(ds[i].b, name, t)
	}
	return ds
}
