package fol

import (
	"fmt"
	"strings"
)

// A Clause is any first-order-logic formula node, not necessarily in a
// normal form.
type Clause interface {
	fmt.Stringer
	// Eval evaluates the clause propositionally, treating each predicate
	// atom as an independent boolean looked up in model under the atom's
	// String form. Quantifiers are transparent.
	Eval(model map[string]bool) bool
	isClause()
}

// A Predicate is an atomic formula: a name applied to an ordered list of
// terms. Predicates compare by name and arguments jointly, and String
// doubles as the canonical map key, so keying and equality always agree.
type Predicate struct {
	Name string
	Args []Term
}

// Pred builds a predicate leaf.
func Pred(name string, args ...Term) *Predicate {
	return &Predicate{Name: name, Args: append([]Term(nil), args...)}
}

func (p *Predicate) isClause() {}

func (p *Predicate) String() string {
	args := make([]string, len(p.Args))
	for i, a := range p.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(args, ", "))
}

func (p *Predicate) Eval(model map[string]bool) bool {
	v, ok := model[p.String()]
	if !ok {
		panic(fmt.Errorf("model lacks binding for atom %s", p))
	}
	return v
}

// Contains reports whether t occurs among the predicate's arguments.
func (p *Predicate) Contains(t Term) bool {
	for _, a := range p.Args {
		if TermEq(a, t) {
			return true
		}
	}
	return false
}

// Replace returns a predicate with every argument equal to the symbol name
// replaced by r. The receiver is left untouched.
func (p *Predicate) Replace(name string, r Term) *Predicate {
	args := make([]Term, len(p.Args))
	for i, a := range p.Args {
		if s, ok := a.(Symbol); ok && string(s) == name {
			args[i] = r
		} else {
			args[i] = a
		}
	}
	return &Predicate{Name: p.Name, Args: args}
}

type not struct {
	c Clause
}

// Not negates the given clause.
func Not(c Clause) Clause { return not{c} }

func (n not) isClause() {}

func (n not) String() string { return fmt.Sprintf("(not %s)", n.c) }

func (n not) Eval(model map[string]bool) bool { return !n.c.Eval(model) }

type and struct {
	l, r Clause
}

// And builds the conjunction of two clauses.
func And(l, r Clause) Clause { return and{l, r} }

func (n and) isClause() {}

func (n and) String() string { return fmt.Sprintf("(%s and %s)", n.l, n.r) }

func (n and) Eval(model map[string]bool) bool { return n.l.Eval(model) && n.r.Eval(model) }

type or struct {
	l, r Clause
}

// Or builds the disjunction of two clauses.
func Or(l, r Clause) Clause { return or{l, r} }

func (n or) isClause() {}

func (n or) String() string { return fmt.Sprintf("(%s or %s)", n.l, n.r) }

func (n or) Eval(model map[string]bool) bool { return n.l.Eval(model) || n.r.Eval(model) }

type implies struct {
	l, r Clause
}

// Implies builds a material implication.
func Implies(l, r Clause) Clause { return implies{l, r} }

func (n implies) isClause() {}

func (n implies) String() string { return fmt.Sprintf("(%s -> %s)", n.l, n.r) }

func (n implies) Eval(model map[string]bool) bool { return !n.l.Eval(model) || n.r.Eval(model) }

type forAll struct {
	vars []string
	c    Clause
}

// ForAll universally quantifies the given variable names over a clause.
// vars must be non-empty and hold distinct names.
func ForAll(vars []string, c Clause) Clause {
	return forAll{vars: append([]string(nil), vars...), c: c}
}

func (n forAll) isClause() {}

func (n forAll) String() string {
	return fmt.Sprintf("(for_all (%s) %s)", strings.Join(n.vars, ", "), n.c)
}

func (n forAll) Eval(model map[string]bool) bool { return n.c.Eval(model) }

type thereExists struct {
	vars []string
	c    Clause
}

// Exists existentially quantifies the given variable names over a clause.
// vars must be non-empty and hold distinct names.
func Exists(vars []string, c Clause) Clause {
	return thereExists{vars: append([]string(nil), vars...), c: c}
}

func (n thereExists) isClause() {}

func (n thereExists) String() string {
	return fmt.Sprintf("(there_exists (%s) %s)", strings.Join(n.vars, ", "), n.c)
}

func (n thereExists) Eval(model map[string]bool) bool { return n.c.Eval(model) }

// Eq reports structural equality of two clause trees. Predicates compare by
// name and arguments, quantifiers by variable list and child, everything
// else by recursive structure.
func Eq(a, b Clause) bool {
	switch a := a.(type) {
	case *Predicate:
		p, ok := b.(*Predicate)
		if !ok || a.Name != p.Name || len(a.Args) != len(p.Args) {
			return false
		}
		for i := range a.Args {
			if !TermEq(a.Args[i], p.Args[i]) {
				return false
			}
		}
		return true
	case not:
		n, ok := b.(not)
		return ok && Eq(a.c, n.c)
	case and:
		n, ok := b.(and)
		return ok && Eq(a.l, n.l) && Eq(a.r, n.r)
	case or:
		n, ok := b.(or)
		return ok && Eq(a.l, n.l) && Eq(a.r, n.r)
	case implies:
		n, ok := b.(implies)
		return ok && Eq(a.l, n.l) && Eq(a.r, n.r)
	case forAll:
		n, ok := b.(forAll)
		return ok && namesEq(a.vars, n.vars) && Eq(a.c, n.c)
	case thereExists:
		n, ok := b.(thereExists)
		return ok && namesEq(a.vars, n.vars) && Eq(a.c, n.c)
	}
	return false
}

func namesEq(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsLiteralDisjunction reports whether c consists solely of disjunctions
// over possibly negated predicates, i.e. whether c is a single CNF clause.
func IsLiteralDisjunction(c Clause) bool {
	switch c := c.(type) {
	case or:
		return IsLiteralDisjunction(c.l) && IsLiteralDisjunction(c.r)
	case not:
		return IsLiteralDisjunction(c.c)
	case *Predicate:
		return true
	}
	return false
}
