// Package fol implements the clause algebra of first-order logic and the
// rewrite passes that bring a formula to conjunctive normal form.
//
// Resolution-based provers expect their input as CNF clauses: conjunctions of
// disjunctions of possibly negated predicates, with no quantifiers left.
// Reaching that shape from an arbitrary formula takes a fixed sequence of
// rewrites: implications are eliminated, negations are pushed down to the
// predicates, existential quantifiers are replaced by Skolem witness terms,
// and disjunctions are distributed over conjunctions.
//
// Formulas are built with the node constructors:
//
//	c := Implies(Pred("P", Symbol("A")), Pred("Q", Symbol("B")))
//
// Each pass is a pure function from clause to clause. The Pipeline type runs
// them in order:
//
//	cnf, err := NewPipeline().ToCNF(c)
//
// Clause trees are immutable: every pass returns a fresh tree and never
// modifies its input. The only mutable state in the package is the
// SkolemAllocator's counter.
package fol
