// Package unify computes most-general unifiers between predicate literals.
//
// The algorithm is the classical disagreement-set one: mismatched argument
// pairs are queued, and each pair with a variable on one side is resolved by
// substituting that variable through the remaining pairs and recording the
// binding. Two distinct non-variable terms end the search with ErrNoUnifier,
// which is a normal outcome, not a bug.
//
// Literals unifies one name-matched pair of literals, the textbook
// resolution primitive. Clauses pairs every same-named literal across two
// whole clause trees, a coarser check for whether two clauses can agree on
// any shared predicate name.
package unify
