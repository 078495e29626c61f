package fol

import "fmt"

// EliminateImplications rewrites every implication (l -> r) into
// ((not l) or r), bottom-up. It must run as a full pass before negation
// pushdown: Negate's implication rule is only sound at the node it is
// applied to, not recursively.
func EliminateImplications(c Clause) (Clause, error) {
	switch n := c.(type) {
	case *Predicate:
		return n, nil
	case not:
		child, err := EliminateImplications(n.c)
		if err != nil {
			return nil, err
		}
		return Not(child), nil
	case and:
		l, r, err := eliminateBoth(n.l, n.r)
		if err != nil {
			return nil, err
		}
		return And(l, r), nil
	case or:
		l, r, err := eliminateBoth(n.l, n.r)
		if err != nil {
			return nil, err
		}
		return Or(l, r), nil
	case implies:
		l, r, err := eliminateBoth(n.l, n.r)
		if err != nil {
			return nil, err
		}
		return Or(Not(l), r), nil
	case forAll:
		child, err := EliminateImplications(n.c)
		if err != nil {
			return nil, err
		}
		return ForAll(n.vars, child), nil
	case thereExists:
		child, err := EliminateImplications(n.c)
		if err != nil {
			return nil, err
		}
		return Exists(n.vars, child), nil
	}
	return nil, fmt.Errorf("eliminate implications: %w: %T", ErrUnsupportedClause, c)
}

func eliminateBoth(l, r Clause) (Clause, Clause, error) {
	el, err := EliminateImplications(l)
	if err != nil {
		return nil, nil, err
	}
	er, err := EliminateImplications(r)
	if err != nil {
		return nil, nil, err
	}
	return el, er, nil
}

// Negate returns the negation of c with the negation already pushed to the
// leaves: De Morgan over conjunction and disjunction, quantifier duality,
// and double-negation elimination. In the result, not only ever wraps a
// predicate.
func Negate(c Clause) (Clause, error) {
	switch n := c.(type) {
	case *Predicate:
		return Not(n), nil
	case not:
		return PushNegations(n.c)
	case and:
		l, err := Negate(n.l)
		if err != nil {
			return nil, err
		}
		r, err := Negate(n.r)
		if err != nil {
			return nil, err
		}
		return Or(l, r), nil
	case or:
		l, err := Negate(n.l)
		if err != nil {
			return nil, err
		}
		r, err := Negate(n.r)
		if err != nil {
			return nil, err
		}
		return And(l, r), nil
	case forAll:
		child, err := Negate(n.c)
		if err != nil {
			return nil, err
		}
		return Exists(n.vars, child), nil
	case thereExists:
		child, err := Negate(n.c)
		if err != nil {
			return nil, err
		}
		return ForAll(n.vars, child), nil
	case implies:
		// not(l -> r) = l and not(r); sound here because the implication
		// is the node being negated, not an arbitrary descendant.
		l, err := PushNegations(n.l)
		if err != nil {
			return nil, err
		}
		r, err := Negate(n.r)
		if err != nil {
			return nil, err
		}
		return And(l, r), nil
	}
	return nil, fmt.Errorf("negate: %w: %T", ErrUnsupportedClause, c)
}

// PushNegations walks the tree and applies Negate under every negation, so
// that in the result not only ever wraps a predicate.
func PushNegations(c Clause) (Clause, error) {
	switch n := c.(type) {
	case *Predicate:
		return n, nil
	case not:
		return Negate(n.c)
	case and:
		l, r, err := pushBoth(n.l, n.r)
		if err != nil {
			return nil, err
		}
		return And(l, r), nil
	case or:
		l, r, err := pushBoth(n.l, n.r)
		if err != nil {
			return nil, err
		}
		return Or(l, r), nil
	case implies:
		l, r, err := pushBoth(n.l, n.r)
		if err != nil {
			return nil, err
		}
		return Implies(l, r), nil
	case forAll:
		child, err := PushNegations(n.c)
		if err != nil {
			return nil, err
		}
		return ForAll(n.vars, child), nil
	case thereExists:
		child, err := PushNegations(n.c)
		if err != nil {
			return nil, err
		}
		return Exists(n.vars, child), nil
	}
	return nil, fmt.Errorf("push negations: %w: %T", ErrUnsupportedClause, c)
}

func pushBoth(l, r Clause) (Clause, Clause, error) {
	pl, err := PushNegations(l)
	if err != nil {
		return nil, nil, err
	}
	pr, err := PushNegations(r)
	if err != nil {
		return nil, nil, err
	}
	return pl, pr, nil
}

// ToNNF brings c to negation normal form: implications eliminated, then
// negations pushed down to the predicates.
func ToNNF(c Clause) (Clause, error) {
	e, err := EliminateImplications(c)
	if err != nil {
		return nil, err
	}
	return PushNegations(e)
}
