package fol

import "fmt"

// Skolemize eliminates every existential quantifier in c by replacing its
// bound variables with fresh witness terms over the universally quantified
// variables in scope at the binder. One witness is allocated per binder, at
// the point the there_exists node is consumed, so every occurrence of the
// same existential variable shares the same witness. Witness ids follow
// document traversal order.
//
// Connectives other than the quantifiers are threaded through unchanged, so
// the pass works on a tree before or after negation normalization; the only
// precondition is that bound variables are uniquely named (not enforced).
// A nil alloc gets a fresh allocator.
func Skolemize(c Clause, alloc *SkolemAllocator) (Clause, error) {
	if alloc == nil {
		alloc = new(SkolemAllocator)
	}
	return skolemize(c, nil, nil, alloc)
}

// skolemize threads the universal scope (extended under each for_all) and
// the binder-to-witness map (extended at each there_exists) through the
// recursion.
func skolemize(c Clause, scope []string, witnesses map[string]*SkolemTerm, alloc *SkolemAllocator) (Clause, error) {
	switch n := c.(type) {
	case thereExists:
		extended := make(map[string]*SkolemTerm, len(witnesses)+len(n.vars))
		for k, v := range witnesses {
			extended[k] = v
		}
		for _, v := range n.vars {
			extended[v] = alloc.Fresh(scope)
		}
		// The quantifier node itself is dropped.
		return skolemize(n.c, scope, extended, alloc)
	case forAll:
		inner := append(scope[:len(scope):len(scope)], n.vars...)
		child, err := skolemize(n.c, inner, witnesses, alloc)
		if err != nil {
			return nil, err
		}
		return ForAll(n.vars, child), nil
	case *Predicate:
		args := make([]Term, len(n.Args))
		for i, a := range n.Args {
			args[i] = a
			if s, ok := a.(Symbol); ok {
				if w, ok := witnesses[string(s)]; ok {
					args[i] = w
				}
			}
		}
		return &Predicate{Name: n.Name, Args: args}, nil
	case not:
		child, err := skolemize(n.c, scope, witnesses, alloc)
		if err != nil {
			return nil, err
		}
		return Not(child), nil
	case and:
		l, r, err := skolemizeBoth(n.l, n.r, scope, witnesses, alloc)
		if err != nil {
			return nil, err
		}
		return And(l, r), nil
	case or:
		l, r, err := skolemizeBoth(n.l, n.r, scope, witnesses, alloc)
		if err != nil {
			return nil, err
		}
		return Or(l, r), nil
	case implies:
		l, r, err := skolemizeBoth(n.l, n.r, scope, witnesses, alloc)
		if err != nil {
			return nil, err
		}
		return Implies(l, r), nil
	}
	return nil, fmt.Errorf("skolemize: %w: %T", ErrUnsupportedClause, c)
}

func skolemizeBoth(l, r Clause, scope []string, witnesses map[string]*SkolemTerm, alloc *SkolemAllocator) (Clause, Clause, error) {
	sl, err := skolemize(l, scope, witnesses, alloc)
	if err != nil {
		return nil, nil, err
	}
	sr, err := skolemize(r, scope, witnesses, alloc)
	if err != nil {
		return nil, nil, err
	}
	return sl, sr, nil
}
