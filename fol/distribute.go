package fol

import (
	"fmt"
	"math/rand"
)

// A Distributor rewrites disjunctions over conjunctions, bottom-up, until
// no or node has an and beneath it. When exactly one branch of an or
// reduces to a conjunction, that conjunction is expanded over the other
// operand. When both branches reduce to conjunctions the result shape (not
// its logical meaning) depends on which side is expanded; the tie-break is
// injected so runs stay reproducible.
type Distributor struct {
	pickLeft func() bool
}

// NewDistributor returns a distributor that always expands the left
// conjunction on a tie.
func NewDistributor() *Distributor {
	return &Distributor{pickLeft: func() bool { return true }}
}

// NewSeededDistributor returns a distributor whose tie-break is drawn from
// a math/rand source with the given seed.
func NewSeededDistributor(seed int64) *Distributor {
	rng := rand.New(rand.NewSource(seed))
	return &Distributor{pickLeft: func() bool { return rng.Intn(2) == 0 }}
}

// DistributeOr distributes or over and with the deterministic left-biased
// tie-break.
func DistributeOr(c Clause) (Clause, error) {
	return NewDistributor().Distribute(c)
}

// Distribute rewrites c into conjunctive shape. Termination: every
// expansion moves an and node strictly higher in a finite tree.
func (d *Distributor) Distribute(c Clause) (Clause, error) {
	switch n := c.(type) {
	case *Predicate:
		return n, nil
	case not:
		child, err := d.Distribute(n.c)
		if err != nil {
			return nil, err
		}
		return Not(child), nil
	case and:
		l, err := d.Distribute(n.l)
		if err != nil {
			return nil, err
		}
		r, err := d.Distribute(n.r)
		if err != nil {
			return nil, err
		}
		return And(l, r), nil
	case or:
		l, err := d.Distribute(n.l)
		if err != nil {
			return nil, err
		}
		r, err := d.Distribute(n.r)
		if err != nil {
			return nil, err
		}
		lc, lok := l.(and)
		rc, rok := r.(and)
		switch {
		case lok && rok:
			if d.pickLeft() {
				return d.expand(lc, r)
			}
			return d.expand(rc, l)
		case lok:
			return d.expand(lc, r)
		case rok:
			return d.expand(rc, l)
		}
		return Or(l, r), nil
	case implies:
		l, err := d.Distribute(n.l)
		if err != nil {
			return nil, err
		}
		r, err := d.Distribute(n.r)
		if err != nil {
			return nil, err
		}
		return Implies(l, r), nil
	case forAll:
		child, err := d.Distribute(n.c)
		if err != nil {
			return nil, err
		}
		return ForAll(n.vars, child), nil
	case thereExists:
		child, err := d.Distribute(n.c)
		if err != nil {
			return nil, err
		}
		return Exists(n.vars, child), nil
	}
	return nil, fmt.Errorf("distribute or: %w: %T", ErrUnsupportedClause, c)
}

// expand turns (conj or other) into ((conj.l or other) and (conj.r or
// other)). Each new branch is re-distributed: a single step can expose a
// fresh or-over-and inversion.
func (d *Distributor) expand(conj and, other Clause) (Clause, error) {
	l, err := d.Distribute(Or(conj.l, other))
	if err != nil {
		return nil, err
	}
	r, err := d.Distribute(Or(conj.r, other))
	if err != nil {
		return nil, err
	}
	return And(l, r), nil
}
