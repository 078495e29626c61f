package fol

import "fmt"

// ExtractPredicates flattens a clause tree into its predicate leaves, left
// to right, depth first. The extractor only flattens to literals: callers
// that care about CNF clause grouping must track the or/and boundaries
// themselves.
func ExtractPredicates(c Clause) ([]*Predicate, error) {
	switch n := c.(type) {
	case *Predicate:
		return []*Predicate{n}, nil
	case and:
		return extractBoth(n.l, n.r)
	case or:
		return extractBoth(n.l, n.r)
	case implies:
		return extractBoth(n.l, n.r)
	case not:
		return ExtractPredicates(n.c)
	case forAll:
		return ExtractPredicates(n.c)
	case thereExists:
		return ExtractPredicates(n.c)
	}
	return nil, fmt.Errorf("extract predicates: %w: %T", ErrUnsupportedClause, c)
}

func extractBoth(l, r Clause) ([]*Predicate, error) {
	left, err := ExtractPredicates(l)
	if err != nil {
		return nil, err
	}
	right, err := ExtractPredicates(r)
	if err != nil {
		return nil, err
	}
	return append(left, right...), nil
}
