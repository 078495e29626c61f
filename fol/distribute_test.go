package fol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hasConjunction reports whether any and node occurs in the tree.
func hasConjunction(c Clause) bool {
	switch n := c.(type) {
	case *Predicate:
		return false
	case not:
		return hasConjunction(n.c)
	case and:
		return true
	case or:
		return hasConjunction(n.l) || hasConjunction(n.r)
	case implies:
		return hasConjunction(n.l) || hasConjunction(n.r)
	case forAll:
		return hasConjunction(n.c)
	case thereExists:
		return hasConjunction(n.c)
	}
	return false
}

// cnfShaped reports whether no or node has an and anywhere beneath it.
func cnfShaped(c Clause) bool {
	switch n := c.(type) {
	case *Predicate:
		return true
	case not:
		return cnfShaped(n.c)
	case and:
		return cnfShaped(n.l) && cnfShaped(n.r)
	case or:
		return !hasConjunction(n)
	case implies:
		return cnfShaped(n.l) && cnfShaped(n.r)
	case forAll:
		return cnfShaped(n.c)
	case thereExists:
		return cnfShaped(n.c)
	}
	return false
}

// allAssignments enumerates every truth assignment over the atoms of the
// given clauses, keyed by the atoms' String form.
func allAssignments(t *testing.T, clauses ...Clause) []map[string]bool {
	t.Helper()
	var atoms []string
	seen := make(map[string]bool)
	for _, c := range clauses {
		preds, err := ExtractPredicates(c)
		require.NoError(t, err)
		for _, p := range preds {
			if key := p.String(); !seen[key] {
				seen[key] = true
				atoms = append(atoms, key)
			}
		}
	}
	models := make([]map[string]bool, 0, 1<<len(atoms))
	for bits := 0; bits < 1<<len(atoms); bits++ {
		model := make(map[string]bool, len(atoms))
		for i, a := range atoms {
			model[a] = bits&(1<<i) != 0
		}
		models = append(models, model)
	}
	return models
}

func TestDistributeOr(t *testing.T) {
	p := Pred("P", Symbol("A"))
	q := Pred("Q", Symbol("B"))
	r := Pred("R", Symbol("C"))
	tests := []struct {
		clause Clause
		want   string
	}{
		{p, "P(A)"},
		{Or(p, q), "(P(A) or Q(B))"},
		{Or(And(p, q), r), "((P(A) or R(C)) and (Q(B) or R(C)))"},
		{Or(r, And(p, q)), "((P(A) or R(C)) and (Q(B) or R(C)))"},
		{And(Or(p, q), r), "((P(A) or Q(B)) and R(C))"},
		{Not(Or(And(p, q), r)), "(not ((P(A) or R(C)) and (Q(B) or R(C))))"},
		{ForAll([]string{"X"}, Or(And(p, q), r)),
			"(for_all (X) ((P(A) or R(C)) and (Q(B) or R(C))))"},
	}
	for _, tt := range tests {
		got, err := DistributeOr(tt.clause)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String())
	}
}

// A single expansion step can expose a new or-over-and inversion; the new
// branches must be re-distributed.
func TestDistributeOrRedistributesBranches(t *testing.T) {
	p := Pred("P", Symbol("a"))
	q := Pred("Q", Symbol("b"))
	r := Pred("R", Symbol("c"))
	s := Pred("S", Symbol("d"))

	got, err := DistributeOr(Or(p, And(q, And(r, s))))
	require.NoError(t, err)
	assert.True(t, cnfShaped(got), "inversion left in %s", got)
	assert.Equal(t, "((Q(b) or P(a)) and ((R(c) or P(a)) and (S(d) or P(a))))", got.String())
}

func TestDistributeOrTieBreakLeft(t *testing.T) {
	p := Pred("P", Symbol("a"))
	q := Pred("Q", Symbol("b"))
	r := Pred("R", Symbol("c"))
	s := Pred("S", Symbol("d"))

	got, err := NewDistributor().Distribute(Or(And(p, q), And(r, s)))
	require.NoError(t, err)
	want := "(((R(c) or P(a)) and (S(d) or P(a))) and ((R(c) or Q(b)) and (S(d) or Q(b))))"
	assert.Equal(t, want, got.String())
}

// Whatever the tie-break choice, the result must be CNF-shaped and keep the
// propositional meaning of the input.
func TestDistributeOrSeeded(t *testing.T) {
	p := Pred("P", Symbol("a"))
	q := Pred("Q", Symbol("b"))
	r := Pred("R", Symbol("c"))
	s := Pred("S", Symbol("d"))

	formulas := []Clause{
		Or(And(p, q), And(r, s)),
		Or(And(p, And(q, r)), And(s, p)),
		Or(Or(And(p, q), And(r, s)), And(q, r)),
	}
	for seed := int64(0); seed < 8; seed++ {
		d := NewSeededDistributor(seed)
		for _, f := range formulas {
			got, err := d.Distribute(f)
			require.NoError(t, err)
			assert.True(t, cnfShaped(got), "seed %d: inversion left in %s", seed, got)
			for _, model := range allAssignments(t, f) {
				if f.Eval(model) != got.Eval(model) {
					t.Fatalf("seed %d: %s and %s disagree under %v", seed, f, got, model)
				}
			}
		}
	}
}

func TestDistributeOrPreservesEvaluation(t *testing.T) {
	p := Pred("P", Symbol("a"))
	q := Pred("Q", Symbol("b"))
	r := Pred("R", Symbol("c"))

	formulas := []Clause{
		Or(And(p, q), r),
		Or(Not(p), And(q, Not(r))),
		And(Or(And(p, q), r), Or(p, And(q, r))),
		Or(p, Or(q, And(r, p))),
	}
	for _, f := range formulas {
		got, err := DistributeOr(f)
		require.NoError(t, err)
		assert.True(t, cnfShaped(got))
		for _, model := range allAssignments(t, f) {
			if f.Eval(model) != got.Eval(model) {
				t.Errorf("%s and %s disagree under %v", f, got, model)
			}
		}
	}
}

func TestDistributeOrNilClause(t *testing.T) {
	_, err := DistributeOr(nil)
	assert.ErrorIs(t, err, ErrUnsupportedClause)
}
