package fol

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPredicates(t *testing.T) {
	p := Pred("P", Symbol("A"))
	q := Pred("Q", Symbol("B"))
	r := Pred("R", Symbol("C"))

	tests := []struct {
		clause Clause
		want   []*Predicate
	}{
		{p, []*Predicate{p}},
		{And(p, q), []*Predicate{p, q}},
		{Or(Not(p), q), []*Predicate{p, q}},
		{Implies(And(p, q), Not(r)), []*Predicate{p, q, r}},
		{ForAll([]string{"X"}, Exists([]string{"Y"}, Or(r, And(q, p)))), []*Predicate{r, q, p}},
	}
	opt := cmp.Comparer(TermEq)
	for _, tt := range tests {
		got, err := ExtractPredicates(tt.clause)
		require.NoError(t, err)
		if diff := cmp.Diff(tt.want, got, opt); diff != "" {
			t.Errorf("ExtractPredicates(%s) mismatch (-want +got):\n%s", tt.clause, diff)
		}
	}
}

func TestExtractPredicatesNilClause(t *testing.T) {
	_, err := ExtractPredicates(nil)
	assert.ErrorIs(t, err, ErrUnsupportedClause)
}
