package fol

import "go.uber.org/zap"

// A Pipeline runs the clausal-form passes in their required order:
// implication elimination, negation pushdown, Skolemization, distribution.
// Skolemization runs after negation normalization, so quantifier duals are
// already resolved when scopes are captured.
//
// All state is explicit: the allocator, distributor and logger are plain
// fields, and independent pipelines never share anything unless told to.
type Pipeline struct {
	// Alloc provides witness identities for Skolemization. Nil means a
	// fresh allocator per pipeline.
	Alloc *SkolemAllocator
	// Dist picks the tie-break for or-over-and distribution. Nil means
	// the deterministic left-biased distributor.
	Dist *Distributor
	// Log receives each stage's output at Debug level. Nil disables
	// logging.
	Log *zap.Logger
}

// NewPipeline returns a pipeline with a fresh allocator, the deterministic
// distributor and no logging.
func NewPipeline() *Pipeline {
	return &Pipeline{
		Alloc: new(SkolemAllocator),
		Dist:  NewDistributor(),
		Log:   zap.NewNop(),
	}
}

// ToCNF normalizes c toward conjunctive normal form. On error no partial
// tree is returned.
func (p *Pipeline) ToCNF(c Clause) (Clause, error) {
	alloc := p.Alloc
	if alloc == nil {
		alloc = new(SkolemAllocator)
	}
	dist := p.Dist
	if dist == nil {
		dist = NewDistributor()
	}
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}

	c, err := EliminateImplications(c)
	if err != nil {
		return nil, err
	}
	log.Debug("eliminated implications", zap.Stringer("clause", c))

	c, err = PushNegations(c)
	if err != nil {
		return nil, err
	}
	log.Debug("pushed negations", zap.Stringer("clause", c))

	c, err = Skolemize(c, alloc)
	if err != nil {
		return nil, err
	}
	log.Debug("skolemized", zap.Stringer("clause", c))

	c, err = dist.Distribute(c)
	if err != nil {
		return nil, err
	}
	log.Debug("distributed", zap.Stringer("clause", c))

	return c, nil
}
