package chain

// Validator checks a single parent to child transition.
type Validator struct {
	cfg    Config
	hasher Hasher
}

func NewValidator(cfg Config, hasher Hasher) *Validator {
	return &Validator{cfg: cfg, hasher: hasher}
}

// IsBlockValid reports whether block is a valid child of prev: the
// height increments by one, the state equals the parent state plus
// the extrinsic, the parent digest links to prev, and the header
// digest meets the proof of work threshold.
//
// It is a pure predicate, tampered input yields false rather than an
// error.
func (v *Validator) IsBlockValid(block, prev *Header) bool {
	return block.Height == prev.Height+1 &&
		block.State == prev.State+block.Extrinsic &&
		block.Parent == v.hasher.Hash(prev) &&
		v.hasher.Hash(block) < v.cfg.Threshold
}
