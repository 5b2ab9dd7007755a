package chain

// Policy is the per-block validity rule the verifier applies.
//
// The caller selects the policy, the verifier never infers it from
// chain content. New partisan rules are added by implementing this
// interface, not by extending a tag switch.
type Policy interface {
	// Check reports whether block is valid as the child of prev.
	Check(block, prev *Header) bool
	Name() string
}

// ThresholdPolicy applies only the base invariants.
type ThresholdPolicy struct {
	v *Validator
}

func NewThresholdPolicy(v *Validator) *ThresholdPolicy {
	return &ThresholdPolicy{v: v}
}

func (p *ThresholdPolicy) Check(block, prev *Header) bool {
	return p.v.IsBlockValid(block, prev)
}

func (p *ThresholdPolicy) Name() string {
	return "threshold"
}

// EvenAfterFork additionally requires an even state from every block
// past the fork height. A block exactly at the fork height is still
// judged by the unconditional rule.
type EvenAfterFork struct {
	v *Validator
}

func NewEvenAfterFork(v *Validator) *EvenAfterFork {
	return &EvenAfterFork{v: v}
}

func (p *EvenAfterFork) Check(block, prev *Header) bool {
	if !p.v.IsBlockValid(block, prev) {
		return false
	}

	if block.Height > p.v.cfg.ForkHeight {
		return block.State%2 == 0
	}

	return true
}

func (p *EvenAfterFork) Name() string {
	return "even-after-fork"
}

// OddAfterFork is the symmetric rule requiring an odd state past the
// fork height.
type OddAfterFork struct {
	v *Validator
}

func NewOddAfterFork(v *Validator) *OddAfterFork {
	return &OddAfterFork{v: v}
}

func (p *OddAfterFork) Check(block, prev *Header) bool {
	if !p.v.IsBlockValid(block, prev) {
		return false
	}

	if block.Height > p.v.cfg.ForkHeight {
		return block.State%2 != 0
	}

	return true
}

func (p *OddAfterFork) Name() string {
	return "odd-after-fork"
}
