package chain

import (
	log "github.com/helinwang/log15"
)

// VerifySubChain reports whether chain, applied in order on top of
// root, satisfies the policy at every step.
//
// It walks the candidates keeping the previously accepted header,
// starting from root, and short-circuits on the first invalid block.
// An empty chain is trivially valid for any root. The scan is
// sequential by construction, each step validates against the header
// accepted by the previous one.
func VerifySubChain(root *Header, chain []*Header, p Policy) bool {
	prev := root
	for _, block := range chain {
		if !p.Check(block, prev) {
			log.Debug("sub chain verification failed", "policy", p.Name(), "height", block.Height, "state", block.State)
			return false
		}
		prev = block
	}

	return true
}
