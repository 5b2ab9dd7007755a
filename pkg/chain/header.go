package chain

import (
	"github.com/ethereum/go-ethereum/rlp"
)

// Header is one block of the chain.
//
// The consensus digest is a proof of work nonce chosen so that the
// digest of the whole header falls below the configured threshold.
// Headers are immutable values: a chain is an ordered slice of
// headers linked only through the Parent digest field, there is no
// shared state between them.
type Header struct {
	Parent          Hash
	Height          uint64
	Extrinsic       uint64
	State           uint64
	ConsensusDigest uint64
}

// Encode encodes the header, this is the preimage of its digest.
func (h *Header) Encode() []byte {
	b, err := rlp.EncodeToBytes(h)
	if err != nil {
		panic(err)
	}

	return b
}

// Genesis returns the genesis header.
//
// Its parent digest is the zero sentinel and its consensus digest is
// fixed at zero, exempt from the proof of work threshold.
func Genesis() *Header {
	return &Header{}
}
