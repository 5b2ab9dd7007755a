package chain

import (
	"context"
	"math/rand"

	log "github.com/helinwang/log15"
	"github.com/pkg/errors"
)

// ErrMiningExhausted is returned when the nonce search exceeds the
// configured attempt cap.
var ErrMiningExhausted = errors.New("mining attempts exhausted")

// Miner produces child headers whose digests satisfy the proof of
// work threshold.
//
// The random source is injected so mining is reproducible under test.
// Independent miners share no state and may race on separate
// goroutines, each with its own *rand.Rand.
type Miner struct {
	cfg    Config
	hasher Hasher
	rng    *rand.Rand
}

func NewMiner(cfg Config, hasher Hasher, rng *rand.Rand) *Miner {
	return &Miner{cfg: cfg, hasher: hasher, rng: rng}
}

// Child mines a valid child of parent carrying the given extrinsic.
//
// It draws nonces from the random source until the header digest
// falls below the threshold. The expected number of attempts is
// MaxHash/Threshold. The search loops rather than recurses; it stops
// with ErrMiningExhausted once cfg.MaxMineAttempts is exceeded, or
// with the context error if ctx is canceled first.
func (m *Miner) Child(ctx context.Context, parent *Header, extrinsic uint64) (*Header, error) {
	h := &Header{
		Parent:    m.hasher.Hash(parent),
		Height:    parent.Height + 1,
		Extrinsic: extrinsic,
		State:     parent.State + extrinsic,
	}

	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "mining canceled")
		default:
		}

		h.ConsensusDigest = m.rng.Uint64()
		if m.hasher.Hash(h) < m.cfg.Threshold {
			log.Debug("mined child header", "height", h.Height, "state", h.State, "attempts", attempt)
			return h, nil
		}

		if m.cfg.MaxMineAttempts > 0 && attempt >= m.cfg.MaxMineAttempts {
			return nil, errors.Wrapf(ErrMiningExhausted, "height %d, %d attempts", h.Height, attempt)
		}
	}
}
