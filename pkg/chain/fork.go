package chain

import (
	"context"

	log "github.com/helinwang/log15"
	"github.com/pkg/errors"
)

// forkMineRetries bounds how many alternate extrinsics the fork
// builder tries when mining a forced extrinsic exhausts.
const forkMineRetries = 4

// BuildContentiousFork mines a shared prefix ending exactly at the
// fork height plus two suffixes of suffixLen blocks extending its
// tip, one keeping the state even past the fork and one keeping it
// odd.
//
// The prefix includes genesis. Both suffixes are valid under the
// unconditional rule, each is valid under exactly one partisan
// policy:
//
//	           /-- 3 -- 4   (even states)
//	G -- 1 -- 2
//	           \-- 3'-- 4'  (odd states)
func BuildContentiousFork(ctx context.Context, m *Miner, suffixLen int) (prefix, even, odd []*Header, err error) {
	g := Genesis()
	prefix = []*Header{g}

	tip := g
	for tip.Height < m.cfg.ForkHeight {
		h, err := m.Child(ctx, tip, tip.Height+1)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "mining common prefix")
		}

		prefix = append(prefix, h)
		tip = h
	}

	evenTip, oddTip := tip, tip
	for i := 0; i < suffixLen; i++ {
		eh, err := mineWithParity(ctx, m, evenTip, 0)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "mining even suffix")
		}

		even = append(even, eh)
		evenTip = eh

		oh, err := mineWithParity(ctx, m, oddTip, 1)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "mining odd suffix")
		}

		odd = append(odd, oh)
		oddTip = oh
	}

	return prefix, even, odd, nil
}

// mineWithParity mines a child of parent whose state has the target
// parity. When mining a chosen extrinsic exhausts, it retries with
// the next extrinsic of the same parity effect.
func mineWithParity(ctx context.Context, m *Miner, parent *Header, parity uint64) (*Header, error) {
	extrinsic := (parity + 2 - parent.State%2) % 2
	if extrinsic == 0 {
		extrinsic = 2
	}

	var lastErr error
	for try := 0; try < forkMineRetries; try++ {
		h, err := m.Child(ctx, parent, extrinsic)
		if err == nil {
			return h, nil
		}

		if errors.Cause(err) != ErrMiningExhausted {
			return nil, err
		}

		log.Warn("retrying with alternate extrinsic", "parity", parity, "extrinsic", extrinsic)
		lastErr = err
		extrinsic += 2
	}

	return nil, lastErr
}
