package chain

// Config carries the consensus parameters. It is passed explicitly
// into the miner, validator and policies at construction so tests can
// run with deterministic, tightened values.
type Config struct {
	// Threshold is the upper bound for an acceptable header digest.
	Threshold Hash
	// ForkHeight is the height after which the partisan policies
	// apply. A block exactly at the fork height is still judged by
	// the unconditional rule.
	ForkHeight uint64
	// MaxMineAttempts caps the nonce search of a single Child call.
	// Zero means no cap.
	MaxMineAttempts int
}

// DefaultConfig accepts roughly 1 in 100 digests and forks at height
// 2, with no cap on mining attempts.
func DefaultConfig() Config {
	return Config{
		Threshold:  MaxHash / 100,
		ForkHeight: 2,
	}
}
