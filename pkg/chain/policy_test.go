package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partisanFixtures(seed int64) (*Miner, *Validator) {
	m := newTestMiner(seed)
	v := NewValidator(DefaultConfig(), SHA3Hasher{})
	return m, v
}

func TestEvenChainValid(t *testing.T) {
	m, v := partisanFixtures(30)
	g := Genesis()

	// states 2, 3, 4, 6: even everywhere past the fork at height 2
	c := mineChain(t, m, 2, 1, 1, 2)
	require.Equal(t, uint64(6), c[3].State)

	assert.True(t, VerifySubChain(g, c, NewThresholdPolicy(v)))
	assert.True(t, VerifySubChain(g, c, NewEvenAfterFork(v)))
	assert.False(t, VerifySubChain(g, c, NewOddAfterFork(v)))
}

func TestEvenChainInvalidFirstBlockAfterFork(t *testing.T) {
	m, v := partisanFixtures(31)

	// states 2, 3, 5, 6: height 3 is odd
	c := mineChain(t, m, 2, 1, 2, 1)
	assert.False(t, VerifySubChain(Genesis(), c, NewEvenAfterFork(v)))
}

func TestEvenChainInvalidSecondBlockAfterFork(t *testing.T) {
	m, v := partisanFixtures(32)

	// states 2, 3, 4, 5: height 4 is odd
	c := mineChain(t, m, 2, 1, 1, 1)
	assert.False(t, VerifySubChain(Genesis(), c, NewEvenAfterFork(v)))
}

func TestOddChainValid(t *testing.T) {
	m, v := partisanFixtures(33)
	g := Genesis()

	// states 2, 3, 5, 7: odd everywhere past the fork
	c := mineChain(t, m, 2, 1, 2, 2)
	require.Equal(t, uint64(7), c[3].State)

	assert.True(t, VerifySubChain(g, c, NewThresholdPolicy(v)))
	assert.True(t, VerifySubChain(g, c, NewOddAfterFork(v)))
	assert.False(t, VerifySubChain(g, c, NewEvenAfterFork(v)))
}

func TestOddChainInvalidFirstBlockAfterFork(t *testing.T) {
	m, v := partisanFixtures(34)

	// states 2, 3, 4, 5: height 3 is even
	c := mineChain(t, m, 2, 1, 1, 1)
	assert.False(t, VerifySubChain(Genesis(), c, NewOddAfterFork(v)))
}

func TestOddChainInvalidSecondBlockAfterFork(t *testing.T) {
	m, v := partisanFixtures(35)

	// states 2, 3, 5, 6: height 4 is even
	c := mineChain(t, m, 2, 1, 2, 1)
	assert.False(t, VerifySubChain(Genesis(), c, NewOddAfterFork(v)))
}

func TestForkHeightUsesBaseRule(t *testing.T) {
	m, v := partisanFixtures(36)

	// the block at the fork height itself is judged by the
	// unconditional rule, its parity does not matter: state 3 at
	// height 2 passes both partisan policies
	c := mineChain(t, m, 2, 1)
	assert.True(t, VerifySubChain(Genesis(), c, NewEvenAfterFork(v)))
	assert.True(t, VerifySubChain(Genesis(), c, NewOddAfterFork(v)))
}

func TestPolicyNames(t *testing.T) {
	_, v := partisanFixtures(37)
	assert.Equal(t, "threshold", NewThresholdPolicy(v).Name())
	assert.Equal(t, "even-after-fork", NewEvenAfterFork(v).Name())
	assert.Equal(t, "odd-after-fork", NewOddAfterFork(v).Name())
}
