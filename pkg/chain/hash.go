package chain

import (
	"encoding/binary"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/crypto/sha3"
)

// Hash is the 64-bit digest of a header.
type Hash uint64

// MaxHash is the largest representable digest.
const MaxHash = Hash(^uint64(0))

// Hasher computes the digest of a header.
//
// The digest function is injected into the miner, validator and
// policies so that tests can substitute a deterministic one.
type Hasher interface {
	Hash(h *Header) Hash
}

// SHA3Hasher digests the RLP encoding of a header with SHA3-256 and
// keeps the first 8 bytes as the 64-bit digest.
type SHA3Hasher struct{}

func (SHA3Hasher) Hash(h *Header) Hash {
	d := sha3.New256()
	_, err := d.Write(h.Encode())
	if err != nil {
		// should not happen
		panic(err)
	}

	return Hash(binary.BigEndian.Uint64(d.Sum(nil)[:8]))
}

// CachingHasher memoizes the digests of recently seen headers.
//
// Chain verification hashes each interior header twice, once as the
// candidate and once as the parent of the next candidate, and
// repeated verifications of competing chains share a common prefix.
type CachingHasher struct {
	inner Hasher
	cache *lru.Cache
}

func NewCachingHasher(inner Hasher, size int) *CachingHasher {
	c, err := lru.New(size)
	if err != nil {
		panic(err)
	}

	return &CachingHasher{inner: inner, cache: c}
}

func (c *CachingHasher) Hash(h *Header) Hash {
	k := *h
	if d, ok := c.cache.Get(k); ok {
		return d.(Hash)
	}

	d := c.inner.Hash(h)
	c.cache.Add(k, d)
	return d
}
