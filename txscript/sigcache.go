// Copyright (c) 2015-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"sync"

	"github.com/pkt-cash/pktscript/btcec"
	"github.com/pkt-cash/pktscript/chainhash"
)

// sigCacheEntry represents an entry in the SigCache. Entries are keyed on
// the sig hash; the entry holds the signature and public key that were
// verified successfully against it, and a lookup hits only when both match.
type sigCacheEntry struct {
	sig    *btcec.Signature
	pubKey *btcec.PublicKey
}

// SigCache implements an ECDSA signature verification cache with a randomized
// entry eviction policy. Only valid signatures are added to the cache. It
// is exposed to the script engine so that a given (hash, signature, pubkey)
// triple, once verified valid, need not be verified a second time should it
// be encountered again, e.g. while relaying an already-checked transaction.
type SigCache struct {
	sync.RWMutex
	validSigs  map[chainhash.Hash]sigCacheEntry
	maxEntries uint
}

// NewSigCache creates and initializes a new instance of SigCache. The
// maxEntries parameter represents the maximum number of entries allowed to
// exist in the SigCache at any particular moment. Once the max number of
// entries is reached, new entries will replace old entries at random.
func NewSigCache(maxEntries uint) *SigCache {
	return &SigCache{
		validSigs:  make(map[chainhash.Hash]sigCacheEntry, maxEntries),
		maxEntries: maxEntries,
	}
}

// Exists returns true if the (sigHash, signature, pubKey) triple is already
// found within the SigCache. Otherwise, false is returned.
func (s *SigCache) Exists(sigHash chainhash.Hash, sig *btcec.Signature, pubKey *btcec.PublicKey) bool {
	s.RLock()
	defer s.RUnlock()

	entry, ok := s.validSigs[sigHash]
	return ok && entry.pubKey.IsEqual(pubKey) && sigsEqual(entry.sig, sig)
}

// sigsEqual compares two parsed ECDSA signatures for equality by their
// serialized DER form.
func sigsEqual(a, b *btcec.Signature) bool {
	ab := a.Serialize()
	bb := b.Serialize()
	if len(ab) != len(bb) {
		return false
	}
	for i := range ab {
		if ab[i] != bb[i] {
			return false
		}
	}
	return true
}

// Add adds an entry for a given (sigHash, signature, pubKey) triple,
// allowing future calls to Exists which contain the same triple to report
// true, and thereby skip signature verification.
//
// If the new number of entries in the cache would exceed the max entries
// allowed, then an existing entry is chosen at random (via Go's randomized
// map iteration) and evicted to make room for the new entry.
func (s *SigCache) Add(sigHash chainhash.Hash, sig *btcec.Signature, pubKey *btcec.PublicKey) {
	s.Lock()
	defer s.Unlock()

	if s.maxEntries <= 0 {
		return
	}

	// If adding this new entry will put us over the max number of
	// allowed entries, then evict an entry.
	if uint(len(s.validSigs)+1) > s.maxEntries {
		for sigHash := range s.validSigs {
			delete(s.validSigs, sigHash)
			break
		}
	}

	s.validSigs[sigHash] = sigCacheEntry{sig, pubKey}
}
