package commutator

import (
	"golang.org/x/crypto/blake2b"
)

// fingerprint returns a content hash of c's canonical token form
// (setup, interchange, insertion, insertion_first), used to recognize
// the same commutator emitted more than once.
func fingerprint(c Commutator) [blake2b.Size256]byte {
	return blake2b.Sum256([]byte(c.String()))
}

// Dedupe filters cs down to first-occurrence-wins distinct commutators,
// preserving discovery order. The search itself still returns every
// syntactic match; deduplication is an opt-in post-processing step.
func Dedupe(cs []Commutator) []Commutator {
	seen := make(map[[blake2b.Size256]byte]struct{}, len(cs))
	out := make([]Commutator, 0, len(cs))
	for _, c := range cs {
		h := fingerprint(c)
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, c)
	}
	return out
}
