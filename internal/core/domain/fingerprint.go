package domain

import "github.com/cespare/xxhash/v2"

// Fingerprint returns a stable hash of the lock state. It digests the
// canonical coordinate-centric rendering, so two states that would produce
// the same unified file body share a fingerprint regardless of how either
// mapping was assembled.
func (l ConfigurationLocks) Fingerprint() uint64 {
	usage := l.ToUsage()
	h := xxhash.New()
	for _, key := range usage.SortedKeys() {
		_, _ = h.WriteString(key)
		_, _ = h.WriteString("=")
		_, _ = h.WriteString(JoinConfigurations(usage[key]))
		_, _ = h.WriteString("\n")
	}
	return h.Sum64()
}
