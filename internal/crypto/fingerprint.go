package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/pnmeka/nostr-terminal/internal/domain"
)

// Fingerprint returns a short display fingerprint of an x-only public key:
// the first 10 bytes of its SHA-256, hex encoded.
func Fingerprint(pub []byte) domain.Fingerprint {
	sum := sha256.Sum256(pub)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
