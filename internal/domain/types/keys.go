package types

// PublicKey is the displayable form of an x-only public key.
type PublicKey struct {
	Hex         string      `json:"hex"`
	NPub        string      `json:"npub"`
	Fingerprint Fingerprint `json:"fingerprint"`
}
