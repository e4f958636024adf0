package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"

	"github.com/pnmeka/nostr-terminal/internal/domain"
)

// SignEvent builds a signed event from a secret key and the signable fields.
//
// Steps run in a fixed order and the first failure aborts: validate the key,
// derive the x-only public key, canonicalise, hash with SHA-256, sign the
// hash. createdAt is supplied by the caller so the result is deterministic
// apart from the signature nonce. No partial event is ever returned.
func SignEvent(
	sk []byte,
	createdAt domain.Timestamp,
	kind domain.Kind,
	tags domain.Tags,
	content string,
) (domain.Event, error) {
	kp, err := DeriveKeyPair(sk)
	if err != nil {
		return domain.Event{}, err
	}
	defer kp.Wipe()

	tags = tags.Clone()
	pubkey := kp.PublicKeyHex()
	id := sha256.Sum256(Canonical(pubkey, createdAt, kind, tags, content))

	sig, err := kp.Sign(id[:])
	if err != nil {
		return domain.Event{}, err
	}

	return domain.Event{
		ID:        hex.EncodeToString(id[:]),
		PubKey:    pubkey,
		CreatedAt: createdAt,
		Kind:      kind,
		Tags:      tags,
		Content:   content,
		Sig:       hex.EncodeToString(sig),
	}, nil
}

// ComputeID recomputes the id of ev from its fields, ignoring ev.ID and ev.Sig.
func ComputeID(ev domain.Event) ([32]byte, error) {
	if _, err := parsePubKeyHex(ev.PubKey); err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(Canonical(ev.PubKey, ev.CreatedAt, ev.Kind, ev.Tags, ev.Content)), nil
}

// VerifyEvent checks that ev.ID matches its fields and that ev.Sig is a valid
// Schnorr signature over ev.ID by ev.PubKey.
func VerifyEvent(ev domain.Event) error {
	id, err := ComputeID(ev)
	if err != nil {
		return err
	}
	if hex.EncodeToString(id[:]) != ev.ID {
		return ErrIDMismatch
	}
	pk, err := parsePubKeyHex(ev.PubKey)
	if err != nil {
		return err
	}
	sig, err := hex.DecodeString(ev.Sig)
	if err != nil || len(sig) != SignatureSize {
		return fmt.Errorf("%w: malformed signature", ErrBadSignature)
	}
	return verifySchnorr(pk, id[:], sig)
}

func verifySchnorr(pk, hash, sig []byte) error {
	pub, err := schnorr.ParsePubKey(pk)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	s, err := schnorr.ParseSignature(sig)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	if !s.Verify(hash, pub) {
		return ErrBadSignature
	}
	return nil
}

// parsePubKeyHex accepts only 64 lowercase hex characters.
func parsePubKeyHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != PublicKeySize || hex.EncodeToString(b) != s {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPublicKey, s)
	}
	return b, nil
}
