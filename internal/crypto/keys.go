package crypto

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
)

const (
	SecretKeySize = 32
	PublicKeySize = schnorr.PubKeyBytesLen
	SignatureSize = schnorr.SignatureSize
)

// KeyPair is a secp256k1 secret key and its x-only public key.
//
// It lives for one signing operation; call Wipe when done.
type KeyPair struct {
	priv  *btcec.PrivateKey
	XOnly [PublicKeySize]byte
}

// DeriveKeyPair validates sk as a secp256k1 scalar and derives its key pair.
//
// sk must be 32 bytes encoding an integer in [1, n-1]. The parity of the
// public point is dropped; only the x coordinate is kept.
func DeriveKeyPair(sk []byte) (*KeyPair, error) {
	if len(sk) != SecretKeySize {
		return nil, &KeyError{Reason: fmt.Sprintf("want %d bytes, got %d", SecretKeySize, len(sk))}
	}
	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(sk); overflow {
		return nil, &KeyError{Reason: "scalar is not below the curve order"}
	}
	if scalar.IsZero() {
		return nil, &KeyError{Reason: "scalar is zero"}
	}
	scalar.Zero()

	priv, _ := btcec.PrivKeyFromBytes(sk)
	kp := &KeyPair{priv: priv}
	copy(kp.XOnly[:], schnorr.SerializePubKey(priv.PubKey()))
	return kp, nil
}

// GenerateSecretKey returns 32 fresh random bytes that form a valid secret key.
func GenerateSecretKey() ([]byte, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	defer priv.Zero()
	return priv.Serialize(), nil
}

// PublicKeyHex returns the lowercase hex form of the x-only public key.
func (kp *KeyPair) PublicKeyHex() string { return hex.EncodeToString(kp.XOnly[:]) }

// Sign produces a 64-byte BIP-340 signature over a 32-byte message hash.
func (kp *KeyPair) Sign(hash []byte) ([]byte, error) {
	sig, err := schnorr.Sign(kp.priv, hash)
	if err != nil {
		return nil, &SigningError{Err: err}
	}
	return sig.Serialize(), nil
}

// Wipe clears the secret scalar.
func (kp *KeyPair) Wipe() {
	if kp.priv != nil {
		kp.priv.Zero()
	}
}
