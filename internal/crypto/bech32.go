package crypto

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Human-readable prefixes of NIP-19 key encodings.
const (
	SecretKeyPrefix = "nsec"
	PublicKeyPrefix = "npub"
)

// DecodeSecretKey decodes an nsec string into raw key bytes.
//
// The "nsec1" prefix is optional. The result is normally 32 bytes, but the
// length is only enforced by DeriveKeyPair.
func DecodeSecretKey(s string) ([]byte, error) {
	if !strings.HasPrefix(s, SecretKeyPrefix+"1") {
		s = SecretKeyPrefix + "1" + s
	}
	return decodeBech32(SecretKeyPrefix, s)
}

// DecodePublicKey decodes an npub string into a 32-byte x-only public key.
func DecodePublicKey(s string) ([]byte, error) {
	b, err := decodeBech32(PublicKeyPrefix, s)
	if err != nil {
		return nil, err
	}
	if len(b) != PublicKeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidPublicKey, PublicKeySize, len(b))
	}
	return b, nil
}

// EncodeSecretKey returns the nsec encoding of a 32-byte secret key.
func EncodeSecretKey(sk []byte) (string, error) {
	if len(sk) != SecretKeySize {
		return "", &KeyError{Reason: fmt.Sprintf("want %d bytes, got %d", SecretKeySize, len(sk))}
	}
	return encodeBech32(SecretKeyPrefix, sk)
}

// EncodePublicKey returns the npub encoding of a 32-byte x-only public key.
func EncodePublicKey(pk []byte) (string, error) {
	if len(pk) != PublicKeySize {
		return "", fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidPublicKey, PublicKeySize, len(pk))
	}
	return encodeBech32(PublicKeyPrefix, pk)
}

func decodeBech32(prefix, s string) ([]byte, error) {
	hrp, words, err := bech32.Decode(s)
	if err != nil {
		return nil, &DecodeError{Kind: InvalidChecksumOrFormat, Err: err}
	}
	if hrp != prefix {
		return nil, &DecodeError{
			Kind: InvalidChecksumOrFormat,
			Err:  fmt.Errorf("prefix %q, want %q", hrp, prefix),
		}
	}
	b, err := bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return nil, &DecodeError{Kind: BitConversionError, Err: err}
	}
	return b, nil
}

func encodeBech32(prefix string, b []byte) (string, error) {
	words, err := bech32.ConvertBits(b, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(prefix, words)
}
