package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	// formatScrypt is the original blob layout: scrypt KDF.
	formatScrypt = 1
	// formatArgon2id is the current blob layout: argon2id KDF.
	formatArgon2id = 2

	keystoreFormatVersion = formatArgon2id
	saltSize              = 16
)

var (
	// ErrWrongPassphrase is returned when the passphrase is incorrect or the ciphertext has been modified / corrupted.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")
)

// blob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N,omitempty"`
	R      int    `json:"scrypt_r,omitempty"`
	P      int    `json:"scrypt_p,omitempty"`
	Time   uint32 `json:"argon2_t,omitempty"`
	Memory uint32 `json:"argon2_m,omitempty"`
	Lanes  uint8  `json:"argon2_p,omitempty"`
	Cipher []byte `json:"cipher"`
}

// argon2Params are the tunables for new blobs.
type argon2Params struct {
	Time, Memory uint32
	Lanes        uint8
}

func argon2ParamsDefault() argon2Params { return argon2Params{Time: 1, Memory: 64 * 1024, Lanes: 4} }

// seal derives a key from passphrase and seals raw into a JSON blob.
func seal(passphrase string, raw []byte, params argon2Params) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	bl := blob{
		V:      formatArgon2id,
		Salt:   salt,
		Time:   params.Time,
		Memory: params.Memory,
		Lanes:  params.Lanes,
	}
	key, err := deriveKey(passphrase, bl)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	bl.Cipher = aead.Seal(nil, nonce[:], raw, salt)
	return json.Marshal(bl)
}

// open decrypts a JSON blob using a key derived from passphrase.
func open(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, fmt.Errorf("parse key file: %w", err)
	}
	if bl.V < formatScrypt || bl.V > keystoreFormatVersion {
		return nil, fmt.Errorf("unsupported keystore version %d", bl.V)
	}
	key, err := deriveKey(passphrase, bl)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

func deriveKey(passphrase string, bl blob) ([]byte, error) {
	switch bl.V {
	case formatScrypt:
		return scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	case formatArgon2id:
		if bl.Time == 0 || bl.Memory == 0 || bl.Lanes == 0 {
			return nil, errors.New("missing argon2id parameters")
		}
		return argon2.IDKey([]byte(passphrase), bl.Salt, bl.Time, bl.Memory, bl.Lanes, chacha20poly1305.KeySize), nil
	default:
		return nil, fmt.Errorf("unsupported keystore version %d", bl.V)
	}
}
