package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/pnmeka/nostr-terminal/internal/domain"
	"github.com/pnmeka/nostr-terminal/internal/util/memzero"
)

const keyFilename = "secret_key.json.enc"

// ErrNoKey is returned when no key file exists yet.
var ErrNoKey = errors.New("no secret key stored; run init or import first")

// ErrCorruptKeyFile is returned when the key file unseals to something other
// than a 32-byte key.
var ErrCorruptKeyFile = errors.New("corrupted key file")

// KeyFileStore persists the sealed secret key to disk.
type KeyFileStore struct {
	dir    string
	params argon2Params
	mu     sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at dir.
func NewKeyFileStore(dir string) *KeyFileStore {
	return &KeyFileStore{dir: dir, params: argon2ParamsDefault()}
}

// Path returns the location of the key file.
func (s *KeyFileStore) Path() string { return filepath.Join(s.dir, keyFilename) }

// SaveSecretKey seals sk under passphrase and writes it, replacing any existing key.
func (s *KeyFileStore) SaveSecretKey(passphrase string, sk []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct, err := seal(passphrase, sk, s.params)
	if err != nil {
		return err
	}
	return writeFile(s.Path(), ct, 0o600)
}

// LoadSecretKey reads and unseals the secret key.
func (s *KeyFileStore) LoadSecretKey(passphrase string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.Path())
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNoKey
	}
	sk, err := open(passphrase, b)
	if err != nil {
		return nil, err
	}
	if n := len(sk); n != 32 {
		memzero.Zero(sk)
		return nil, fmt.Errorf("%w: holds %d bytes, want 32", ErrCorruptKeyFile, n)
	}
	return sk, nil
}

// HasSecretKey reports whether a key file exists.
func (s *KeyFileStore) HasSecretKey() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.Path())
	if err != nil {
		return false, err
	}
	return b != nil, nil
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
