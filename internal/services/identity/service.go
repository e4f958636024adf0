package identity

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/pnmeka/nostr-terminal/internal/crypto"
	"github.com/pnmeka/nostr-terminal/internal/domain"
	"github.com/pnmeka/nostr-terminal/internal/util/memzero"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12

	// DefaultKeyEnv is the environment variable consulted for an nsec.
	DefaultKeyEnv = "NOSTR_NSEC"
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
	// ErrNoCredential is returned when neither the environment nor the key store provides a key.
	ErrNoCredential = errors.New("no secret key available")
	// ErrPassphraseRequired is returned when the key store is used without a passphrase.
	ErrPassphraseRequired = errors.New("passphrase required to unlock the key store (-p)")
)

// Service resolves the signing key from the environment or a backing store.
type Service struct {
	store     domain.KeyStore
	env       string
	lookupEnv func(string) (string, bool)
	log       *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithKeyEnv sets the environment variable consulted for an nsec. An empty
// name disables the lookup.
func WithKeyEnv(name string) Option {
	return func(s *Service) { s.env = name }
}

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(s *Service) { s.lookupEnv = fn }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// New returns an identity service backed by the given store.
func New(store domain.KeyStore, opts ...Option) *Service {
	s := &Service{
		store:     store,
		env:       DefaultKeyEnv,
		lookupEnv: os.LookupEnv,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateKey creates a new secret key, seals it with the passphrase and
// returns its public key.
func (s *Service) GenerateKey(passphrase string) (domain.PublicKey, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.PublicKey{}, ErrWeakPassphrase
	}
	sk, err := crypto.GenerateSecretKey()
	if err != nil {
		return domain.PublicKey{}, fmt.Errorf("generate key: %w", err)
	}
	defer memzero.Zero(sk)
	return s.save(passphrase, sk)
}

// ImportKey decodes an nsec (with or without the "nsec1" prefix), checks it is
// a usable key, seals it with the passphrase and returns its public key.
func (s *Service) ImportKey(passphrase, encoded string) (domain.PublicKey, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.PublicKey{}, ErrWeakPassphrase
	}
	sk, err := crypto.DecodeSecretKey(strings.TrimSpace(encoded))
	if err != nil {
		return domain.PublicKey{}, err
	}
	defer memzero.Zero(sk)
	return s.save(passphrase, sk)
}

// LoadSecretKey returns the raw secret key. The caller owns the slice and
// should wipe it after use.
func (s *Service) LoadSecretKey(passphrase string) ([]byte, error) {
	if s.env != "" {
		if v, ok := s.lookupEnv(s.env); ok && strings.TrimSpace(v) != "" {
			sk, err := crypto.DecodeSecretKey(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", s.env, err)
			}
			s.log.Debug("secret key resolved", slog.String("source", "env"), slog.String("var", s.env))
			return sk, nil
		}
	}
	if s.store == nil {
		return nil, s.noCredential()
	}
	ok, err := s.store.HasSecretKey()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.noCredential()
	}
	if passphrase == "" {
		return nil, ErrPassphraseRequired
	}
	sk, err := s.store.LoadSecretKey(passphrase)
	if err != nil {
		return nil, fmt.Errorf("unlock key store: %w", err)
	}
	s.log.Debug("secret key resolved", slog.String("source", "store"))
	return sk, nil
}

// PublicKey returns the public key of the resolved secret key.
func (s *Service) PublicKey(passphrase string) (domain.PublicKey, error) {
	sk, err := s.LoadSecretKey(passphrase)
	if err != nil {
		return domain.PublicKey{}, err
	}
	defer memzero.Zero(sk)
	return publicKeyOf(sk)
}

func (s *Service) noCredential() error {
	if s.env == "" {
		return fmt.Errorf("%w: run init or import", ErrNoCredential)
	}
	return fmt.Errorf("%w: set %s or run init/import", ErrNoCredential, s.env)
}

func (s *Service) save(passphrase string, sk []byte) (domain.PublicKey, error) {
	pk, err := publicKeyOf(sk)
	if err != nil {
		return domain.PublicKey{}, err
	}
	if err := s.store.SaveSecretKey(passphrase, sk); err != nil {
		return domain.PublicKey{}, fmt.Errorf("save key: %w", err)
	}
	s.log.Info("secret key stored", slog.String("pubkey", pk.Hex))
	return pk, nil
}

func publicKeyOf(sk []byte) (domain.PublicKey, error) {
	kp, err := crypto.DeriveKeyPair(sk)
	if err != nil {
		return domain.PublicKey{}, err
	}
	defer kp.Wipe()
	npub, err := crypto.EncodePublicKey(kp.XOnly[:])
	if err != nil {
		return domain.PublicKey{}, err
	}
	return domain.PublicKey{
		Hex:         kp.PublicKeyHex(),
		NPub:        npub,
		Fingerprint: crypto.Fingerprint(kp.XOnly[:]),
	}, nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
