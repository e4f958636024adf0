package identity_test

import (
	"bytes"
	"encoding/hex"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pnmeka/nostr-terminal/internal/crypto"
	"github.com/pnmeka/nostr-terminal/internal/services/identity"
	"github.com/pnmeka/nostr-terminal/internal/store"
)

const (
	testNsec      = "nsec1vl029mgpspedva04g90vltkh6fvh240zqtv9k0t9af8935ke9laqsnlfe5"
	testSecretHex = "67dea2ed018072d675f5415ecfaed7d2597555e202d85b3d65ea4e58d2d92ffa"
	testPubHex    = "7e7e9c42a91bfef19fa929e5fda1b72e0ebc1a4c1141673e2794234d86addf4e"
	testNpub      = "npub10elfcs4fr0l0r8af98jlmgdh9c8tcxjvz9qkw038js35mp4dma8qzvjptg"
	strongPass    = "Correct-Horse-42"
)

// memStore is an in-memory domain.KeyStore that records the passphrase used.
type memStore struct {
	sk   []byte
	pass string
}

func (m *memStore) SaveSecretKey(passphrase string, sk []byte) error {
	m.sk = append([]byte(nil), sk...)
	m.pass = passphrase
	return nil
}

func (m *memStore) LoadSecretKey(passphrase string) ([]byte, error) {
	if m.sk == nil {
		return nil, store.ErrNoKey
	}
	if passphrase != m.pass {
		return nil, store.ErrWrongPassphrase
	}
	return append([]byte(nil), m.sk...), nil
}

func (m *memStore) HasSecretKey() (bool, error) { return m.sk != nil, nil }

func noEnv(string) (string, bool) { return "", false }

func envWith(name, value string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		if k == name {
			return value, true
		}
		return "", false
	}
}

func TestImportKey_StoresAndDerivesPublicKey(t *testing.T) {
	ms := &memStore{}
	svc := identity.New(ms, identity.WithLookupEnv(noEnv))

	pk, err := svc.ImportKey(strongPass, "  "+testNsec+"\n")
	require.NoError(t, err)
	assert.Equal(t, testPubHex, pk.Hex)
	assert.Equal(t, testNpub, pk.NPub)
	assert.Equal(t, "74534fb5959a5d89cd74", pk.Fingerprint.String())
	assert.Equal(t, testSecretHex, hex.EncodeToString(ms.sk))

	sk, err := svc.LoadSecretKey(strongPass)
	require.NoError(t, err)
	assert.Equal(t, testSecretHex, hex.EncodeToString(sk))
}

func TestImportKey_BareBody(t *testing.T) {
	svc := identity.New(&memStore{}, identity.WithLookupEnv(noEnv))
	pk, err := svc.ImportKey(strongPass, testNsec[len("nsec1"):])
	require.NoError(t, err)
	assert.Equal(t, testPubHex, pk.Hex)
}

func TestImportKey_Rejections(t *testing.T) {
	ms := &memStore{}
	svc := identity.New(ms, identity.WithLookupEnv(noEnv))

	_, err := svc.ImportKey("short", testNsec)
	require.ErrorIs(t, err, identity.ErrWeakPassphrase)

	_, err = svc.ImportKey(strongPass, testNsec[:len(testNsec)-1]+"4")
	require.ErrorIs(t, err, crypto.ErrInvalidChecksumOrFormat)

	// 31-byte payload decodes but is not a key.
	_, err = svc.ImportKey(strongPass, "nsec1vl029mgpspedva04g90vltkh6fvh240zqtv9k0t9af8935ke9u7jpluy")
	require.ErrorIs(t, err, crypto.ErrInvalidSecretKey)

	assert.Nil(t, ms.sk, "nothing may be stored after a rejected import")
}

func TestGenerateKey(t *testing.T) {
	ms := &memStore{}
	svc := identity.New(ms, identity.WithLookupEnv(noEnv))

	pk, err := svc.GenerateKey(strongPass)
	require.NoError(t, err)
	assert.Len(t, pk.Hex, 64)

	got, err := svc.PublicKey(strongPass)
	require.NoError(t, err)
	assert.Equal(t, pk, got)

	_, err = svc.GenerateKey("alllowercase-but-long")
	require.ErrorIs(t, err, identity.ErrWeakPassphrase)
}

func TestLoadSecretKey_EnvTakesPrecedence(t *testing.T) {
	ms := &memStore{}
	_, err := identity.New(ms, identity.WithLookupEnv(noEnv)).GenerateKey(strongPass)
	require.NoError(t, err)

	svc := identity.New(ms, identity.WithLookupEnv(envWith(identity.DefaultKeyEnv, testNsec)))
	sk, err := svc.LoadSecretKey("")
	require.NoError(t, err)
	assert.Equal(t, testSecretHex, hex.EncodeToString(sk))
}

func TestLoadSecretKey_CustomEnvName(t *testing.T) {
	svc := identity.New(nil,
		identity.WithKeyEnv("MY_KEY"),
		identity.WithLookupEnv(envWith("MY_KEY", testNsec[len("nsec1"):])),
	)
	pk, err := svc.PublicKey("")
	require.NoError(t, err)
	assert.Equal(t, testPubHex, pk.Hex)
}

func TestLoadSecretKey_InvalidEnvValue(t *testing.T) {
	svc := identity.New(nil, identity.WithLookupEnv(envWith(identity.DefaultKeyEnv, "nsec1garbage")))
	_, err := svc.LoadSecretKey("")
	require.ErrorIs(t, err, crypto.ErrInvalidChecksumOrFormat)
	assert.Contains(t, err.Error(), identity.DefaultKeyEnv)
}

func TestLoadSecretKey_NoCredential(t *testing.T) {
	_, err := identity.New(&memStore{}, identity.WithLookupEnv(noEnv)).LoadSecretKey("x")
	require.ErrorIs(t, err, identity.ErrNoCredential)

	_, err = identity.New(nil, identity.WithLookupEnv(noEnv)).LoadSecretKey("x")
	require.ErrorIs(t, err, identity.ErrNoCredential)
}

func TestLoadSecretKey_NoCredentialNamesConfiguredEnv(t *testing.T) {
	_, err := identity.New(&memStore{}, identity.WithKeyEnv("MY_KEY"), identity.WithLookupEnv(noEnv)).LoadSecretKey("x")
	require.ErrorIs(t, err, identity.ErrNoCredential)
	assert.Contains(t, err.Error(), "MY_KEY")
	assert.NotContains(t, err.Error(), identity.DefaultKeyEnv)

	_, err = identity.New(nil, identity.WithKeyEnv(""), identity.WithLookupEnv(noEnv)).LoadSecretKey("x")
	require.ErrorIs(t, err, identity.ErrNoCredential)
	assert.NotContains(t, err.Error(), identity.DefaultKeyEnv)

	_, err = identity.New(nil, identity.WithLookupEnv(noEnv)).LoadSecretKey("x")
	assert.Contains(t, err.Error(), identity.DefaultKeyEnv)
}

func TestLoadSecretKey_StoreNeedsPassphrase(t *testing.T) {
	ms := &memStore{}
	svc := identity.New(ms, identity.WithLookupEnv(noEnv))
	_, err := svc.ImportKey(strongPass, testNsec)
	require.NoError(t, err)

	_, err = svc.LoadSecretKey("")
	require.ErrorIs(t, err, identity.ErrPassphraseRequired)

	_, err = svc.LoadSecretKey("Wrong-Passphrase-1")
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestLoadSecretKey_NeverLogsSecret(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := identity.New(&memStore{},
		identity.WithLogger(logger),
		identity.WithLookupEnv(envWith(identity.DefaultKeyEnv, testNsec)),
	)
	_, err := svc.LoadSecretKey("")
	require.NoError(t, err)
	_, err = svc.ImportKey(strongPass, testNsec)
	require.NoError(t, err)

	out := buf.String()
	assert.NotEmpty(t, out)
	assert.NotContains(t, out, testSecretHex)
	assert.NotContains(t, out, testNsec[len("nsec1"):])
	assert.NotContains(t, out, strongPass)
}

func TestFileStoreIntegration(t *testing.T) {
	svc := identity.New(store.NewKeyFileStore(t.TempDir()), identity.WithLookupEnv(noEnv))

	pk, err := svc.ImportKey(strongPass, testNsec)
	require.NoError(t, err)

	got, err := svc.PublicKey(strongPass)
	require.NoError(t, err)
	assert.Equal(t, pk, got)
}
