package crypto_test

import (
	"encoding/hex"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pnmeka/nostr-terminal/internal/crypto"
	"github.com/pnmeka/nostr-terminal/internal/domain"
)

const (
	goldenHelloID = "eeaf6019d3539958822e623fa80fea5459003a6d9bfbf79014b01fd9bb11d46b"
	goldenTagsID  = "fede40577713ce2291667f61ae0387a712d93a364a62a4ea82f3ffe2c3d77bdd"
)

func TestSignEvent_Golden(t *testing.T) {
	sk, err := crypto.DecodeSecretKey(testNsec)
	require.NoError(t, err)

	ev, err := crypto.SignEvent(sk, goldenCreatedAt, domain.KindTextNote, nil, "hello")
	require.NoError(t, err)

	assert.Equal(t, goldenHelloID, ev.ID)
	assert.Equal(t, testPubHex, ev.PubKey)
	assert.Equal(t, goldenCreatedAt, ev.CreatedAt)
	assert.Equal(t, domain.KindTextNote, ev.Kind)
	assert.Equal(t, domain.Tags{}, ev.Tags)
	assert.Equal(t, "hello", ev.Content)
	assert.Len(t, ev.Sig, 2*crypto.SignatureSize)
	require.NoError(t, crypto.VerifyEvent(ev))
}

func TestSignEvent_GoldenWithTags(t *testing.T) {
	sk := mustHex(t, testSecretHex)
	tags := domain.Tags{{"e", "abc"}, {"p", "def"}}

	ev, err := crypto.SignEvent(sk, goldenCreatedAt, domain.KindTextNote, tags, "")
	require.NoError(t, err)
	assert.Equal(t, goldenTagsID, ev.ID)
	assert.Equal(t, tags, ev.Tags)
	require.NoError(t, crypto.VerifyEvent(ev))
}

func TestSignEvent_DoesNotAliasCallerTags(t *testing.T) {
	sk := mustHex(t, testSecretHex)
	tags := domain.Tags{{"e", "abc"}}

	ev, err := crypto.SignEvent(sk, goldenCreatedAt, 1, tags, "")
	require.NoError(t, err)

	tags[0][1] = "changed"
	assert.Equal(t, "abc", ev.Tags[0][1])
	require.NoError(t, crypto.VerifyEvent(ev))
}

func TestSignEvent_InvalidKeys(t *testing.T) {
	cases := map[string]string{
		"short":       testSecretHex[:62],
		"long":        testSecretHex + "00",
		"zero":        "0000000000000000000000000000000000000000000000000000000000000000",
		"curve order": "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		"above order": "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	}
	for name, skHex := range cases {
		t.Run(name, func(t *testing.T) {
			ev, err := crypto.SignEvent(mustHex(t, skHex), goldenCreatedAt, 1, nil, "hello")
			require.ErrorIs(t, err, crypto.ErrInvalidSecretKey)
			assert.Equal(t, domain.Event{}, ev)
		})
	}
}

func TestSignEvent_LargestValidScalar(t *testing.T) {
	sk := mustHex(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140")
	ev, err := crypto.SignEvent(sk, goldenCreatedAt, 1, nil, "edge")
	require.NoError(t, err)
	require.NoError(t, crypto.VerifyEvent(ev))
}

func TestVerifyEvent_DetectsTampering(t *testing.T) {
	sk := mustHex(t, testSecretHex)
	ev, err := crypto.SignEvent(sk, goldenCreatedAt, 1, domain.Tags{{"p", "def"}}, "hello")
	require.NoError(t, err)

	content := ev
	content.Content = "hello!"
	require.ErrorIs(t, crypto.VerifyEvent(content), crypto.ErrIDMismatch)

	tags := ev
	tags.Tags = domain.Tags{{"p", "deg"}}
	require.ErrorIs(t, crypto.VerifyEvent(tags), crypto.ErrIDMismatch)

	sig := ev
	raw := mustHex(t, ev.Sig)
	raw[63] ^= 0x01
	sig.Sig = hex.EncodeToString(raw)
	require.ErrorIs(t, crypto.VerifyEvent(sig), crypto.ErrBadSignature)

	short := ev
	short.Sig = ev.Sig[:100]
	require.ErrorIs(t, crypto.VerifyEvent(short), crypto.ErrBadSignature)

	upper := ev
	upper.PubKey = "7E7E9C42A91BFEF19FA929E5FDA1B72E0EBC1A4C1141673E2794234D86ADDF4E"
	require.ErrorIs(t, crypto.VerifyEvent(upper), crypto.ErrInvalidPublicKey)
}

func TestComputeID_MatchesSignedID(t *testing.T) {
	ev, err := crypto.SignEvent(mustHex(t, testSecretHex), goldenCreatedAt, 1, nil, "hello")
	require.NoError(t, err)

	id, err := crypto.ComputeID(ev)
	require.NoError(t, err)
	assert.Equal(t, ev.ID, hex.EncodeToString(id[:]))
}

func TestSignEvent_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("id is the hash of the event's own fields and sig verifies", prop.ForAll(
		func(sk []byte, createdAt int64, kind uint64, tags [][]string, content string) bool {
			if _, err := crypto.DeriveKeyPair(sk); err != nil {
				return true // zero or out-of-range scalar
			}
			ev, err := crypto.SignEvent(sk, domain.Timestamp(createdAt), domain.Kind(kind), toTags(tags), content)
			if err != nil {
				return false
			}
			id, err := crypto.ComputeID(ev)
			if err != nil || hex.EncodeToString(id[:]) != ev.ID {
				return false
			}
			return crypto.VerifyEvent(ev) == nil
		},
		gen.SliceOfN(32, gen.UInt8()),
		gen.Int64(),
		gen.UInt64(),
		gen.SliceOf(gen.SliceOf(gen.AlphaString())),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
