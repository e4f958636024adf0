package relay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pnmeka/nostr-terminal/internal/crypto"
	"github.com/pnmeka/nostr-terminal/internal/domain"
	"github.com/pnmeka/nostr-terminal/internal/relay"
)

func TestEncodeEventMessage_Shape(t *testing.T) {
	ev := domain.Event{
		ID:        "id",
		PubKey:    "pk",
		CreatedAt: 1700000000,
		Kind:      1,
		Content:   "<b>&",
		Sig:       "sig",
	}
	b, err := relay.EncodeEventMessage(ev)
	require.NoError(t, err)
	assert.Equal(t,
		`["EVENT",{"id":"id","pubkey":"pk","created_at":1700000000,"kind":1,"tags":[],"content":"<b>&","sig":"sig"}]`,
		string(b))
}

func TestDecodeEventMessage_RoundTrip(t *testing.T) {
	ev := signedEvent(t, "hello", domain.Tags{{"e", "abc"}, {"p", "def"}})
	b, err := relay.EncodeEventMessage(ev)
	require.NoError(t, err)

	got, err := relay.DecodeEventMessage(b)
	require.NoError(t, err)
	assert.Equal(t, ev, got)
}

func TestEventMessage_NonASCIIStillVerifies(t *testing.T) {
	ev := signedEvent(t, "café \u2028 🌮 <&>", domain.Tags{{"t", "naïve"}})
	b, err := relay.EncodeEventMessage(ev)
	require.NoError(t, err)

	got, err := relay.DecodeEventMessage(b)
	require.NoError(t, err)
	assert.Equal(t, ev.Content, got.Content)
	require.NoError(t, crypto.VerifyEvent(got))
}

// Invalid UTF-8 does not survive JSON encoding, which is why callers must
// reject it before signing.
func TestEventMessage_InvalidUTF8IsRewritten(t *testing.T) {
	ev := signedEvent(t, "caf\xe9", nil)
	b, err := relay.EncodeEventMessage(ev)
	require.NoError(t, err)

	got, err := relay.DecodeEventMessage(b)
	require.NoError(t, err)
	assert.Equal(t, "caf\ufffd", got.Content)
	require.ErrorIs(t, crypto.VerifyEvent(got), crypto.ErrIDMismatch)
}

func TestDecodeEventMessage_Malformed(t *testing.T) {
	for _, in := range []string{``, `{}`, `[]`, `[1]`, `["REQ","sub"]`, `["EVENT"]`, `["EVENT",5]`} {
		_, err := relay.DecodeEventMessage([]byte(in))
		assert.ErrorIs(t, err, relay.ErrMalformedMessage, in)
	}
}

func TestParseOK(t *testing.T) {
	ok, err := relay.ParseOK([]byte(`["OK","abc",false,"blocked: spam"]`))
	require.NoError(t, err)
	assert.Equal(t, relay.OK{EventID: "abc", Accepted: false, Message: "blocked: spam"}, ok)

	ok, err = relay.ParseOK([]byte(`["OK","abc",true]`))
	require.NoError(t, err)
	assert.True(t, ok.Accepted)

	_, err = relay.ParseOK([]byte(`["NOTICE","hi"]`))
	require.ErrorIs(t, err, relay.ErrMalformedMessage)

	_, err = relay.ParseOK([]byte(`not json`))
	require.ErrorIs(t, err, relay.ErrMalformedMessage)
}

func TestEncodeOK(t *testing.T) {
	b, err := relay.EncodeOK(relay.OK{EventID: "abc", Accepted: true})
	require.NoError(t, err)
	assert.Equal(t, `["OK","abc",true,""]`, string(b))
}
