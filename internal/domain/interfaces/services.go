package interfaces

import (
	"context"

	domaintypes "github.com/pnmeka/nostr-terminal/internal/domain/types"
)

// IdentityService creates, imports and resolves the signing key.
type IdentityService interface {
	GenerateKey(passphrase string) (domaintypes.PublicKey, error)
	ImportKey(passphrase, encoded string) (domaintypes.PublicKey, error)
	LoadSecretKey(passphrase string) ([]byte, error)
	PublicKey(passphrase string) (domaintypes.PublicKey, error)
}

// NoteService signs drafts and publishes the resulting events.
type NoteService interface {
	Sign(passphrase string, draft domaintypes.Draft) (domaintypes.Event, error)
	Post(
		ctx context.Context,
		passphrase string,
		draft domaintypes.Draft,
	) (domaintypes.Event, string, error)
}
