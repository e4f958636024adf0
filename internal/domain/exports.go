package domain

import (
	interfaces "github.com/pnmeka/nostr-terminal/internal/domain/interfaces"
	types "github.com/pnmeka/nostr-terminal/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Event       = types.Event
	Tag         = types.Tag
	Tags        = types.Tags
	Kind        = types.Kind
	Timestamp   = types.Timestamp
	Draft       = types.Draft
	PublicKey   = types.PublicKey
	Fingerprint = types.Fingerprint
)

// KindTextNote is the kind of a plain short-text note.
const KindTextNote = types.KindTextNote

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyStore        = interfaces.KeyStore
	IdentityService = interfaces.IdentityService
	NoteService     = interfaces.NoteService
	Publisher       = interfaces.Publisher
)
