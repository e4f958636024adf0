// Package identity manages the signing key: creating or importing it,
// sealing it in the key store and resolving it for signing.
//
// The key is an injected credential, never a literal in the program. When the
// configured environment variable (NOSTR_NSEC by default) holds an nsec it is
// used directly; otherwise the key store is unlocked with the passphrase.
// Decoded key bytes are never logged.
package identity
