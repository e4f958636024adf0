// Package store provides file-based persistence for the signing key.
//
// The secret key is sealed under a passphrase (argon2id key derivation and
// ChaCha20-Poly1305) and written atomically with 0600 permissions under the
// configured home directory. Files written by the earlier scrypt-based format
// are still readable. All methods are concurrency-safe via internal locking.
package store
