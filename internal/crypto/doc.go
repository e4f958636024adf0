// Package crypto builds and checks signed events.
//
// Contents
//
//   - NIP-19 bech32 key codecs (DecodeSecretKey, EncodeSecretKey,
//     EncodePublicKey, DecodePublicKey)
//   - secp256k1 key derivation and generation (DeriveKeyPair,
//     GenerateSecretKey)
//   - The canonical event form hashed into the event id (Canonical)
//   - Event signing and verification (SignEvent, ComputeID, VerifyEvent)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Errors
//
// Decoding failures are *DecodeError (ErrInvalidChecksumOrFormat or
// ErrBitConversion), unusable key material is *KeyError (ErrInvalidSecretKey)
// and a failed Schnorr signing step is *SigningError (ErrSigning).
//
// # Notes
//
// Every function here is pure: no I/O, no logging, no shared state. Decoded
// secret bytes are returned to the caller and never written anywhere else;
// callers should wipe them with memzero.Zero once the event is signed.
package crypto
