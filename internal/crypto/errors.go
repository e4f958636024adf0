package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChecksumOrFormat matches a DecodeError for a bad checksum, alphabet or prefix.
	ErrInvalidChecksumOrFormat = errors.New("invalid bech32 checksum or format")
	// ErrBitConversion matches a DecodeError raised while regrouping 5-bit words into bytes.
	ErrBitConversion = errors.New("invalid 5-to-8 bit conversion")
	// ErrInvalidSecretKey matches a KeyError.
	ErrInvalidSecretKey = errors.New("invalid secret key")
	// ErrSigning matches a SigningError.
	ErrSigning = errors.New("signing failed")

	// ErrInvalidPublicKey is returned when a public key is not 32-byte x-only hex.
	ErrInvalidPublicKey = errors.New("invalid public key")
	// ErrIDMismatch is returned when an event id is not the hash of its canonical form.
	ErrIDMismatch = errors.New("event id does not match its content")
	// ErrBadSignature is returned when an event signature does not verify.
	ErrBadSignature = errors.New("invalid event signature")
)

// DecodeErrorKind classifies a DecodeError.
type DecodeErrorKind int

const (
	// InvalidChecksumOrFormat covers checksum, alphabet, case, length and prefix failures.
	InvalidChecksumOrFormat DecodeErrorKind = iota + 1
	// BitConversionError covers malformed 5-bit groups and non-zero padding.
	BitConversionError
)

func (k DecodeErrorKind) String() string {
	switch k {
	case InvalidChecksumOrFormat:
		return "invalid checksum or format"
	case BitConversionError:
		return "bit conversion error"
	default:
		return fmt.Sprintf("DecodeErrorKind(%d)", int(k))
	}
}

// DecodeError reports a malformed bech32 key string.
type DecodeError struct {
	Kind DecodeErrorKind
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode key: %s: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is lets errors.Is match the sentinel for the error's kind.
func (e *DecodeError) Is(target error) bool {
	switch e.Kind {
	case InvalidChecksumOrFormat:
		return target == ErrInvalidChecksumOrFormat
	case BitConversionError:
		return target == ErrBitConversion
	}
	return false
}

// KeyError reports bytes that are not a usable secp256k1 secret key.
type KeyError struct {
	Reason string
}

func (e *KeyError) Error() string { return "invalid secret key: " + e.Reason }

func (e *KeyError) Is(target error) bool { return target == ErrInvalidSecretKey }

// SigningError reports a failure of the Schnorr signing step.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string { return fmt.Sprintf("sign event: %v", e.Err) }

func (e *SigningError) Unwrap() error { return e.Err }

func (e *SigningError) Is(target error) bool { return target == ErrSigning }
