package types

import "time"

// Kind is the category code of an event. Kind 1 is a plain short-text note.
type Kind uint64

// KindTextNote is the kind used for plain short-text notes.
const KindTextNote Kind = 1

// Timestamp is a Unix time in whole seconds.
type Timestamp int64

// Time returns the timestamp as a time.Time in UTC.
func (t Timestamp) Time() time.Time { return time.Unix(int64(t), 0).UTC() }

// TimestampOf truncates t to whole seconds.
func TimestampOf(t time.Time) Timestamp { return Timestamp(t.Unix()) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
