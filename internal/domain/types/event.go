package types

import "encoding/json"

// Tag is one tag and its arguments, e.g. ["e", "<event id>"].
type Tag []string

// Tags is an ordered list of tags. Order is significant and preserved.
type Tags []Tag

// Clone returns a deep copy of t. A nil t clones to an empty, non-nil list.
func (t Tags) Clone() Tags {
	out := make(Tags, len(t))
	for i, tag := range t {
		out[i] = append(Tag{}, tag...)
	}
	return out
}

// MarshalJSON encodes nil tags and nil tag entries as empty arrays, never null.
func (t Tags) MarshalJSON() ([]byte, error) {
	out := make([][]string, len(t))
	for i, tag := range t {
		if tag == nil {
			out[i] = []string{}
			continue
		}
		out[i] = []string(tag)
	}
	return json.Marshal(out)
}

// Event is a signed, content-addressed record. Once built it is not mutated.
//
// ID is the lowercase hex SHA-256 of the canonical form of
// (0, PubKey, CreatedAt, Kind, Tags, Content); Sig is a BIP-340 Schnorr
// signature over ID made with the key behind PubKey.
type Event struct {
	ID        string    `json:"id"`
	PubKey    string    `json:"pubkey"`
	CreatedAt Timestamp `json:"created_at"`
	Kind      Kind      `json:"kind"`
	Tags      Tags      `json:"tags"`
	Content   string    `json:"content"`
	Sig       string    `json:"sig"`
}

// Draft holds the caller-chosen fields of an event before signing.
type Draft struct {
	Kind    Kind
	Tags    Tags
	Content string
}
