package crypto

import (
	"strconv"

	"github.com/pnmeka/nostr-terminal/internal/domain"
)

const hexDigits = "0123456789abcdef"

// Canonical returns the bytes hashed into an event id: the compact JSON array
//
//	[0,"<pubkey>",<created_at>,<kind>,<tags>,"<content>"]
//
// Tag order is kept as given. Nil tags encode as [] and empty content as "".
// Strings are escaped the NIP-01 way so other implementations hash the same
// bytes: only '"', '\\' and control characters are escaped.
func Canonical(
	pubkeyHex string,
	createdAt domain.Timestamp,
	kind domain.Kind,
	tags domain.Tags,
	content string,
) []byte {
	dst := make([]byte, 0, 100+len(content)+len(tags)*80)

	dst = append(dst, `[0,`...)
	dst = appendString(dst, pubkeyHex)
	dst = append(dst, ',')
	dst = strconv.AppendInt(dst, int64(createdAt), 10)
	dst = append(dst, ',')
	dst = strconv.AppendUint(dst, uint64(kind), 10)
	dst = append(dst, ',')

	dst = append(dst, '[')
	for i, tag := range tags {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = append(dst, '[')
		for j, s := range tag {
			if j > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, s)
		}
		dst = append(dst, ']')
	}
	dst = append(dst, "],"...)

	dst = appendString(dst, content)
	return append(dst, ']')
}

// appendString appends s as a quoted JSON string.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		dst = append(dst, s[start:i]...)
		switch c {
		case '"', '\\':
			dst = append(dst, '\\', c)
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}
