package relay

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pnmeka/nostr-terminal/internal/domain"
)

// Message verbs.
const (
	VerbEvent  = "EVENT"
	VerbOK     = "OK"
	VerbNotice = "NOTICE"
)

// OK is a relay's answer to an EVENT message.
type OK struct {
	EventID  string
	Accepted bool
	Message  string
}

// EncodeEventMessage returns the ["EVENT", <event>] text message for ev.
func EncodeEventMessage(ev domain.Event) ([]byte, error) {
	return encode(VerbEvent, ev)
}

// DecodeEventMessage parses an ["EVENT", <event>] message.
func DecodeEventMessage(b []byte) (domain.Event, error) {
	verb, args, err := splitMessage(b)
	if err != nil {
		return domain.Event{}, err
	}
	if verb != VerbEvent || len(args) != 1 {
		return domain.Event{}, fmt.Errorf("%w: want [%q, <event>]", ErrMalformedMessage, VerbEvent)
	}
	var ev domain.Event
	if err := json.Unmarshal(args[0], &ev); err != nil {
		return domain.Event{}, fmt.Errorf("%w: event: %v", ErrMalformedMessage, err)
	}
	return ev, nil
}

// EncodeOK returns the ["OK", <id>, <accepted>, <message>] text message.
func EncodeOK(ok OK) ([]byte, error) {
	return encode(VerbOK, ok.EventID, ok.Accepted, ok.Message)
}

// ParseOK parses an ["OK", <id>, <accepted>, <message>] message.
func ParseOK(b []byte) (OK, error) {
	verb, args, err := splitMessage(b)
	if err != nil {
		return OK{}, err
	}
	if verb != VerbOK || len(args) < 2 {
		return OK{}, fmt.Errorf("%w: not an %s message", ErrMalformedMessage, VerbOK)
	}
	var ok OK
	if err := json.Unmarshal(args[0], &ok.EventID); err != nil {
		return OK{}, fmt.Errorf("%w: event id: %v", ErrMalformedMessage, err)
	}
	if err := json.Unmarshal(args[1], &ok.Accepted); err != nil {
		return OK{}, fmt.Errorf("%w: accepted flag: %v", ErrMalformedMessage, err)
	}
	if len(args) > 2 {
		if err := json.Unmarshal(args[2], &ok.Message); err != nil {
			return OK{}, fmt.Errorf("%w: message: %v", ErrMalformedMessage, err)
		}
	}
	return ok, nil
}

// EncodeNotice returns the ["NOTICE", <message>] text message.
func EncodeNotice(msg string) ([]byte, error) {
	return encode(VerbNotice, msg)
}

func encode(verb string, args ...any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(append([]any{verb}, args...)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func splitMessage(b []byte) (string, []json.RawMessage, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(b, &parts); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if len(parts) == 0 {
		return "", nil, fmt.Errorf("%w: empty array", ErrMalformedMessage)
	}
	var verb string
	if err := json.Unmarshal(parts[0], &verb); err != nil {
		return "", nil, fmt.Errorf("%w: verb: %v", ErrMalformedMessage, err)
	}
	return verb, parts[1:], nil
}
