// Package relay talks to Nostr relays over WebSocket.
//
// Client is the publisher: it opens a connection, sends one
// ["EVENT", <event>] text message, waits for one reply and closes. The whole
// exchange is bounded by the client's timeout; there is no retry and no
// fixed post-send delay. The reply is returned verbatim. ParseOK can decode
// an ["OK", <id>, <accepted>, <message>] reply for logging, but callers never
// require one.
//
// Server is a small in-memory relay used by cmd/relay during development and
// by tests. It accepts EVENT messages, verifies id and signature, keeps
// accepted events in memory and answers with OK. Any other verb gets a
// NOTICE.
//
// Failures of the connection are returned as *TransportError carrying the
// step ("dial", "send", "read") and the relay URL. A connection closed
// before any reply matches ErrNoReply.
package relay
