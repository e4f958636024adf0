// Package main runs the in-memory Nostr relay used by nostr-terminal during
// development and tests. It accepts EVENT messages over a WebSocket, verifies
// them and answers each with an OK message.
//
// HTTP API
//
//	GET /  (WebSocket upgrade)
//	    ["EVENT", <event>]  ->  ["OK", <id>, true, ""]
//	                            ["OK", <id>, true, "duplicate: already have this event"]
//	                            ["OK", <id>, false, "invalid: <reason>"]
//	    any other verb      ->  ["NOTICE", <message>]
//
//	GET /health/live
//	    Liveness probe, returns {"status":"ok"}.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - A lightweight access log records method, path, remote, status, bytes and
//     duration for each request.
//   - The default listen address is :8080.
//
// The relay does not serve subscriptions (REQ); it exists so the publish
// path can be exercised end to end without a public relay.
package main
