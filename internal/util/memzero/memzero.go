// Package memzero wipes secret material from memory.
package memzero

import "runtime"

// Zero overwrites b with zeros. This is best-effort: copies the runtime or
// other code made of b are not reached.
//
//go:noinline
func Zero(b []byte) {
	clear(b)
	// Ensure b is considered live until after the clear.
	runtime.KeepAlive(&b)
}
