// Package app loads the CLI configuration and wires application dependencies.
//
// Config is read from an optional YAML file with environment expansion and
// validated before use. NewWire builds the key store, relay client and
// high-level services from it, exposing them via the Wire struct for
// commands to use.
package app
