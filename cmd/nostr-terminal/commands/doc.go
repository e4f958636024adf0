// Package commands defines the nostr-terminal CLI and wires dependencies for subcommands.
//
// Commands
//
//   - <message...>   Sign the joined arguments as a text note and publish it
//   - post           Same as the root form, with --kind, --tag and --dry-run
//   - init           Generate a secret key and seal it in the key store
//   - import         Seal an existing nsec in the key store
//   - pubkey         Print the public key as hex, npub and fingerprint
//   - verify         Check the id and signature of an event
//
// # Implementation
//
// The root command loads the configuration, applies flag overrides, sets up
// logging and builds the dependency graph (key store, identity and note
// services, relay client) before any subcommand runs. The secret key comes
// from the NOSTR_NSEC environment variable when set, otherwise from the key
// store unlocked with -p or NOSTR_PASSPHRASE.
package commands
