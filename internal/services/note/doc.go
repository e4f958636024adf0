// Package note turns a draft into a signed event and publishes it.
//
// Post runs the whole pipeline: resolve the secret key, stamp the event with
// the service clock, sign it and hand it to the relay publisher. Any failure
// before the publish step means no network activity happens.
package note
