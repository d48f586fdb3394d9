// Package id generates the short opaque identifiers used as record ids.
package id

import "math/rand/v2"

const (
	alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	length   = 9
)

// New returns a 9-character identifier drawn from a base36 alphabet. It
// makes no uniqueness guarantee; at tens to low thousands of records the
// birthday bound is acceptably small.
func New() string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}
