package pkg

import "math/rand"

const letters = "abcdefghijkmnpqrstuvwxyz23456789"

// RandString returns n characters picked from an alphabet without look-alike
// glyphs, suitable for codes players type in.
func RandString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
