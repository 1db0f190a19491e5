package repository

import "crypto/rand"

const shareAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"

// NewShareID returns a 10-character URL-safe share token. Generated once
// per resume at creation; never regenerated by updates.
func NewShareID() string {
	b := make([]byte, 10)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = shareAlphabet[int(b[i])&63]
	}
	return string(b)
}
