package adapter

import (
	"crypto/rand"
)

// blockIDLength matches the fixed-length block identifiers the remote
// service itself generates.
const blockIDLength = 27

const blockIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewBlockID returns a 27-character lowercase-alphanumeric identifier drawn
// from a cryptographically strong random source. Client-side assignment lets
// a single batch reference its own blocks (parentId linkage) before the
// server has echoed back canonical records.
func NewBlockID() string {
	buf := make([]byte, blockIDLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}
	for i, b := range buf {
		buf[i] = blockIDAlphabet[int(b)%len(blockIDAlphabet)]
	}
	return string(buf)
}
