package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

func Sha256(s string) string {
	hash := sha256.Sum256([]byte(s))
	return hex.EncodeToString(hash[:])
}

// Short is the first n hex characters of Sha256(s).
func Short(s string, n int) string {
	h := Sha256(s)
	if n <= 0 || n >= len(h) {
		return h
	}
	return h[:n]
}
