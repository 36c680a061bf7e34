package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewRequestID returns a random hex id for correlating log lines.
func NewRequestID(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 8
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
