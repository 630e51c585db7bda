package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// GenerateSecureRandomString generates a cryptographically secure random string of the specified byte length,
// then hex encodes it. For example, lengthInBytes=32 will result in a 64-character hex string.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

const recordIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RecordIDLength is the number of random characters after the prefix.
const RecordIDLength = 6

// GenerateRecordID returns a short human-readable identifier such as
// "C7KQ2MX": prefix followed by RecordIDLength upper-case characters.
func GenerateRecordID(prefix string) (string, error) {
	out := make([]byte, RecordIDLength)
	max := big.NewInt(int64(len(recordIDAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		out[i] = recordIDAlphabet[n.Int64()]
	}
	return prefix + string(out), nil
}
