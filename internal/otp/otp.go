// Package otp generates and verifies one-time codes for the phone-linking flow.
package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"math/big"
	"strconv"
)

const (
	codeMin = 100000
	codeMax = 999999
)

// GenerateCode returns a 6-digit numeric code drawn uniformly from [100000, 999999].
// Uses crypto/rand for randomness.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(codeMin+n.Int64(), 10), nil
}

// HashCode returns a SHA-256 hash over externalID+phone+code, hex-encoded.
// Binding the hash to the identity and phone prevents replaying a code captured
// for one identity/phone pair against another.
func HashCode(externalID, phone, code string) string {
	h := sha256.Sum256([]byte(externalID + phone + code))
	return hex.EncodeToString(h[:])
}

// CodeEqual performs constant-time comparison of the provided code's hash with the stored hash.
func CodeEqual(externalID, phone, code, storedHash string) bool {
	providedHash := HashCode(externalID, phone, code)
	return subtle.ConstantTimeCompare([]byte(providedHash), []byte(storedHash)) == 1
}
