package main

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const groupCodeLength = 6

// GenerateGroupCode returns a short human-shareable code: 3 random bytes
// rendered as uppercase hex. Uniqueness against live groups is enforced by
// the caller, which retries on collision.
func GenerateGroupCode() string {
	buf := make([]byte, groupCodeLength/2)
	rand.Read(buf)
	return strings.ToUpper(hex.EncodeToString(buf))
}

// NormalizeGroupCode maps user-typed codes onto the stored form.
func NormalizeGroupCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
