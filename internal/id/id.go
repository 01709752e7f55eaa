package id

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
const suffixLen = 12

// Unique returns a new file ID for blob uploads: hex seconds since epoch plus
// a random suffix. IDs sort roughly by creation time, the same convention the
// hosted storage SDK uses for its generated IDs.
func Unique() (string, error) {
	b := make([]byte, suffixLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating id: %w", err)
	}
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return fmt.Sprintf("%x%s", time.Now().Unix(), string(b)), nil
}

// Valid reports whether s looks like a generated file ID: non-empty, at most
// 36 characters, and drawn from the lowercase alphanumeric charset.
func Valid(s string) bool {
	if s == "" || len(s) > 36 {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune(charset, c) {
			return false
		}
	}
	return true
}
