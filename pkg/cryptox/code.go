package cryptox

import (
	"crypto/rand"
	"fmt"
)

// CodeAlphabet is the character set used for invite codes. Uppercase
// letters and digits keep codes easy to read aloud and safe to embed in
// URLs and emails.
const CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCode creates a cryptographically random code of the given length
// drawn uniformly from CodeAlphabet. Returns an error if the random number
// generator fails.
//
// Uniformity is preserved with rejection sampling: random bytes that would
// bias the modulo reduction are discarded rather than folded in.
func GenerateCode(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("code length must be positive, got %d", length)
	}

	// Largest multiple of len(CodeAlphabet) that fits in a byte.
	max := byte(256 - (256 % len(CodeAlphabet)))

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate random code: %w", err)
		}
		for _, b := range buf {
			if b >= max {
				continue
			}
			out = append(out, CodeAlphabet[int(b)%len(CodeAlphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}

// MustGenerateCode is like GenerateCode but panics on error.
// Use this only in contexts where failure is unrecoverable.
func MustGenerateCode(length int) string {
	code, err := GenerateCode(length)
	if err != nil {
		panic(fmt.Sprintf("cryptox: failed to generate code: %v", err))
	}
	return code
}
