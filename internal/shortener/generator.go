package shortener

import (
	"crypto/rand"
	"fmt"
	"io"
)

const (
	CodeLength = 8

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// Largest multiple of len(alphabet) that fits in a byte. Bytes at or above
	// it are discarded so every symbol is equally likely.
	rejectAbove = 256 - 256%len(alphabet)
)

type Generator struct {
	src io.Reader
}

func NewGenerator() *Generator {
	return &Generator{src: rand.Reader}
}

// NewGeneratorFrom uses src as the entropy source instead of crypto/rand.
func NewGeneratorFrom(src io.Reader) *Generator {
	return &Generator{src: src}
}

func (g *Generator) Generate() (string, error) {
	code := make([]byte, 0, CodeLength)
	buf := make([]byte, CodeLength*2)

	for len(code) < CodeLength {
		if _, err := io.ReadFull(g.src, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= rejectAbove {
				continue
			}
			code = append(code, alphabet[int(b)%len(alphabet)])
			if len(code) == CodeLength {
				break
			}
		}
	}

	return string(code), nil
}

// IsValidCode reports whether code has the shape of a short code. It accepts
// the URL-safe alphabet, a superset of what Generate produces.
func IsValidCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}
