package shortener_test

import (
	"bytes"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/shortener"
)

var generatedPattern = regexp.MustCompile(`^[A-Za-z0-9]{8}$`)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	g := shortener.NewGenerator()

	for range 1000 {
		code, err := g.Generate()
		require.NoError(t, err)
		assert.Regexp(t, generatedPattern, code)
		assert.True(t, shortener.IsValidCode(code))
	}
}

func TestGenerate_Unique(t *testing.T) {
	g := shortener.NewGenerator()

	const n = 10_000
	seen := make(map[string]struct{}, n)
	for range n {
		code, err := g.Generate()
		require.NoError(t, err)
		_, dup := seen[code]
		require.False(t, dup, "duplicate code %q", code)
		seen[code] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestGenerate_RejectsBiasedBytes(t *testing.T) {
	// 248..255 are discarded, 0 maps to 'A', 61 maps to '9'.
	src := bytes.NewReader([]byte{
		255, 248, 0, 61, 0, 61, 0, 61, 0, 61, 0, 0, 0, 0, 0, 0,
	})
	g := shortener.NewGeneratorFrom(src)

	code, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, "A9A9A9A9", code)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerate_SourceError(t *testing.T) {
	g := shortener.NewGeneratorFrom(failingReader{})

	code, err := g.Generate()
	require.Error(t, err)
	assert.Empty(t, code)
}

func TestIsValidCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"alphanumeric", "Ab3dE9fX", true},
		{"url safe symbols", "ab_cd-12", true},
		{"too short", "short1", false},
		{"seven chars", "abcdefg", false},
		{"too long", "abcdefghi", false},
		{"disallowed symbols", "########", false},
		{"slash", "abc/defg", false},
		{"empty", "", false},
		{"non ascii", "abcdefé", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shortener.IsValidCode(tt.code))
		})
	}
}
