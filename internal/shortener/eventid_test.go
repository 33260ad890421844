package shortener_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/shortener"
)

func TestEventIDs_MinLength(t *testing.T) {
	ids, err := shortener.NewEventIDs()
	require.NoError(t, err)

	id, err := ids.Encode(0)
	require.NoError(t, err)
	assert.Len(t, id, 6)
}

func TestEventIDs_StableAndDistinct(t *testing.T) {
	ids, err := shortener.NewEventIDs()
	require.NoError(t, err)

	seen := make(map[string]int64)
	for _, in := range []int64{1, 2, 100, 1000, 10000, 100000, 1000000} {
		first, err := ids.Encode(in)
		require.NoError(t, err)
		again, err := ids.Encode(in)
		require.NoError(t, err)

		assert.Equal(t, first, again)
		_, dup := seen[first]
		assert.False(t, dup, "id %d collides with %d", in, seen[first])
		seen[first] = in
	}
}

func TestEventIDs_LargeID(t *testing.T) {
	ids, err := shortener.NewEventIDs()
	require.NoError(t, err)

	id, err := ids.Encode(1_000_000_000)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(id), 6)
	assert.Regexp(t, regexp.MustCompile(`^[a-zA-Z0-9]+$`), id)
}
