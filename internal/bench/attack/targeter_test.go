package attack_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vegeta "github.com/tsenart/vegeta/v12/lib"

	"shortlink/internal/bench/attack"
	"shortlink/internal/domain"
)

func TestCreateTargeter(t *testing.T) {
	tr := attack.CreateTargeter("http://localhost:8080", "bypass")

	var first, second vegeta.Target
	require.NoError(t, tr(&first))
	require.NoError(t, tr(&second))

	assert.Equal(t, http.MethodPost, first.Method)
	assert.Equal(t, "http://localhost:8080/api/create", first.URL)
	assert.Equal(t, "bypass", first.Header.Get("X-Rate-Limit-Bypass"))
	assert.Equal(t, "application/json", first.Header.Get("Content-Type"))

	var a, b domain.CreateLinkRequest
	require.NoError(t, json.Unmarshal(first.Body, &a))
	require.NoError(t, json.Unmarshal(second.Body, &b))
	assert.NotEqual(t, a.Destination, b.Destination)
}

func TestRedirectAndAnalyticsTargeters(t *testing.T) {
	codes := []string{"Ab3dE9fX", "Zz9Zz9Zz"}

	var tgt vegeta.Target
	require.NoError(t, attack.RedirectTargeter("http://h", codes, "")(&tgt))
	assert.Equal(t, http.MethodGet, tgt.Method)
	assert.Contains(t, []string{"http://h/Ab3dE9fX", "http://h/Zz9Zz9Zz"}, tgt.URL)
	assert.Empty(t, tgt.Header.Get("X-Rate-Limit-Bypass"))

	require.NoError(t, attack.AnalyticsTargeter("http://h", codes, "")(&tgt))
	assert.True(t, strings.HasPrefix(tgt.URL, "http://h/api/analytics/"))
}

func TestMixedTargeter_Ratio(t *testing.T) {
	t.Run("all creates", func(t *testing.T) {
		tr := attack.MixedTargeter("http://h", []string{"Ab3dE9fX"}, 1, "")
		var tgt vegeta.Target
		require.NoError(t, tr(&tgt))
		assert.Equal(t, http.MethodPost, tgt.Method)
	})

	t.Run("all redirects", func(t *testing.T) {
		tr := attack.MixedTargeter("http://h", []string{"Ab3dE9fX"}, 0, "")
		var tgt vegeta.Target
		require.NoError(t, tr(&tgt))
		assert.Equal(t, "http://h/Ab3dE9fX", tgt.URL)
	})
}

func TestTargeter_Selection(t *testing.T) {
	_, err := attack.Targeter(&attack.Config{Type: attack.TypeRedirect})
	require.ErrorIs(t, err, attack.ErrNoCodes)

	_, err = attack.Targeter(&attack.Config{Type: "flood"})
	require.ErrorContains(t, err, "unknown attack type")

	tr, err := attack.Targeter(&attack.Config{Type: attack.TypeCreate, BaseURL: "http://h"})
	require.NoError(t, err)
	assert.NotNil(t, tr)

	assert.False(t, attack.NeedsSeed(attack.TypeCreate))
	assert.True(t, attack.NeedsSeed(attack.TypeAnalytics))
}
