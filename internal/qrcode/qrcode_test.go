package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/qrcode"
)

func TestEncode_DataURL(t *testing.T) {
	enc := qrcode.NewEncoder(128)

	payload, err := enc.Encode("http://localhost:8080/Ab3dE9fX")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(payload, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(payload, "data:image/png;base64,"))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestEncode_Deterministic(t *testing.T) {
	enc := qrcode.NewEncoder(0)

	a, err := enc.Encode("http://localhost:8080/Ab3dE9fX")
	require.NoError(t, err)
	b, err := enc.Encode("http://localhost:8080/Ab3dE9fX")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncode_Empty(t *testing.T) {
	enc := qrcode.NewEncoder(128)

	_, err := enc.Encode("")
	assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
}

func TestEncode_TooLong(t *testing.T) {
	enc := qrcode.NewEncoder(128)

	_, err := enc.Encode(strings.Repeat("x", 5000))
	assert.Error(t, err)
}
