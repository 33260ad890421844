// Package qrcode renders short URLs as PNG QR codes embedded in data URLs.
package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

const dataURLPrefix = "data:image/png;base64,"

var ErrEmptyContent = errors.New("qr content is empty")

type Encoder struct {
	size  int
	level qr.RecoveryLevel
}

func NewEncoder(size int) *Encoder {
	if size <= 0 {
		size = 256
	}
	return &Encoder{size: size, level: qr.Medium}
}

func (e *Encoder) Encode(content string) (string, error) {
	if content == "" {
		return "", ErrEmptyContent
	}

	png, err := qr.Encode(content, e.level, e.size)
	if err != nil {
		return "", fmt.Errorf("failed to encode qr code: %w", err)
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}
