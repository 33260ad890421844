package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"shortlink/internal/domain"
	"shortlink/internal/repository/memory"
	"shortlink/internal/repository/storetest"
)

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) storetest.Store {
		return memory.New()
	})
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	link := &domain.ShortLink{Code: "copyme01", Destination: "https://example.org"}
	assert.NoError(t, s.Insert(ctx, link))

	link.Destination = "https://mutated.example"
	got, err := s.FindByCode(ctx, "copyme01")
	assert.NoError(t, err)
	assert.Equal(t, "https://example.org", got.Destination)

	got.ClickCount = 99
	again, _ := s.FindByCode(ctx, "copyme01")
	assert.Zero(t, again.ClickCount)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := memory.New().FindByCode(ctx, "whatever")
	assert.ErrorIs(t, err, context.Canceled)
}
