package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
)

func TestStore_CopiesOnReadAndWrite(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	p := domain.NewProgress("p1", time.Now())
	p.Dilation.Rebuyables[1] = 3
	require.NoError(t, s.Create(ctx, p))

	p.Dilation.Rebuyables[1] = 99
	got, err := s.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Dilation.Rebuyables[1])

	got.Wallet[domain.CurrencyMatter] = bignum.Ten
	again, err := s.Load(ctx, "p1")
	require.NoError(t, err)
	assert.NotContains(t, again.Wallet, domain.CurrencyMatter)
}

func TestStore_Errors(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.Load(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	assert.ErrorIs(t, s.Save(ctx, domain.NewProgress("nope", time.Now())), domain.ErrPlayerNotFound)

	p := domain.NewProgress("p", time.Now())
	require.NoError(t, s.Create(ctx, p))
	assert.ErrorIs(t, s.Create(ctx, p), domain.ErrPlayerExists)
	require.NoError(t, s.Save(ctx, p))

	require.NoError(t, s.Delete(ctx, "p"))
	_, err = s.Load(ctx, "p")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	assert.NoError(t, s.Ping(ctx))
}
