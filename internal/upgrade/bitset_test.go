package upgrade

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
)

const shards = domain.CurrencyRelicShards

func testUnlocks(hooked *int) []UnlockDefinition {
	return []UnlockDefinition{
		{ID: 0, Key: "adjuster", Currency: shards, Cost: bignum.FromFloat(1e7),
			OnPurchased: func(context.Context) { *hooked++ }},
		{ID: 1, Key: "glyphFilter", Currency: shards, Cost: bignum.FromFloat(2e8)},
		{ID: 4, Key: "infinity", GrantOnly: true},
	}
}

func TestUnlockGroup_Purchase(t *testing.T) {
	ctx := context.Background()
	var cell uint64
	hooked := 0
	ledger := newFakeLedger()
	ledger.set(shards, 1.5e7)
	g := NewUnlockGroup("effarig", &cell, ledger, testUnlocks(&hooked))

	t.Run("insufficient funds is a no-op", func(t *testing.T) {
		assert.False(t, g.Purchase(ctx, 1))
		assert.False(t, g.IsUnlocked(1))
		assert.InDelta(t, 1.5e7, ledger.Balance(shards).Float64(), 1)
	})

	t.Run("success debits and sets bit", func(t *testing.T) {
		require.True(t, g.Purchase(ctx, 0))
		assert.True(t, g.IsUnlocked(0))
		assert.Equal(t, uint64(1), cell)
		assert.InDelta(t, 5e6, ledger.Balance(shards).Float64(), 1)
		assert.Equal(t, 1, hooked)
	})

	t.Run("repeat purchase is idempotent", func(t *testing.T) {
		ledger.set(shards, 1e9)
		assert.False(t, g.Purchase(ctx, 0))
		assert.Equal(t, 1, hooked)
		assert.InDelta(t, 1e9, ledger.Balance(shards).Float64(), 1)
		assert.Equal(t, 1, ledger.debits)
	})
}

func TestUnlockGroup_GrantOnly(t *testing.T) {
	ctx := context.Background()
	var cell uint64
	ledger := newFakeLedger()
	ledger.set(shards, 1e300)
	g := NewUnlockGroup("effarig", &cell, ledger, testUnlocks(new(int)))

	assert.False(t, g.CanAfford(4))
	assert.False(t, g.Purchase(ctx, 4))
	assert.False(t, g.IsUnlocked(4))

	assert.True(t, g.Unlock(ctx, 4))
	assert.True(t, g.IsUnlocked(4))
	assert.False(t, g.Unlock(ctx, 4))
	assert.Equal(t, 0, ledger.debits)
}

func TestUnlockGroup_Suppression(t *testing.T) {
	var cell uint64
	live := newFakeLive()
	g := NewUnlockGroup("effarig", &cell, newFakeLedger(), testUnlocks(new(int)),
		WithSuppression(func(l Live) bool { return l.Flag("disabled") }))

	g.Unlock(context.Background(), 0)
	assert.True(t, g.IsEffectActive(0, live))
	assert.False(t, g.IsEffectActive(1, live))

	live.flags["disabled"] = true
	assert.False(t, g.IsEffectActive(0, live))
	assert.True(t, g.IsUnlocked(0), "suppression never un-purchases")
}

func TestUnlockGroup_Resets(t *testing.T) {
	ctx := context.Background()
	var cell uint64
	g := NewUnlockGroup("effarig", &cell, newFakeLedger(), testUnlocks(new(int)))
	for _, id := range []int{0, 1, 4} {
		g.Unlock(ctx, id)
	}
	assert.Equal(t, 3, g.Count())

	g.ResetMask(Mask(0, 4))
	assert.False(t, g.IsUnlocked(0))
	assert.True(t, g.IsUnlocked(1))
	assert.False(t, g.IsUnlocked(4))

	g.ResetGroup()
	assert.Zero(t, cell)
}

func TestUnlockGroup_Lookup(t *testing.T) {
	var cell uint64
	g := NewUnlockGroup("effarig", &cell, newFakeLedger(), testUnlocks(new(int)))

	id, ok := g.Lookup("glyphFilter")
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	_, ok = g.Lookup("missing")
	assert.False(t, ok)

	defs := g.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, []int{0, 1, 4}, []int{defs[0].ID, defs[1].ID, defs[2].ID})
}

func TestUnlockGroup_UnknownIDPanics(t *testing.T) {
	var cell uint64
	g := NewUnlockGroup("effarig", &cell, newFakeLedger(), testUnlocks(new(int)))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, domain.ErrUnknownUpgrade))
	}()
	g.IsUnlocked(9)
}

func TestUnlockGroup_InvalidDefinitionsPanic(t *testing.T) {
	var cell uint64
	assert.Panics(t, func() {
		NewUnlockGroup("g", &cell, newFakeLedger(), []UnlockDefinition{{ID: 64, Key: "x"}})
	})
	assert.Panics(t, func() {
		NewUnlockGroup("g", &cell, newFakeLedger(), []UnlockDefinition{{ID: 1, Key: "a"}, {ID: 1, Key: "b"}})
	})
	assert.Panics(t, func() {
		NewUnlockGroup("g", &cell, newFakeLedger(), []UnlockDefinition{{ID: 1, Key: "a"}, {ID: 2, Key: "a"}})
	})
	assert.Panics(t, func() { NewUnlockGroup("g", nil, newFakeLedger(), nil) })
}

func TestUnlockGroup_HookPanicKeepsState(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	var cell uint64
	ledger := newFakeLedger()
	ledger.set(shards, 10)
	g := NewUnlockGroup("g", &cell, ledger, []UnlockDefinition{{
		ID: 2, Key: "boom", Currency: shards, Cost: bignum.FromFloat(10),
		OnPurchased: func(context.Context) { panic("listener failed") },
	}})

	assert.NotPanics(t, func() { assert.True(t, g.Purchase(context.Background(), 2)) })
	assert.True(t, g.IsUnlocked(2))
	assert.True(t, ledger.Balance(shards).IsZero())
	assert.Contains(t, buf.String(), LogMsgHookPanicked)
	assert.Contains(t, buf.String(), "listener failed")
}
