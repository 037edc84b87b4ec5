package upgrade

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
)

const dt = domain.CurrencyDilatedTime

func testRebuyables() []RebuyableDefinition {
	return []RebuyableDefinition{
		{
			ID: 1, Key: "dtGain", Currency: dt,
			InitialCost: bignum.FromFloat(1e4), Increment: bignum.FromFloat(10),
			Effect: func(count int, _ Live) bignum.Value { return bignum.FromFloat(2).Pow(float64(count)) },
		},
		{
			ID: 2, Key: "galaxyThreshold", Currency: dt,
			InitialCost: bignum.FromFloat(1e6), Increment: bignum.FromFloat(100), PurchaseCap: 2,
			Effect: func(count int, _ Live) bignum.Value { return bignum.FromFloat(0.8).Pow(float64(count)) },
		},
		{
			ID: 3, Key: "capped", Currency: dt,
			InitialCost: bignum.One, Increment: bignum.Ten,
			Effect: func(count int, l Live) bignum.Value { return bignum.FromInt(int64(count)).Mul(l.Amount(dt)) },
			Cap: func(l Live) (bignum.Value, bool) {
				if l.Flag("uncapped") {
					return bignum.Zero, false
				}
				return bignum.FromFloat(50), true
			},
		},
		{
			ID: 4, Key: "flat", Currency: dt,
			Cost:   func(count int) bignum.Value { return bignum.FromInt(int64(100 + count)) },
			Effect: func(count int, _ Live) bignum.Value { return bignum.FromInt(int64(count)) },
		},
	}
}

func TestRebuyableSet_GeometricScenario(t *testing.T) {
	ctx := context.Background()
	counts := map[int]int{}
	ledger := newFakeLedger()
	ledger.set(dt, 1.5e4)
	s := NewRebuyableSet("dilation", counts, ledger, testRebuyables())

	require.True(t, s.Cost(1).Eq(bignum.FromFloat(1e4)))
	require.True(t, s.Purchase(ctx, 1))
	assert.Equal(t, 1, s.Count(1))
	assert.InDelta(t, 5e3, ledger.Balance(dt).Float64(), 1e-6)
	assert.True(t, s.Cost(1).Eq(bignum.FromFloat(1e5)), "got %s", s.Cost(1))

	assert.False(t, s.Purchase(ctx, 1))
	assert.Equal(t, 1, s.Count(1))
	assert.InDelta(t, 5e3, ledger.Balance(dt).Float64(), 1e-6)
}

func TestRebuyableSet_CostStrictlyIncreasing(t *testing.T) {
	ctx := context.Background()
	counts := map[int]int{}
	ledger := newFakeLedger()
	ledger.balances[dt] = bignum.Pow10(200)
	s := NewRebuyableSet("dilation", counts, ledger, testRebuyables())

	prev := s.Cost(1)
	for i := 0; i < 25; i++ {
		before := ledger.Balance(dt)
		cost := s.Cost(1)
		require.True(t, s.Purchase(ctx, 1))
		assert.Equal(t, i+1, s.Count(1))
		assert.True(t, before.Sub(cost).Eq(ledger.Balance(dt)))
		if i > 0 {
			assert.True(t, cost.Gt(prev), "cost %d did not increase", i)
		}
		prev = cost
	}
}

func TestRebuyableSet_CapIsTerminal(t *testing.T) {
	ctx := context.Background()
	counts := map[int]int{}
	ledger := newFakeLedger()
	ledger.balances[dt] = bignum.Pow10(100)
	s := NewRebuyableSet("dilation", counts, ledger, testRebuyables())

	assert.True(t, s.Purchase(ctx, 2))
	assert.True(t, s.Purchase(ctx, 2))
	assert.True(t, s.ReachedCap(2))
	assert.False(t, s.CanAfford(2))

	before := ledger.Balance(dt)
	for i := 0; i < 5; i++ {
		assert.False(t, s.Purchase(ctx, 2))
	}
	assert.Equal(t, 2, s.Count(2))
	assert.True(t, before.Eq(ledger.Balance(dt)))
}

func TestRebuyableSet_EffectIsRecomputed(t *testing.T) {
	counts := map[int]int{3: 2}
	live := newFakeLive()
	s := NewRebuyableSet("dilation", counts, newFakeLedger(), testRebuyables())

	live.amounts[dt] = bignum.FromFloat(10)
	assert.InDelta(t, 20, s.Effect(3, live).Float64(), 1e-9)
	live.amounts[dt] = bignum.FromFloat(100)
	assert.InDelta(t, 200, s.Effect(3, live).Float64(), 1e-9)

	assert.InDelta(t, 50, s.CappedEffect(3, live).Float64(), 1e-9)
	live.flags["uncapped"] = true
	assert.InDelta(t, 200, s.CappedEffect(3, live).Float64(), 1e-9)

	assert.InDelta(t, 1, s.CappedEffect(1, live).Float64(), 1e-9)
}

func TestRebuyableSet_CostOverride(t *testing.T) {
	counts := map[int]int{4: 3}
	s := NewRebuyableSet("dilation", counts, newFakeLedger(), testRebuyables())
	assert.InDelta(t, 103, s.Cost(4).Float64(), 1e-9)
	assert.False(t, s.ReachedCap(4))
	assert.Equal(t, Unbounded, s.Definition(4).Limit())
}

func TestRebuyableSet_Reset(t *testing.T) {
	counts := map[int]int{1: 4, 2: 1, 3: 7}
	s := NewRebuyableSet("dilation", counts, newFakeLedger(), testRebuyables())

	s.Reset(1)
	assert.Equal(t, 0, s.Count(1))
	assert.Equal(t, 1, s.Count(2))
	assert.True(t, s.Cost(1).Eq(bignum.FromFloat(1e4)))

	s.ResetAll()
	for _, def := range s.Definitions() {
		assert.Equal(t, 0, s.Count(def.ID))
	}
}

func TestRebuyableSet_UnknownIDPanics(t *testing.T) {
	s := NewRebuyableSet("dilation", map[int]int{}, newFakeLedger(), testRebuyables())
	assert.Panics(t, func() { s.Cost(99) })
	assert.Panics(t, func() { s.Purchase(context.Background(), 99) })
	assert.Panics(t, func() { s.Reset(99) })
}

func TestRebuyableSet_Lookup(t *testing.T) {
	s := NewRebuyableSet("dilation", map[int]int{}, newFakeLedger(), testRebuyables())
	id, ok := s.Lookup("galaxyThreshold")
	assert.True(t, ok)
	assert.Equal(t, 2, id)
	_, ok = s.Lookup("nope")
	assert.False(t, ok)
}

func TestRebuyableSet_HookRunsAfterCommit(t *testing.T) {
	counts := map[int]int{}
	ledger := newFakeLedger()
	ledger.set(dt, 1)
	var seen int
	s := NewRebuyableSet("dilation", counts, ledger, []RebuyableDefinition{{
		ID: 9, Key: "k", Currency: dt, InitialCost: bignum.One, Increment: bignum.Ten,
		Effect:      func(int, Live) bignum.Value { return bignum.Zero },
		OnPurchased: func(context.Context) { seen = counts[9] },
	}})
	require.True(t, s.Purchase(context.Background(), 9))
	assert.Equal(t, 1, seen)
}
