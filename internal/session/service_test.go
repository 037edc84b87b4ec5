package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/content"
	"github.com/osse101/prestige/internal/database/memory"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/event"
	"github.com/osse101/prestige/internal/live"
)

// recordingBus captures every published event.
type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
	fail   bool
}

func (b *recordingBus) Publish(_ context.Context, evt event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
	if b.fail {
		return errors.New("handler failed")
	}
	return nil
}

func (b *recordingBus) Subscribe(event.Type, event.Handler) {}

func (b *recordingBus) types() []event.Type {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Type, len(b.events))
	for i, e := range b.events {
		out[i] = e.Type
	}
	return out
}

func (b *recordingBus) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = nil
}

// flakyStore fails Save on demand.
type flakyStore struct {
	*memory.Store
	failSave bool
}

func (s *flakyStore) Save(ctx context.Context, p *domain.Progress) error {
	if s.failSave {
		return errors.New("disk full")
	}
	return s.Store.Save(ctx, p)
}

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func setup(t *testing.T) (Service, *flakyStore, *recordingBus) {
	t.Helper()
	store := &flakyStore{Store: memory.NewStore()}
	bus := &recordingBus{}
	svc := NewService(store, bus, content.Default(), Options{
		CacheSize: 8,
		CacheTTL:  time.Minute,
		Now:       func() time.Time { return fixedNow },
	})
	_, err := svc.CreatePlayer(context.Background(), "p1")
	require.NoError(t, err)
	return svc, store, bus
}

func credit(t *testing.T, svc Service, c domain.Currency, amount float64) {
	t.Helper()
	_, err := svc.Credit(context.Background(), "p1", c, bignum.FromFloat(amount))
	require.NoError(t, err)
}

func TestCreatePlayer(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	_, err := svc.CreatePlayer(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrPlayerExists)

	st, err := svc.CreatePlayer(ctx, "")
	require.NoError(t, err)
	assert.Len(t, st.PlayerID, 36)
	assert.Equal(t, 1, st.Effarig.Stage)
	assert.Equal(t, "Infinity", st.Effarig.StageName)
	assert.Len(t, st.Effarig.Unlocks, 7)
	assert.Len(t, st.Dilation.Rebuyables, 7)
	assert.Len(t, st.Dilation.Upgrades, 11)

	_, err = svc.GetState(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	_, err = svc.GetState(ctx, " ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPurchaseEffarigUnlock(t *testing.T) {
	svc, store, bus := setup(t)
	ctx := context.Background()

	res, err := svc.PurchaseEffarigUnlock(ctx, "p1", "adjuster")
	require.NoError(t, err)
	assert.False(t, res.Purchased, "no relic shards yet")
	assert.Empty(t, bus.types())

	credit(t, svc, domain.CurrencyRelicShards, 1.5e7)
	res, err = svc.PurchaseEffarigUnlock(ctx, "p1", "adjuster")
	require.NoError(t, err)
	assert.True(t, res.Purchased)
	assert.True(t, res.State.Effarig.Unlocks[0].Unlocked)
	assert.InDelta(t, 5e6, res.State.Wallet[domain.CurrencyRelicShards].Float64(), 1e-3)
	assert.Equal(t, []event.Type{event.UnlockPurchased, event.Quote}, bus.types())

	stored, err := store.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stored.Effarig.UnlockBits)
	assert.Equal(t, fixedNow, stored.UpdatedAt)

	res, err = svc.PurchaseEffarigUnlock(ctx, "p1", "adjuster")
	require.NoError(t, err)
	assert.False(t, res.Purchased, "idempotent")

	_, err = svc.PurchaseEffarigUnlock(ctx, "p1", "nope")
	assert.ErrorIs(t, err, domain.ErrUnknownUpgrade)

	_, err = svc.PurchaseEffarigUnlock(ctx, "p1", "reality")
	assert.ErrorIs(t, err, domain.ErrNotPurchasable)
}

func TestGrantAdvancesStage(t *testing.T) {
	svc, _, bus := setup(t)
	ctx := context.Background()

	res, err := svc.GrantEffarigUnlock(ctx, "p1", "infinity")
	require.NoError(t, err)
	assert.True(t, res.Purchased)
	assert.Equal(t, 2, res.State.Effarig.Stage)
	assert.Equal(t, 1500, res.State.Effarig.GlyphLevelCap)
	assert.Contains(t, bus.types(), event.StageEntered)

	bus.reset()
	res, err = svc.GrantEffarigUnlock(ctx, "p1", "infinity")
	require.NoError(t, err)
	assert.False(t, res.Purchased)
	assert.Empty(t, bus.types())
}

func TestEffarigRun(t *testing.T) {
	svc, _, bus := setup(t)
	ctx := context.Background()

	_, err := svc.StartEffarigRun(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrLocked)

	_, err = svc.GrantEffarigUnlock(ctx, "p1", "run")
	require.NoError(t, err)
	bus.reset()

	res, err := svc.StartEffarigRun(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.True(t, res.State.Effarig.Running)
	assert.Equal(t, []event.Type{event.RunStarted, event.ModifiersRecalculate}, bus.types())

	res, err = svc.StartEffarigRun(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, res.Changed)

	reacted, err := svc.HandleGameEvent(ctx, "p1", domain.GameEventBigCrunchBefore)
	require.NoError(t, err)
	assert.True(t, reacted)

	reacted, err = svc.HandleGameEvent(ctx, "p1", "tick")
	require.NoError(t, err)
	assert.False(t, reacted)

	res, err = svc.StopEffarigRun(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.False(t, res.State.Effarig.Running)
}

func TestPurchaseDilationUpgrade(t *testing.T) {
	svc, _, bus := setup(t)
	ctx := context.Background()
	credit(t, svc, domain.CurrencyDilatedTime, 1e4)

	res, err := svc.PurchaseDilationUpgrade(ctx, "p1", "dtGain", nil)
	require.NoError(t, err)
	assert.True(t, res.Purchased)
	assert.Equal(t, 1, res.State.Dilation.Rebuyables[0].Count)
	assert.True(t, res.State.Dilation.Rebuyables[0].Cost.Eq(bignum.FromFloat(1e5)))
	assert.Empty(t, res.State.Wallet)

	credit(t, svc, domain.CurrencyDilatedTime, 1e5)
	res, err = svc.PurchaseDilationUpgrade(ctx, "p1", "dtGain", nil)
	require.NoError(t, err)
	assert.True(t, res.Purchased)
	assert.Empty(t, res.State.Wallet)

	res, err = svc.PurchaseDilationUpgrade(ctx, "p1", "dtGain", nil)
	require.NoError(t, err)
	assert.False(t, res.Purchased)
	assert.Equal(t, 2, res.State.Dilation.Rebuyables[0].Count)

	_, err = svc.PurchaseDilationUpgrade(ctx, "p1", "unknown", nil)
	assert.ErrorIs(t, err, domain.ErrUnknownUpgrade)

	assert.Equal(t, []event.Type{event.RebuyablePurchased, event.RebuyablePurchased}, bus.types())
}

func TestPurchaseDilationUpgrade_PelleOnlyNeedsDoom(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()
	credit(t, svc, domain.CurrencyDilatedTime, 1e20)

	res, err := svc.PurchaseDilationUpgrade(ctx, "p1", "dtGainPelle", nil)
	require.NoError(t, err)
	assert.False(t, res.Purchased)

	doomed := &live.Snapshot{Flags: map[string]bool{live.FlagDoomed: true}}
	res, err = svc.PurchaseDilationUpgrade(ctx, "p1", "dtGainPelle", doomed)
	require.NoError(t, err)
	assert.True(t, res.Purchased)
}

func TestGalaxyThresholdResetsDilatedTime(t *testing.T) {
	svc, _, bus := setup(t)
	ctx := context.Background()
	credit(t, svc, domain.CurrencyDilatedTime, 5e6)

	res, err := svc.PurchaseDilationUpgrade(ctx, "p1", "galaxyThreshold", nil)
	require.NoError(t, err)
	assert.True(t, res.Purchased)
	assert.Empty(t, res.State.Wallet)
	assert.Contains(t, bus.types(), event.GalaxyThresholdReset)

	credit(t, svc, domain.CurrencyDilatedTime, 5e8)
	bypass := &live.Snapshot{Flags: map[string]bool{live.FlagBypassTGReset: true}}
	res, err = svc.PurchaseDilationUpgrade(ctx, "p1", "galaxyThreshold", bypass)
	require.NoError(t, err)
	assert.True(t, res.Purchased)
	assert.InDelta(t, 4e8, res.State.Wallet[domain.CurrencyDilatedTime].Float64(), 1e-3)
}

func TestResetDilation(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()
	credit(t, svc, domain.CurrencyDilatedTime, 1e60)

	for _, key := range []string{"dtGain", "doubleGalaxies", "ttGenerator"} {
		res, err := svc.PurchaseDilationUpgrade(ctx, "p1", key, nil)
		require.NoError(t, err)
		require.True(t, res.Purchased, key)
	}
	doomed := &live.Snapshot{Flags: map[string]bool{live.FlagDoomed: true}}
	res, err := svc.PurchaseDilationUpgrade(ctx, "p1", "flatDilationMult", doomed)
	require.NoError(t, err)
	require.True(t, res.Purchased)

	st, err := svc.ResetDilation(ctx, "p1")
	require.NoError(t, err)
	for _, r := range st.Dilation.Rebuyables {
		assert.Zero(t, r.Count, r.Key)
	}
	for _, u := range st.Dilation.Upgrades {
		assert.Equal(t, u.Key == "flatDilationMult", u.Unlocked, u.Key)
	}
}

func TestEffects(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()
	credit(t, svc, domain.CurrencyRelicShards, 1e12)

	_, err := svc.PurchaseEffarigUnlock(ctx, "p1", "run")
	require.NoError(t, err)

	eff, err := svc.Effects(ctx, "p1", nil)
	require.NoError(t, err)
	assert.True(t, eff.Effarig.Active["run"])
	assert.False(t, eff.Effarig.Active["adjuster"])
	assert.Nil(t, eff.Effarig.Run)
	assert.Contains(t, eff.Dilation, "dtGain")

	disabled := &live.Snapshot{Flags: map[string]bool{live.FlagEffarigDisabled: true}}
	eff, err = svc.Effects(ctx, "p1", disabled)
	require.NoError(t, err)
	assert.False(t, eff.Effarig.Active["run"])

	_, err = svc.StartEffarigRun(ctx, "p1")
	require.NoError(t, err)
	eff, err = svc.Effects(ctx, "p1", &live.Snapshot{})
	require.NoError(t, err)
	require.NotNil(t, eff.Effarig.Run)
	assert.Len(t, eff.Effarig.Challenges, 6)
	assert.Nil(t, eff.Effarig.EternityCap, "stage is still Infinity")
}

func TestSaveFailureDropsEventsAndChanges(t *testing.T) {
	svc, store, bus := setup(t)
	ctx := context.Background()
	credit(t, svc, domain.CurrencyRelicShards, 1e8)

	store.failSave = true
	_, err := svc.PurchaseEffarigUnlock(ctx, "p1", "adjuster")
	require.Error(t, err)
	assert.Empty(t, bus.types())

	store.failSave = false
	st, err := svc.GetState(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, st.Effarig.Unlocks[0].Unlocked)
	assert.True(t, st.Wallet[domain.CurrencyRelicShards].Eq(bignum.FromFloat(1e8)))
}

func TestPublishFailureKeepsState(t *testing.T) {
	svc, _, bus := setup(t)
	ctx := context.Background()
	credit(t, svc, domain.CurrencyRelicShards, 1e8)

	bus.fail = true
	res, err := svc.PurchaseEffarigUnlock(ctx, "p1", "adjuster")
	require.NoError(t, err)
	assert.True(t, res.Purchased)
	assert.NotEmpty(t, bus.types())
}

func TestConcurrentPurchasesChargeOnce(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()
	credit(t, svc, domain.CurrencyRelicShards, 1e7)

	var wg sync.WaitGroup
	results := make(chan bool, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.PurchaseEffarigUnlock(ctx, "p1", "adjuster")
			if err == nil {
				results <- res.Purchased
			}
		}()
	}
	wg.Wait()
	close(results)

	purchased := 0
	for ok := range results {
		if ok {
			purchased++
		}
	}
	assert.Equal(t, 1, purchased)

	st, err := svc.GetState(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, st.Wallet)
}

func TestDeletePlayer(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	require.NoError(t, svc.DeletePlayer(ctx, "p1"))
	_, err := svc.GetState(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	assert.NoError(t, svc.Ready(ctx))
}

func TestDeletePlayer_KeepsPlayerLock(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()
	locks := svc.(*service).locks
	before := locks.GetLock("p1")

	require.NoError(t, svc.DeletePlayer(ctx, "p1"))
	assert.Same(t, before, locks.GetLock("p1"))

	_, err := svc.CreatePlayer(ctx, "p1")
	require.NoError(t, err)
	credit(t, svc, domain.CurrencyRelicShards, 1e7)

	var wg sync.WaitGroup
	var bought int32
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.PurchaseEffarigUnlock(ctx, "p1", "adjuster")
			if err == nil && res.Purchased {
				atomic.AddInt32(&bought, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), bought)
	st, err := svc.GetState(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, st.Wallet[domain.CurrencyRelicShards].IsZero())
}
