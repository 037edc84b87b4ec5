package dilation

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/event"
	"github.com/osse101/prestige/internal/live"
	"github.com/osse101/prestige/internal/logger"
	"github.com/osse101/prestige/internal/upgrade"
)

// Wallet is the ledger the tree charges, plus the ability to zero a balance.
type Wallet interface {
	upgrade.Ledger
	Zero(currency domain.Currency)
}

// CapSource supplies the ceiling on eternity-derived gains, when one applies.
type CapSource interface {
	EternityCap() (bignum.Value, bool)
}

// Notify delivers an event.
type Notify func(ctx context.Context, evt event.Event)

// Tree binds the dilation upgrades to one player's progress.
type Tree struct {
	playerID   string
	wallet     Wallet
	rebuyables *upgrade.RebuyableSet
	upgrades   *upgrade.UnlockGroup
	pelleOnly  map[int]bool
	cap        CapSource
	notify     Notify
}

// New builds the tree over progress using table. capSource may be nil.
func New(playerID string, progress *domain.DilationProgress, wallet Wallet, table Table, capSource CapSource, notify Notify) *Tree {
	if notify == nil {
		notify = func(context.Context, event.Event) {}
	}
	if progress.Rebuyables == nil {
		progress.Rebuyables = make(map[int]int)
	}
	t := &Tree{
		playerID:  playerID,
		wallet:    wallet,
		pelleOnly: make(map[int]bool),
		cap:       capSource,
		notify:    notify,
	}

	rebuyables := make([]upgrade.RebuyableDefinition, 0, len(table.Rebuyables))
	for _, cfg := range table.Rebuyables {
		effect, ok := rebuyableEffects[cfg.ID]
		if !ok {
			panic(fmt.Errorf("%w: dilation rebuyable %d has no effect", domain.ErrUnknownUpgrade, cfg.ID))
		}
		if cfg.ID == GalaxyThreshold {
			effect = galaxyThresholdEffect(cfg.PurchaseCap)
		}
		def := upgrade.RebuyableDefinition{
			ID:          cfg.ID,
			Key:         cfg.Key,
			Currency:    Currency,
			InitialCost: cfg.InitialCost,
			Increment:   cfg.Increment,
			PurchaseCap: cfg.PurchaseCap,
			Effect:      effect,
			OnPurchased: t.onRebuyable(cfg.ID, cfg.Key),
		}
		rebuyables = append(rebuyables, def)
		t.pelleOnly[cfg.ID] = cfg.PelleOnly
	}
	t.rebuyables = upgrade.NewRebuyableSet(Name, progress.Rebuyables, wallet, rebuyables)

	upgrades := make([]upgrade.UnlockDefinition, 0, len(table.Upgrades))
	for _, cfg := range table.Upgrades {
		cfg := cfg
		upgrades = append(upgrades, upgrade.UnlockDefinition{
			ID:       cfg.ID,
			Key:      cfg.Key,
			Currency: Currency,
			Cost:     cfg.Cost,
			OnPurchased: func(ctx context.Context) {
				t.notify(ctx, event.NewUnlockPurchasedEvent(t.playerID, Name, cfg.Key, cfg.Cost.String()))
			},
		})
		t.pelleOnly[cfg.ID] = cfg.PelleOnly
	}
	t.upgrades = upgrade.NewUnlockGroup(Name, &progress.Upgrades, wallet, upgrades)
	return t
}

func (t *Tree) onRebuyable(id int, key string) func(ctx context.Context) {
	return func(ctx context.Context) {
		count := t.rebuyables.Count(id)
		t.notify(ctx, event.NewRebuyablePurchasedEvent(t.playerID, Name, key, count, t.rebuyables.Definition(id).CostAt(count-1).String()))
		if id == GalaxyThreshold {
			t.galaxyThresholdReset(ctx)
		}
	}
}

// galaxyThresholdReset zeroes dilated time unless the bypass perk is owned
// outside a doomed reality.
func (t *Tree) galaxyThresholdReset(ctx context.Context) {
	l, ok := upgrade.LiveFromContext(ctx)
	if ok && l.Flag(live.FlagBypassTGReset) && !l.Flag(live.FlagDoomed) {
		return
	}
	t.wallet.Zero(Currency)
	logger.FromContext(ctx).Debug(LogMsgDilatedTimeReset, "player_id", t.playerID)
	t.notify(ctx, event.NewGalaxyThresholdResetEvent(t.playerID))
}

// Rebuyables exposes the rebuyable set.
func (t *Tree) Rebuyables() *upgrade.RebuyableSet { return t.rebuyables }

// Upgrades exposes the one-time upgrade group.
func (t *Tree) Upgrades() *upgrade.UnlockGroup { return t.upgrades }

// IsPelleOnly reports whether id can only be bought in a doomed reality.
func (t *Tree) IsPelleOnly(id int) bool { return t.pelleOnly[id] }

// Lookup resolves a key to its id and whether it is rebuyable.
func (t *Tree) Lookup(key string) (id int, rebuyable bool, ok bool) {
	if id, ok := t.rebuyables.Lookup(key); ok {
		return id, true, true
	}
	if id, ok := t.upgrades.Lookup(key); ok {
		return id, false, true
	}
	return 0, false, false
}

// Purchase buys one level of a rebuyable or a one-time upgrade. Pelle-only
// upgrades fail outside a doomed reality.
func (t *Tree) Purchase(ctx context.Context, key string, l upgrade.Live) (bool, error) {
	id, rebuyable, ok := t.Lookup(key)
	if !ok {
		return false, fmt.Errorf("%w: %s %q", domain.ErrUnknownUpgrade, Name, key)
	}
	if t.pelleOnly[id] && !l.Flag(live.FlagDoomed) {
		return false, nil
	}
	ctx = upgrade.ContextWithLive(ctx, l)
	if rebuyable {
		return t.rebuyables.Purchase(ctx, id), nil
	}
	return t.upgrades.Purchase(ctx, id), nil
}

// Owned reports whether a one-time upgrade has been bought.
func (t *Tree) Owned(id int) bool { return t.upgrades.IsUnlocked(id) }

// RebuyableEffect is the capped effect of a rebuyable at its current count.
func (t *Tree) RebuyableEffect(id int, l upgrade.Live) bignum.Value {
	return t.rebuyables.CappedEffect(id, l)
}

// UpgradeEffect evaluates a one-time upgrade's formula. The second result is
// false for upgrades without a numeric effect.
func (t *Tree) UpgradeEffect(id int, l upgrade.Live) (bignum.Value, bool) {
	t.upgrades.Definition(id)
	return t.upgradeEffect(id, l)
}

// Effects returns every rebuyable effect and the effects of owned one-time upgrades, keyed by upgrade key.
func (t *Tree) Effects(l upgrade.Live) map[string]bignum.Value {
	out := make(map[string]bignum.Value)
	for _, def := range t.rebuyables.Definitions() {
		out[def.Key] = t.rebuyables.CappedEffect(def.ID, l)
	}
	for _, def := range t.upgrades.Definitions() {
		if !t.upgrades.IsUnlocked(def.ID) {
			continue
		}
		if v, ok := t.upgradeEffect(def.ID, l); ok {
			out[def.Key] = v
		}
		if def.ID == ReplicantiToDT {
			boost := ReplicantiDTBoost(l)
			out[def.Key+".replicanti"] = bignum.FromFloat(boost.Replicanti)
			out[def.Key+".dt"] = bignum.FromFloat(boost.DT)
		}
	}
	return out
}

// Keys lists every upgrade key in id order.
func (t *Tree) Keys() []string {
	type entry struct {
		id  int
		key string
	}
	var entries []entry
	for _, def := range t.rebuyables.Definitions() {
		entries = append(entries, entry{def.ID, def.Key})
	}
	for _, def := range t.upgrades.Definitions() {
		entries = append(entries, entry{def.ID, def.Key})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].id < entries[j].id })
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	return keys
}

// Reset zeroes every rebuyable and clears the one-time upgrades 5 through 13.
// Pelle-only one-time upgrades are kept.
func (t *Tree) Reset(ctx context.Context) {
	t.rebuyables.ResetAll()
	t.upgrades.ResetMask(resetMask)
	t.notify(ctx, event.NewProgressResetEvent(t.playerID, Name, "dilation reset"))
}
