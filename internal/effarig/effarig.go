package effarig

import (
	"context"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/event"
	"github.com/osse101/prestige/internal/live"
	"github.com/osse101/prestige/internal/upgrade"
)

// Stages, in progression order.
const (
	StageInfinity  upgrade.Stage = 1
	StageEternity  upgrade.Stage = 2
	StageReality   upgrade.Stage = 3
	StageCompleted upgrade.Stage = 4
)

// stageNames holds display names, title-cased once at init. A cases.Caser is
// stateful and cannot be shared between goroutines.
var stageNames = upgrade.NewStageTable(titled("infinity", "eternity", "reality", "reality")...)

func titled(names ...string) []string {
	caser := cases.Title(language.English)
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = caser.String(n)
	}
	return out
}

// Notify delivers an event. Failures are the notifier's concern.
type Notify func(ctx context.Context, evt event.Event)

// Celestial binds Effarig's unlock group and run flag to one player's progress.
type Celestial struct {
	playerID string
	unlocks  *upgrade.UnlockGroup
	run      *upgrade.Run
	runs     *upgrade.Runs
	gates    []upgrade.Gate
	notify   Notify
}

// New builds the celestial over progress. runs is the registry every
// celestial run of the session belongs to; it may be nil.
func New(playerID string, progress *domain.EffarigProgress, ledger upgrade.Ledger, table []UnlockConfig, runs *upgrade.Runs, notify Notify) *Celestial {
	if notify == nil {
		notify = func(context.Context, event.Event) {}
	}
	if runs == nil {
		runs = &upgrade.Runs{}
	}
	c := &Celestial{playerID: playerID, runs: runs, notify: notify}

	defs := make([]upgrade.UnlockDefinition, 0, len(table))
	for _, cfg := range table {
		defs = append(defs, upgrade.UnlockDefinition{
			ID:          cfg.ID,
			Key:         cfg.Key,
			Currency:    Currency,
			Cost:        cfg.Cost,
			GrantOnly:   cfg.GrantOnly,
			OnPurchased: c.onPurchased(cfg),
		})
	}
	c.unlocks = upgrade.NewUnlockGroup(Name, &progress.UnlockBits, ledger, defs,
		upgrade.WithSuppression(func(l upgrade.Live) bool { return l.Flag(live.FlagEffarigDisabled) }))
	c.gates = upgrade.UnlockGates(c.unlocks, UnlockInfinity, UnlockEternity, UnlockReality)
	c.run = upgrade.NewRun(Name, &progress.Run,
		upgrade.OnStart(func(ctx context.Context) {
			c.notify(ctx, event.NewRunStartedEvent(c.playerID, Name))
			c.notify(ctx, event.NewModifiersRecalculateEvent(c.playerID))
		}),
		upgrade.OnStop(func(ctx context.Context) {
			c.notify(ctx, event.NewRunStoppedEvent(c.playerID, Name))
		}))
	runs.Register(c.run)
	return c
}

func (c *Celestial) onPurchased(cfg UnlockConfig) func(ctx context.Context) {
	return func(ctx context.Context) {
		c.notify(ctx, event.NewUnlockPurchasedEvent(c.playerID, Name, cfg.Key, cfg.Cost.String()))
		if q, ok := unlockQuotes[cfg.ID]; ok {
			c.say(ctx, q)
		}
	}
}

func (c *Celestial) say(ctx context.Context, q Quote) {
	c.notify(ctx, event.NewQuoteEvent(c.playerID, Name, q.Text()))
}

// Unlocks exposes the underlying group.
func (c *Celestial) Unlocks() *upgrade.UnlockGroup { return c.unlocks }

// Purchase buys an unlock with relic shards.
func (c *Celestial) Purchase(ctx context.Context, id int) bool {
	return c.unlocks.Purchase(ctx, id)
}

// Grant awards an unlock for free, announcing the new stage when it advances.
func (c *Celestial) Grant(ctx context.Context, id int) bool {
	before := c.Stage()
	if !c.unlocks.Unlock(ctx, id) {
		return false
	}
	key := c.unlocks.Definition(id).Key
	c.notify(ctx, event.NewUnlockGrantedEvent(c.playerID, Name, key))
	if q, ok := unlockQuotes[id]; ok {
		c.say(ctx, q)
	}
	if after := c.Stage(); after != before {
		c.notify(ctx, event.NewStageEnteredEvent(c.playerID, Name, int(after), StageName(after)))
	}
	return true
}

// IsEffectActive reports whether an unlock currently applies.
func (c *Celestial) IsEffectActive(id int, l upgrade.Live) bool {
	return c.unlocks.IsEffectActive(id, l)
}

// Stage resolves the current stage from the infinity, eternity and reality gates.
func (c *Celestial) Stage() upgrade.Stage {
	return upgrade.ResolveStage(c.gates...)
}

// StageName is the display name of s. The completed stage displays as Reality.
func StageName(s upgrade.Stage) string {
	return stageNames.At(s)
}

// IsRunning reports whether Effarig's Reality is active.
func (c *Celestial) IsRunning() bool { return c.run.IsRunning() }

// StartRun leaves any other celestial run and enters Effarig's.
func (c *Celestial) StartRun(ctx context.Context) bool {
	if c.run.IsRunning() {
		return false
	}
	c.runs.ClearAll(ctx, c.run)
	return c.run.Start(ctx)
}

// StopRun leaves Effarig's Reality.
func (c *Celestial) StopRun(ctx context.Context) bool {
	return c.run.Stop(ctx)
}

// HandleGameEvent reacts to game-loop events. It reports whether anything was published.
func (c *Celestial) HandleGameEvent(ctx context.Context, name string) bool {
	if name == domain.GameEventEffarigTabOpened {
		c.say(ctx, QuoteInitial)
		return true
	}
	if !c.run.IsRunning() {
		return false
	}
	switch name {
	case domain.GameEventBigCrunchBefore:
		c.say(ctx, QuoteCompleteInfinity)
	case domain.GameEventEternityResetBefore:
		c.say(ctx, QuoteCompleteEternity)
	default:
		return false
	}
	return true
}

// EternityCap bounds eternity-derived gains while the run is in its Eternity layer.
func (c *Celestial) EternityCap() (bignum.Value, bool) {
	if c.IsRunning() && c.Stage() == StageEternity {
		return eternityCap, true
	}
	return bignum.Zero, false
}
