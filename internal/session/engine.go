package session

import (
	"context"

	"github.com/osse101/prestige/internal/content"
	"github.com/osse101/prestige/internal/dilation"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/effarig"
	"github.com/osse101/prestige/internal/event"
	"github.com/osse101/prestige/internal/ledger"
	"github.com/osse101/prestige/internal/live"
	"github.com/osse101/prestige/internal/upgrade"
)

// engine is the state tree of one player for the duration of one operation.
// Events raised by hooks are held until the progress has been saved.
type engine struct {
	progress *domain.Progress
	wallet   *ledger.Wallet
	runs     *upgrade.Runs
	effarig  *effarig.Celestial
	dilation *dilation.Tree
	pending  []pendingEvent
}

type pendingEvent struct {
	ctx context.Context
	evt event.Event
}

func newEngine(p *domain.Progress, catalog content.Catalog) *engine {
	e := &engine{
		progress: p,
		wallet:   ledger.NewWallet(p),
		runs:     &upgrade.Runs{},
	}
	e.effarig = effarig.New(p.PlayerID, &p.Effarig, e.wallet, catalog.Effarig, e.runs, e.hold)
	e.dilation = dilation.New(p.PlayerID, &p.Dilation, e.wallet, catalog.Dilation, e.effarig, e.hold)
	return e
}

func (e *engine) hold(ctx context.Context, evt event.Event) {
	e.pending = append(e.pending, pendingEvent{ctx: ctx, evt: evt})
}

// view layers the player's wallet under the caller's snapshot and defaults the
// last-update time to the stored one.
func (e *engine) view(snap *live.Snapshot) *live.Snapshot {
	var base live.Snapshot
	if snap != nil {
		base = *snap
	}
	if base.Last.IsZero() {
		base.Last = e.progress.LastUpdate
	}
	return base.WithBalances(e.wallet)
}
