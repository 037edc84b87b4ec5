// Package session runs progression operations for one player at a time:
// load progress, build the engine over it, apply the operation, save, then
// publish the events the operation raised.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/concurrency"
	"github.com/osse101/prestige/internal/content"
	"github.com/osse101/prestige/internal/dilation"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/effarig"
	"github.com/osse101/prestige/internal/event"
	"github.com/osse101/prestige/internal/live"
	"github.com/osse101/prestige/internal/logger"
	"github.com/osse101/prestige/internal/metrics"
	"github.com/osse101/prestige/internal/repository"
)

// Service defines the progression operations exposed to transports
type Service interface {
	CreatePlayer(ctx context.Context, playerID string) (*State, error)
	DeletePlayer(ctx context.Context, playerID string) error
	GetState(ctx context.Context, playerID string) (*State, error)
	Credit(ctx context.Context, playerID string, currency domain.Currency, amount bignum.Value) (*State, error)

	PurchaseEffarigUnlock(ctx context.Context, playerID, key string) (*PurchaseResult, error)
	GrantEffarigUnlock(ctx context.Context, playerID, key string) (*PurchaseResult, error)
	StartEffarigRun(ctx context.Context, playerID string) (*RunResult, error)
	StopEffarigRun(ctx context.Context, playerID string) (*RunResult, error)
	HandleGameEvent(ctx context.Context, playerID, name string) (bool, error)

	PurchaseDilationUpgrade(ctx context.Context, playerID, key string, snap *live.Snapshot) (*PurchaseResult, error)
	ResetDilation(ctx context.Context, playerID string) (*State, error)

	Effects(ctx context.Context, playerID string, snap *live.Snapshot) (*Effects, error)
	Ready(ctx context.Context) error
}

// Options tune the session cache. Zero values pick defaults.
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
	Now       func() time.Time
}

type service struct {
	store   repository.Progress
	bus     event.Bus
	catalog content.Catalog
	locks   *concurrency.LockManager
	cache   *progressCache
	now     func() time.Time
}

// NewService creates a new session service
func NewService(store repository.Progress, bus event.Bus, catalog content.Catalog, opts Options) Service {
	if opts.CacheSize <= 0 {
		opts.CacheSize = 1024
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		store:   store,
		bus:     bus,
		catalog: catalog,
		locks:   concurrency.NewLockManager(),
		cache:   newProgressCache(opts.CacheSize, opts.CacheTTL),
		now:     opts.Now,
	}
}

// load returns a private copy of the player's progress.
func (s *service) load(ctx context.Context, playerID string) (*domain.Progress, error) {
	if p, ok := s.cache.Get(playerID); ok {
		return p, nil
	}
	p, err := s.store.Load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(p)
	return p, nil
}

// operation mutates e and reports whether the progress must be saved.
type operation func(ctx context.Context, e *engine) (changed bool, err error)

// run executes op under the player's lock. Events raised during op are
// published only after the change has been saved.
func (s *service) run(ctx context.Context, playerID string, op operation) (*engine, error) {
	if err := validatePlayerID(playerID); err != nil {
		return nil, err
	}
	var e *engine
	err := s.locks.WithLock(playerID, func() error {
		p, err := s.load(ctx, playerID)
		if err != nil {
			return err
		}
		e = newEngine(p, s.catalog)

		changed, err := op(ctx, e)
		if err != nil {
			return err
		}
		if changed {
			p.UpdatedAt = s.now()
			if err := s.store.Save(ctx, p); err != nil {
				s.cache.Invalidate(playerID)
				logger.FromContext(ctx).Error(LogMsgSaveFailed,
					"player_id", playerID,
					"events", len(e.pending),
					"error", err)
				return fmt.Errorf("failed to save progress: %w", err)
			}
			s.cache.Set(p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.flush(e)
	return e, nil
}

func (s *service) flush(e *engine) {
	for _, pe := range e.pending {
		s.notify(pe.ctx, pe.evt)
	}
	e.pending = nil
}

// notify publishes one event. Handler failures never undo committed progress.
func (s *service) notify(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

func validatePlayerID(playerID string) error {
	if strings.TrimSpace(playerID) == "" {
		return fmt.Errorf("%w: player id is required", domain.ErrInvalidInput)
	}
	if len(playerID) > 64 {
		return fmt.Errorf("%w: player id is longer than 64 characters", domain.ErrInvalidInput)
	}
	return nil
}

// CreatePlayer stores an empty progress record. An empty id generates one.
func (s *service) CreatePlayer(ctx context.Context, playerID string) (*State, error) {
	if playerID == "" {
		playerID = uuid.NewString()
	}
	if err := validatePlayerID(playerID); err != nil {
		return nil, err
	}
	p := domain.NewProgress(playerID, s.now())
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Set(p)
	logger.FromContext(ctx).Info(LogMsgPlayerCreated, "player_id", playerID)
	return newEngine(p, s.catalog).state(), nil
}

// DeletePlayer removes a player's progress.
func (s *service) DeletePlayer(ctx context.Context, playerID string) error {
	if err := validatePlayerID(playerID); err != nil {
		return err
	}
	err := s.locks.WithLock(playerID, func() error {
		s.cache.Invalidate(playerID)
		return s.store.Delete(ctx, playerID)
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgPlayerDeleted, "player_id", playerID)
	return nil
}

// GetState returns the player's progression.
func (s *service) GetState(ctx context.Context, playerID string) (*State, error) {
	e, err := s.run(ctx, playerID, func(context.Context, *engine) (bool, error) { return false, nil })
	if err != nil {
		return nil, err
	}
	return e.state(), nil
}

// Credit adds currency to the player's wallet.
func (s *service) Credit(ctx context.Context, playerID string, currency domain.Currency, amount bignum.Value) (*State, error) {
	e, err := s.run(ctx, playerID, func(ctx context.Context, e *engine) (bool, error) {
		if err := e.wallet.Credit(currency, amount); err != nil {
			return false, err
		}
		logger.FromContext(ctx).Debug(LogMsgCreditApplied,
			"player_id", playerID,
			"currency", currency,
			"amount", amount.String())
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return e.state(), nil
}

func (s *service) effarigUnlock(e *engine, key string) (int, error) {
	id, ok := e.effarig.Unlocks().Lookup(key)
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrUnknownUpgrade, effarig.Name, key)
	}
	return id, nil
}

// PurchaseEffarigUnlock buys an Effarig unlock with relic shards.
func (s *service) PurchaseEffarigUnlock(ctx context.Context, playerID, key string) (*PurchaseResult, error) {
	var purchased bool
	e, err := s.run(ctx, playerID, func(ctx context.Context, e *engine) (bool, error) {
		id, err := s.effarigUnlock(e, key)
		if err != nil {
			return false, err
		}
		if e.effarig.Unlocks().Definition(id).GrantOnly {
			return false, fmt.Errorf("%w: %s %q is granted by progress", domain.ErrNotPurchasable, effarig.Name, key)
		}
		purchased = e.effarig.Purchase(ctx, id)
		if !purchased {
			s.rejected(ctx, playerID, effarig.Name, key)
		}
		return purchased, nil
	})
	if err != nil {
		return nil, err
	}
	return &PurchaseResult{Purchased: purchased, State: e.state()}, nil
}

// GrantEffarigUnlock sets an unlock without charging for it.
func (s *service) GrantEffarigUnlock(ctx context.Context, playerID, key string) (*PurchaseResult, error) {
	var granted bool
	e, err := s.run(ctx, playerID, func(ctx context.Context, e *engine) (bool, error) {
		id, err := s.effarigUnlock(e, key)
		if err != nil {
			return false, err
		}
		granted = e.effarig.Grant(ctx, id)
		return granted, nil
	})
	if err != nil {
		return nil, err
	}
	return &PurchaseResult{Purchased: granted, State: e.state()}, nil
}

// StartEffarigRun enters Effarig's Reality, leaving any other run. The run
// unlock must be owned.
func (s *service) StartEffarigRun(ctx context.Context, playerID string) (*RunResult, error) {
	var changed bool
	e, err := s.run(ctx, playerID, func(ctx context.Context, e *engine) (bool, error) {
		if !e.effarig.Unlocks().IsUnlocked(effarig.UnlockRun) {
			return false, fmt.Errorf("%w: %s run", domain.ErrLocked, effarig.Name)
		}
		changed = e.effarig.StartRun(ctx)
		if !changed {
			logger.FromContext(ctx).Debug(LogMsgRunStateUnchanged, "player_id", playerID)
		}
		return changed, nil
	})
	if err != nil {
		return nil, err
	}
	return &RunResult{Changed: changed, State: e.state()}, nil
}

// StopEffarigRun leaves Effarig's Reality.
func (s *service) StopEffarigRun(ctx context.Context, playerID string) (*RunResult, error) {
	var changed bool
	e, err := s.run(ctx, playerID, func(ctx context.Context, e *engine) (bool, error) {
		changed = e.effarig.StopRun(ctx)
		return changed, nil
	})
	if err != nil {
		return nil, err
	}
	return &RunResult{Changed: changed, State: e.state()}, nil
}

// HandleGameEvent forwards a game-loop event. It reports whether the engine reacted.
func (s *service) HandleGameEvent(ctx context.Context, playerID, name string) (bool, error) {
	var reacted bool
	_, err := s.run(ctx, playerID, func(ctx context.Context, e *engine) (bool, error) {
		reacted = e.effarig.HandleGameEvent(ctx, name)
		if !reacted {
			logger.FromContext(ctx).Debug(LogMsgGameEventIgnored, "player_id", playerID, "event", name)
		}
		return false, nil
	})
	return reacted, err
}

// PurchaseDilationUpgrade buys one level of a rebuyable or a one-time
// dilation upgrade. snap supplies the doomed flag and perks; it may be nil.
func (s *service) PurchaseDilationUpgrade(ctx context.Context, playerID, key string, snap *live.Snapshot) (*PurchaseResult, error) {
	var purchased bool
	e, err := s.run(ctx, playerID, func(ctx context.Context, e *engine) (bool, error) {
		ok, err := e.dilation.Purchase(ctx, key, e.view(snap))
		if err != nil {
			return false, err
		}
		purchased = ok
		if !purchased {
			s.rejected(ctx, playerID, dilation.Name, key)
		}
		return purchased, nil
	})
	if err != nil {
		return nil, err
	}
	return &PurchaseResult{Purchased: purchased, State: e.state()}, nil
}

// ResetDilation zeroes every dilation rebuyable and clears the resettable one-time upgrades.
func (s *service) ResetDilation(ctx context.Context, playerID string) (*State, error) {
	e, err := s.run(ctx, playerID, func(ctx context.Context, e *engine) (bool, error) {
		e.dilation.Reset(ctx)
		logger.FromContext(ctx).Info(LogMsgDilationReset, "player_id", playerID)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return e.state(), nil
}

// Effects evaluates every effect against snap layered over the player's wallet.
func (s *service) Effects(ctx context.Context, playerID string, snap *live.Snapshot) (*Effects, error) {
	e, err := s.run(ctx, playerID, func(context.Context, *engine) (bool, error) { return false, nil })
	if err != nil {
		return nil, err
	}
	return e.effects(e.view(snap)), nil
}

// Ready reports whether the store is reachable.
func (s *service) Ready(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return fmt.Errorf("store unavailable: %w", err)
	}
	return nil
}

func (s *service) rejected(ctx context.Context, playerID, group, key string) {
	metrics.RecordRejectedPurchase(group, key)
	logger.FromContext(ctx).Debug(LogMsgPurchaseRejected,
		"player_id", playerID,
		"group", group,
		"key", key)
}
