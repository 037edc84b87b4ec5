package upgrade

import (
	"context"
	"fmt"
	"math/bits"
	"sort"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/logger"
)

// UnlockDefinition describes one permanent unlock. ID is its bit position.
type UnlockDefinition struct {
	ID       int
	Key      string
	Currency domain.Currency
	Cost     bignum.Value
	// GrantOnly unlocks are awarded by game progress and can never be bought.
	GrantOnly   bool
	OnPurchased func(ctx context.Context)
}

// UnlockOption configures an UnlockGroup.
type UnlockOption func(*UnlockGroup)

// WithSuppression installs the global mode check that disables every effect in
// the group without un-purchasing anything.
func WithSuppression(suppressed func(live Live) bool) UnlockOption {
	return func(g *UnlockGroup) {
		g.suppressed = suppressed
	}
}

// UnlockGroup is the state machine over one bitmask storage cell.
type UnlockGroup struct {
	name       string
	bits       *uint64
	ledger     Ledger
	defs       map[int]*UnlockDefinition
	byKey      map[string]*UnlockDefinition
	ordered    []*UnlockDefinition
	suppressed func(live Live) bool
}

// NewUnlockGroup binds definitions to a storage cell and ledger. It panics on
// duplicate ids or keys and on ids outside the bitmask.
func NewUnlockGroup(name string, cell *uint64, ledger Ledger, defs []UnlockDefinition, opts ...UnlockOption) *UnlockGroup {
	if cell == nil {
		panic(fmt.Sprintf("unlock group %s: nil storage cell", name))
	}
	g := &UnlockGroup{
		name:   name,
		bits:   cell,
		ledger: ledger,
		defs:   make(map[int]*UnlockDefinition, len(defs)),
		byKey:  make(map[string]*UnlockDefinition, len(defs)),
	}
	for i := range defs {
		def := defs[i]
		if def.ID < 0 || def.ID > MaxUnlockID {
			panic(fmt.Sprintf("unlock group %s: id %d out of range", name, def.ID))
		}
		if _, dup := g.defs[def.ID]; dup {
			panic(fmt.Sprintf("unlock group %s: duplicate id %d", name, def.ID))
		}
		if _, dup := g.byKey[def.Key]; dup {
			panic(fmt.Sprintf("unlock group %s: duplicate key %q", name, def.Key))
		}
		g.defs[def.ID] = &def
		g.byKey[def.Key] = &def
		g.ordered = append(g.ordered, &def)
	}
	sort.Slice(g.ordered, func(i, j int) bool { return g.ordered[i].ID < g.ordered[j].ID })
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the group name.
func (g *UnlockGroup) Name() string { return g.name }

// Bits returns the raw bitmask.
func (g *UnlockGroup) Bits() uint64 { return *g.bits }

// Definition returns the definition for id, panicking if it is unknown.
func (g *UnlockGroup) Definition(id int) UnlockDefinition {
	return *g.mustGet(id)
}

// Lookup resolves a key to its id.
func (g *UnlockGroup) Lookup(key string) (int, bool) {
	def, ok := g.byKey[key]
	if !ok {
		return 0, false
	}
	return def.ID, true
}

// Definitions returns all definitions ordered by id.
func (g *UnlockGroup) Definitions() []UnlockDefinition {
	out := make([]UnlockDefinition, 0, len(g.ordered))
	for _, def := range g.ordered {
		out = append(out, *def)
	}
	return out
}

// IsUnlocked tests the bit for id.
func (g *UnlockGroup) IsUnlocked(id int) bool {
	g.mustGet(id)
	return *g.bits&(1<<uint(id)) != 0
}

// IsEffectActive reports whether id is unlocked and the group is not suppressed.
func (g *UnlockGroup) IsEffectActive(id int, live Live) bool {
	if !g.IsUnlocked(id) {
		return false
	}
	return g.suppressed == nil || !g.suppressed(live)
}

// CanAfford reports whether a purchase of id would currently succeed.
func (g *UnlockGroup) CanAfford(id int) bool {
	def := g.mustGet(id)
	if def.GrantOnly || g.IsUnlocked(id) {
		return false
	}
	return g.ledger.Balance(def.Currency).Gte(def.Cost)
}

// Purchase buys id. It returns false without changing anything when id is
// already unlocked, grant-only, or unaffordable, so repeated calls are safe.
func (g *UnlockGroup) Purchase(ctx context.Context, id int) bool {
	def := g.mustGet(id)
	if def.GrantOnly || g.IsUnlocked(id) {
		return false
	}
	if !g.ledger.Debit(def.Currency, def.Cost) {
		return false
	}
	*g.bits |= 1 << uint(id)

	logger.FromContext(ctx).Debug(LogMsgUnlockPurchased, "group", g.name, "key", def.Key)
	runHook(ctx, g.name, def.Key, def.OnPurchased)
	return true
}

// Unlock sets the bit for id without charging. It reports whether the bit changed.
func (g *UnlockGroup) Unlock(ctx context.Context, id int) bool {
	def := g.mustGet(id)
	if g.IsUnlocked(id) {
		return false
	}
	*g.bits |= 1 << uint(id)
	logger.FromContext(ctx).Debug(LogMsgUnlockGranted, "group", g.name, "key", def.Key)
	return true
}

// ResetMask clears exactly the bits in mask.
func (g *UnlockGroup) ResetMask(mask uint64) {
	*g.bits &^= mask
}

// ResetGroup clears every bit in the group.
func (g *UnlockGroup) ResetGroup() {
	*g.bits = 0
}

// Count returns the number of unlocked ids.
func (g *UnlockGroup) Count() int {
	return bits.OnesCount64(*g.bits)
}

// Mask returns the bitmask covering ids.
func Mask(ids ...int) uint64 {
	var m uint64
	for _, id := range ids {
		m |= 1 << uint(id)
	}
	return m
}

func (g *UnlockGroup) mustGet(id int) *UnlockDefinition {
	def, ok := g.defs[id]
	if !ok {
		unknownID(g.name, id)
	}
	return def
}
