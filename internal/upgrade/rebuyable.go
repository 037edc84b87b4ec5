package upgrade

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/logger"
)

// RebuyableDefinition describes an upgrade that can be bought repeatedly.
type RebuyableDefinition struct {
	ID          int
	Key         string
	Currency    domain.Currency
	InitialCost bignum.Value
	Increment   bignum.Value
	// PurchaseCap is the exclusive ceiling on the stored count. Zero means Unbounded.
	PurchaseCap int
	// Cost overrides the geometric InitialCost × Increment^count price.
	Cost func(count int) bignum.Value
	// Effect maps the live purchase count and game state to the effect value.
	Effect func(count int, live Live) bignum.Value
	// Cap optionally bounds the effect value at consumption time.
	Cap         func(live Live) (bignum.Value, bool)
	OnPurchased func(ctx context.Context)
}

// Limit returns the effective purchase cap.
func (d RebuyableDefinition) Limit() int {
	if d.PurchaseCap <= 0 {
		return Unbounded
	}
	return d.PurchaseCap
}

// CostAt returns the price of the purchase made when count have already been bought.
func (d RebuyableDefinition) CostAt(count int) bignum.Value {
	if d.Cost != nil {
		return d.Cost(count)
	}
	return d.InitialCost.Mul(d.Increment.Pow(float64(count)))
}

// RebuyableSet is the state machine over a map of purchase counts.
type RebuyableSet struct {
	name    string
	counts  map[int]int
	ledger  Ledger
	defs    map[int]*RebuyableDefinition
	byKey   map[string]*RebuyableDefinition
	ordered []*RebuyableDefinition
}

// NewRebuyableSet binds definitions to a count map and ledger. It panics on
// duplicate ids or keys, a nil count map, or a definition without an effect.
func NewRebuyableSet(name string, counts map[int]int, ledger Ledger, defs []RebuyableDefinition) *RebuyableSet {
	if counts == nil {
		panic(fmt.Sprintf("rebuyable set %s: nil count map", name))
	}
	s := &RebuyableSet{
		name:   name,
		counts: counts,
		ledger: ledger,
		defs:   make(map[int]*RebuyableDefinition, len(defs)),
		byKey:  make(map[string]*RebuyableDefinition, len(defs)),
	}
	for i := range defs {
		def := defs[i]
		if def.Effect == nil {
			panic(fmt.Sprintf("rebuyable set %s: %q has no effect", name, def.Key))
		}
		if _, dup := s.defs[def.ID]; dup {
			panic(fmt.Sprintf("rebuyable set %s: duplicate id %d", name, def.ID))
		}
		if _, dup := s.byKey[def.Key]; dup {
			panic(fmt.Sprintf("rebuyable set %s: duplicate key %q", name, def.Key))
		}
		s.defs[def.ID] = &def
		s.byKey[def.Key] = &def
		s.ordered = append(s.ordered, &def)
	}
	sort.Slice(s.ordered, func(i, j int) bool { return s.ordered[i].ID < s.ordered[j].ID })
	return s
}

// Name returns the set name.
func (s *RebuyableSet) Name() string { return s.name }

// Definition returns the definition for id, panicking if it is unknown.
func (s *RebuyableSet) Definition(id int) RebuyableDefinition {
	return *s.mustGet(id)
}

// Lookup resolves a key to its id.
func (s *RebuyableSet) Lookup(key string) (int, bool) {
	def, ok := s.byKey[key]
	if !ok {
		return 0, false
	}
	return def.ID, true
}

// Definitions returns all definitions ordered by id.
func (s *RebuyableSet) Definitions() []RebuyableDefinition {
	out := make([]RebuyableDefinition, 0, len(s.ordered))
	for _, def := range s.ordered {
		out = append(out, *def)
	}
	return out
}

// Count returns how many times id has been bought.
func (s *RebuyableSet) Count(id int) int {
	s.mustGet(id)
	return s.counts[id]
}

// Cost returns the price of the next purchase of id.
func (s *RebuyableSet) Cost(id int) bignum.Value {
	def := s.mustGet(id)
	return def.CostAt(s.counts[id])
}

// ReachedCap reports whether id can no longer be bought.
func (s *RebuyableSet) ReachedCap(id int) bool {
	def := s.mustGet(id)
	return s.counts[id] >= def.Limit()
}

// CanAfford reports whether a purchase of id would currently succeed.
func (s *RebuyableSet) CanAfford(id int) bool {
	def := s.mustGet(id)
	if s.counts[id] >= def.Limit() {
		return false
	}
	return s.ledger.Balance(def.Currency).Gte(def.CostAt(s.counts[id]))
}

// Purchase buys one level of id. It returns false without changing anything
// when the cap is reached or the price is unaffordable.
func (s *RebuyableSet) Purchase(ctx context.Context, id int) bool {
	def := s.mustGet(id)
	count := s.counts[id]
	if count >= def.Limit() {
		return false
	}
	if !s.ledger.Debit(def.Currency, def.CostAt(count)) {
		return false
	}
	s.counts[id] = count + 1

	logger.FromContext(ctx).Debug(LogMsgRebuyableBought, "group", s.name, "key", def.Key, "count", count+1)
	runHook(ctx, s.name, def.Key, def.OnPurchased)
	return true
}

// Effect recomputes the effect of id from the current count and live state.
func (s *RebuyableSet) Effect(id int, live Live) bignum.Value {
	def := s.mustGet(id)
	return def.Effect(s.counts[id], live)
}

// CappedEffect is Effect clamped to the definition's dynamic ceiling, if any.
func (s *RebuyableSet) CappedEffect(id int, live Live) bignum.Value {
	def := s.mustGet(id)
	value := def.Effect(s.counts[id], live)
	if def.Cap == nil {
		return value
	}
	if ceiling, ok := def.Cap(live); ok {
		return value.ClampMax(ceiling)
	}
	return value
}

// Reset sets the counts of ids back to zero.
func (s *RebuyableSet) Reset(ids ...int) {
	for _, id := range ids {
		s.mustGet(id)
		delete(s.counts, id)
	}
}

// ResetAll sets every count in the set back to zero.
func (s *RebuyableSet) ResetAll() {
	for _, def := range s.ordered {
		delete(s.counts, def.ID)
	}
}

func (s *RebuyableSet) mustGet(id int) *RebuyableDefinition {
	def, ok := s.defs[id]
	if !ok {
		unknownID(s.name, id)
	}
	return def
}
