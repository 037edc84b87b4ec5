package session

import (
	"time"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/dilation"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/effarig"
	"github.com/osse101/prestige/internal/upgrade"
)

// State is the read model of one player's progression.
type State struct {
	PlayerID   string                           `json:"player_id"`
	Wallet     map[domain.Currency]bignum.Value `json:"wallet"`
	Effarig    EffarigState                     `json:"effarig"`
	Dilation   DilationState                    `json:"dilation"`
	LastUpdate time.Time                        `json:"last_update"`
	UpdatedAt  time.Time                        `json:"updated_at"`
}

// UnlockState describes one bit of an unlock group.
type UnlockState struct {
	Key       string       `json:"key"`
	Unlocked  bool         `json:"unlocked"`
	Cost      bignum.Value `json:"cost"`
	GrantOnly bool         `json:"grant_only,omitempty"`
	PelleOnly bool         `json:"pelle_only,omitempty"`
}

// RebuyableState describes one rebuyable. Cap is zero when unbounded.
type RebuyableState struct {
	Key        string       `json:"key"`
	Count      int          `json:"count"`
	Cost       bignum.Value `json:"cost"`
	Cap        int          `json:"cap,omitempty"`
	ReachedCap bool         `json:"reached_cap"`
	PelleOnly  bool         `json:"pelle_only,omitempty"`
}

type EffarigState struct {
	Stage         int           `json:"stage"`
	StageName     string        `json:"stage_name"`
	Running       bool          `json:"running"`
	GlyphLevelCap int           `json:"glyph_level_cap"`
	Unlocks       []UnlockState `json:"unlocks"`
}

type DilationState struct {
	Rebuyables []RebuyableState `json:"rebuyables"`
	Upgrades   []UnlockState    `json:"upgrades"`
}

// PurchaseResult reports whether a purchase changed anything, with the state after it.
type PurchaseResult struct {
	Purchased bool   `json:"purchased"`
	State     *State `json:"state"`
}

// RunResult reports whether a run start/stop changed the run flag.
type RunResult struct {
	Changed bool   `json:"changed"`
	State   *State `json:"state"`
}

// Effects is every derived value the engine exposes for one live snapshot.
type Effects struct {
	Effarig  EffarigEffects          `json:"effarig"`
	Dilation map[string]bignum.Value `json:"dilation"`
}

// EffarigEffects holds effects that apply regardless of the run, plus the run
// nerfs when Effarig's Reality is active.
type EffarigEffects struct {
	Active            map[string]bool         `json:"active"`
	GlyphLevelCap     int                     `json:"glyph_level_cap"`
	ShardsGained      bignum.Value            `json:"shards_gained"`
	MaxRarityBoost    float64                 `json:"max_rarity_boost"`
	GlyphEffectAmount int                     `json:"glyph_effect_amount"`
	EternityCap       *bignum.Value           `json:"eternity_cap,omitempty"`
	Run               *EffarigRunEffects      `json:"run,omitempty"`
	Challenges        map[string]bignum.Value `json:"challenges,omitempty"`
}

type EffarigRunEffects struct {
	TickDilation            float64      `json:"tick_dilation"`
	MultDilation            float64      `json:"mult_dilation"`
	Tickspeed               bignum.Value `json:"tickspeed"`
	BonusReplicantiGalaxies int          `json:"bonus_replicanti_galaxies"`
}

func (e *engine) state() *State {
	p := e.progress
	stage := e.effarig.Stage()
	return &State{
		PlayerID: p.PlayerID,
		Wallet:   e.wallet.Snapshot(),
		Effarig: EffarigState{
			Stage:         int(stage),
			StageName:     effarig.StageName(stage),
			Running:       e.effarig.IsRunning(),
			GlyphLevelCap: e.effarig.GlyphLevelCap(),
			Unlocks:       unlockStates(e.effarig.Unlocks(), nil),
		},
		Dilation: DilationState{
			Rebuyables: rebuyableStates(e.dilation),
			Upgrades:   unlockStates(e.dilation.Upgrades(), e.dilation.IsPelleOnly),
		},
		LastUpdate: p.LastUpdate,
		UpdatedAt:  p.UpdatedAt,
	}
}

func unlockStates(g *upgrade.UnlockGroup, pelleOnly func(int) bool) []UnlockState {
	defs := g.Definitions()
	out := make([]UnlockState, 0, len(defs))
	for _, def := range defs {
		s := UnlockState{
			Key:       def.Key,
			Unlocked:  g.IsUnlocked(def.ID),
			Cost:      def.Cost,
			GrantOnly: def.GrantOnly,
		}
		if pelleOnly != nil {
			s.PelleOnly = pelleOnly(def.ID)
		}
		out = append(out, s)
	}
	return out
}

func rebuyableStates(t *dilation.Tree) []RebuyableState {
	set := t.Rebuyables()
	defs := set.Definitions()
	out := make([]RebuyableState, 0, len(defs))
	for _, def := range defs {
		s := RebuyableState{
			Key:        def.Key,
			Count:      set.Count(def.ID),
			Cost:       set.Cost(def.ID),
			ReachedCap: set.ReachedCap(def.ID),
			PelleOnly:  t.IsPelleOnly(def.ID),
		}
		if limit := def.Limit(); limit != upgrade.Unbounded {
			s.Cap = limit
		}
		out = append(out, s)
	}
	return out
}

func (e *engine) effects(l upgrade.Live) *Effects {
	c := e.effarig
	active := make(map[string]bool)
	for _, def := range c.Unlocks().Definitions() {
		active[def.Key] = c.IsEffectActive(def.ID, l)
	}

	eff := EffarigEffects{
		Active:            active,
		GlyphLevelCap:     c.GlyphLevelCap(),
		ShardsGained:      c.ShardsGained(l),
		MaxRarityBoost:    effarig.MaxRarityBoost(l),
		GlyphEffectAmount: effarig.GlyphEffectAmount(l),
	}
	if v, ok := c.EternityCap(); ok {
		eff.EternityCap = &v
	}
	if c.IsRunning() {
		eff.Run = &EffarigRunEffects{
			TickDilation:            c.TickDilation(l),
			MultDilation:            c.MultDilation(l),
			Tickspeed:               c.Tickspeed(l),
			BonusReplicantiGalaxies: c.BonusReplicantiGalaxies(l),
		}
		eff.Challenges = make(map[string]bignum.Value, len(effarig.Challenges))
		for _, ic := range effarig.Challenges {
			if v, err := c.ChallengeEffect(ic, l); err == nil {
				eff.Challenges[string(ic)] = v
			}
		}
	}

	return &Effects{
		Effarig:  eff,
		Dilation: e.dilation.Effects(l),
	}
}
