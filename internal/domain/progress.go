package domain

import (
	"maps"
	"time"

	"github.com/osse101/prestige/internal/bignum"
)

// Progress is the persisted player-progress record. The engine reads and writes
// only these in-memory fields; storage is the repository's concern.
type Progress struct {
	PlayerID   string                    `json:"player_id"`
	Wallet     map[Currency]bignum.Value `json:"wallet"`
	Effarig    EffarigProgress           `json:"effarig"`
	Dilation   DilationProgress          `json:"dilation"`
	LastUpdate time.Time                 `json:"last_update"`
	UpdatedAt  time.Time                 `json:"updated_at"`
}

// EffarigProgress holds the Effarig unlock bitmask and run flag.
type EffarigProgress struct {
	UnlockBits uint64 `json:"unlock_bits"`
	Run        bool   `json:"run"`
}

// DilationProgress holds one-time dilation upgrade bits and rebuyable purchase counts.
type DilationProgress struct {
	Upgrades   uint64      `json:"upgrades"`
	Rebuyables map[int]int `json:"rebuyables"`
}

// NewProgress returns an empty record for a new player.
func NewProgress(playerID string, now time.Time) *Progress {
	return &Progress{
		PlayerID: playerID,
		Wallet:   make(map[Currency]bignum.Value),
		Dilation: DilationProgress{
			Rebuyables: make(map[int]int),
		},
		LastUpdate: now,
		UpdatedAt:  now,
	}
}

// Clone returns a deep copy so stores never share maps with live sessions.
func (p *Progress) Clone() *Progress {
	if p == nil {
		return nil
	}
	out := *p
	out.Wallet = maps.Clone(p.Wallet)
	if out.Wallet == nil {
		out.Wallet = make(map[Currency]bignum.Value)
	}
	out.Dilation.Rebuyables = maps.Clone(p.Dilation.Rebuyables)
	if out.Dilation.Rebuyables == nil {
		out.Dilation.Rebuyables = make(map[int]int)
	}
	return &out
}
