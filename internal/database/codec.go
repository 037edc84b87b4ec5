package database

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
)

// ProgressColumns is the column form of a domain.Progress shared by the SQL stores.
type ProgressColumns struct {
	Wallet             []byte
	EffarigUnlockBits  int64
	EffarigRun         bool
	DilationUpgrades   int64
	DilationRebuyables []byte
}

// EncodeProgress flattens p. Bitmasks are stored as signed 64-bit integers and
// round-trip bit 63 through two's complement.
func EncodeProgress(p *domain.Progress) (ProgressColumns, error) {
	wallet, err := json.Marshal(p.Wallet)
	if err != nil {
		return ProgressColumns{}, fmt.Errorf("encode wallet: %w", err)
	}
	rebuyables, err := json.Marshal(p.Dilation.Rebuyables)
	if err != nil {
		return ProgressColumns{}, fmt.Errorf("encode rebuyables: %w", err)
	}
	return ProgressColumns{
		Wallet:             wallet,
		EffarigUnlockBits:  int64(p.Effarig.UnlockBits),
		EffarigRun:         p.Effarig.Run,
		DilationUpgrades:   int64(p.Dilation.Upgrades),
		DilationRebuyables: rebuyables,
	}, nil
}

// Decode fills the engine fields of p from the columns.
func (c ProgressColumns) Decode(p *domain.Progress) error {
	p.Wallet = make(map[domain.Currency]bignum.Value)
	if len(c.Wallet) > 0 {
		if err := json.Unmarshal(c.Wallet, &p.Wallet); err != nil {
			return fmt.Errorf("decode wallet: %w", err)
		}
	}
	p.Dilation.Rebuyables = make(map[int]int)
	if len(c.DilationRebuyables) > 0 {
		if err := json.Unmarshal(c.DilationRebuyables, &p.Dilation.Rebuyables); err != nil {
			return fmt.Errorf("decode rebuyables: %w", err)
		}
	}
	p.Effarig.UnlockBits = uint64(c.EffarigUnlockBits)
	p.Effarig.Run = c.EffarigRun
	p.Dilation.Upgrades = uint64(c.DilationUpgrades)
	return nil
}
