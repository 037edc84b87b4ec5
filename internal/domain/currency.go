package domain

// Currency identifies a balance held in a player's wallet.
type Currency string

const (
	CurrencyRelicShards      Currency = "relic_shards"
	CurrencyDilatedTime      Currency = "dilated_time"
	CurrencyTachyonParticles Currency = "tachyon_particles"
	CurrencyEternityPoints   Currency = "eternity_points"
	CurrencyInfinityPower    Currency = "infinity_power"
	CurrencyTimeShards       Currency = "time_shards"
	CurrencyMatter           Currency = "matter"
	CurrencyReplicanti       Currency = "replicanti"
)

// Currencies lists every known currency in display order.
var Currencies = []Currency{
	CurrencyRelicShards,
	CurrencyDilatedTime,
	CurrencyTachyonParticles,
	CurrencyEternityPoints,
	CurrencyInfinityPower,
	CurrencyTimeShards,
	CurrencyMatter,
	CurrencyReplicanti,
}

// Valid reports whether c is a known currency.
func (c Currency) Valid() bool {
	for _, known := range Currencies {
		if c == known {
			return true
		}
	}
	return false
}
