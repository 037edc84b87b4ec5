package live

// Flag keys read by effect formulas and suppression checks.
const (
	FlagEffarigDisabled    = "effarig_disabled"
	FlagDoomed             = "doomed"
	FlagTeresaEffarig      = "teresa_effarig"
	FlagBypassTGReset      = "perk_bypass_tg_reset"
	FlagDilationAlteration = "glyph_alteration_dilation"
)

// Multiplier keys.
const (
	MultDTGainBonus    = "dt_gain_bonus"
	MultEffarigAlchemy = "alchemy_effarig"
	MultTickspeedBase  = "tickspeed_base"
	MultReplicantiMult = "replicanti_mult"
	MultReplicantiCap  = "replicanti_cap"
	MultIC4            = "ic4"
	MultIC7            = "ic7"
)

// Scalar keys.
const (
	ScalarGalaxies            = "galaxies"
	ScalarTotalTickBought     = "total_tick_bought"
	ScalarInfinityRealTime    = "infinity_real_time"
	ScalarInfinityLastBuyTime = "infinity_last_buy_time"
	ScalarGlyphDilationPow    = "glyph_dilationpow"
)
