package effarig

// Quote identifies a line Effarig says at a point in the progression.
type Quote string

const (
	QuoteInitial          Quote = "initial"
	QuoteUnlockAdjuster   Quote = "unlock_adjuster"
	QuoteUnlockFilter     Quote = "unlock_glyph_filter"
	QuoteUnlockSetSaves   Quote = "unlock_set_saves"
	QuoteUnlockRun        Quote = "unlock_run"
	QuoteCompleteInfinity Quote = "complete_infinity"
	QuoteCompleteEternity Quote = "complete_eternity"
	QuoteCompleteReality  Quote = "complete_reality"
)

var quoteText = map[Quote]string{
	QuoteInitial:          "Welcome to my humble abode. I am Effarig, and I govern Glyphs.",
	QuoteUnlockAdjuster:   "Shape your Glyphs as you please.",
	QuoteUnlockFilter:     "Keep only what pleases you.",
	QuoteUnlockSetSaves:   "Remember your favourite arrangements.",
	QuoteUnlockRun:        "You are ready to enter my Reality.",
	QuoteCompleteInfinity: "You have conquered my Infinity. The Eternity layer awaits.",
	QuoteCompleteEternity: "My Eternity falls to you. Only Reality remains.",
	QuoteCompleteReality:  "You have completed my Reality. The shards are yours.",
}

var unlockQuotes = map[int]Quote{
	UnlockAdjuster:    QuoteUnlockAdjuster,
	UnlockGlyphFilter: QuoteUnlockFilter,
	UnlockSetSaves:    QuoteUnlockSetSaves,
	UnlockRun:         QuoteUnlockRun,
	UnlockReality:     QuoteCompleteReality,
}

// Text returns the line for q.
func (q Quote) Text() string { return quoteText[q] }
