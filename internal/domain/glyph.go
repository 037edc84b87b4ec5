package domain

// Glyph is the slice of an equipped glyph that effect formulas read: its type
// and the bitmask of effects it carries.
type Glyph struct {
	Type    string `json:"type"`
	Effects uint64 `json:"effects"`
}
