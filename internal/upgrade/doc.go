// Package upgrade is the generic purchase engine behind every prestige-layer
// content table: bit-flag unlock groups, geometrically priced rebuyables, the
// ordered-gate stage resolver and the shared effect formula helpers.
//
// Engine types are synchronous and hold no locks. Callers that share one
// player's state across goroutines must serialize every call on that state.
package upgrade
