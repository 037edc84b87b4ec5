package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "upgrade.purchased")
const (
	// EventTypeUnlockPurchased is published when a one-time unlock is bought
	EventTypeUnlockPurchased = "unlock.purchased"

	// EventTypeUnlockGranted is published when an unlock is granted without payment
	EventTypeUnlockGranted = "unlock.granted"

	// EventTypeRebuyablePurchased is published after each rebuyable purchase
	EventTypeRebuyablePurchased = "rebuyable.purchased"

	// EventTypeStageEntered is published when a celestial advances to a new stage
	EventTypeStageEntered = "celestial.stage_entered"

	// EventTypeRunStarted and EventTypeRunStopped bracket a celestial run
	EventTypeRunStarted = "celestial.run_started"
	EventTypeRunStopped = "celestial.run_stopped"

	// EventTypeQuote asks presentation layers to show a celestial quote
	EventTypeQuote = "celestial.quote"

	// EventTypeModifiersRecalculate asks dependent systems to re-evaluate active modifiers
	EventTypeModifiersRecalculate = "modifiers.recalculate"

	// EventTypeGalaxyThresholdReset is published when buying the galaxy threshold
	// upgrade resets dilated time
	EventTypeGalaxyThresholdReset = "dilation.galaxy_threshold_reset"

	// EventTypeProgressReset is published after an explicit bulk reset
	EventTypeProgressReset = "progress.reset"
)

// Game-loop events the engine reacts to.
const (
	GameEventBigCrunchBefore     = "big_crunch_before"
	GameEventEternityResetBefore = "eternity_reset_before"
	GameEventEffarigTabOpened    = "effarig_tab_opened"
)
