package session

// CacheSchemaVersion invalidates cached progress when the record layout changes.
const CacheSchemaVersion = "1.0"

// Log messages
const (
	LogMsgPlayerCreated     = "Player created"
	LogMsgPlayerDeleted     = "Player deleted"
	LogMsgPurchaseRejected  = "Purchase rejected"
	LogMsgSaveFailed        = "Failed to save progress; dropping pending events"
	LogMsgPublishFailed     = "Failed to publish event"
	LogMsgGameEventIgnored  = "Game event produced no reaction"
	LogMsgDilationReset     = "Dilation upgrades reset"
	LogMsgCreditApplied     = "Currency credited"
	LogMsgRunStateUnchanged = "Run state unchanged"
)
