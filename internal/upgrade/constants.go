package upgrade

import (
	"math"

	"github.com/osse101/prestige/internal/domain"
)

// Unbounded is the purchase cap of rebuyables that can be bought forever.
const Unbounded = math.MaxInt

// MaxUnlockID is the highest bit position an unlock group can address.
const MaxUnlockID = 63

const (
	LogMsgHookPanicked    = "Upgrade hook panicked after commit"
	LogMsgUnlockPurchased = "Unlock purchased"
	LogMsgUnlockGranted   = "Unlock granted"
	LogMsgRebuyableBought = "Rebuyable purchased"
)

var errUnknown = domain.ErrUnknownUpgrade
