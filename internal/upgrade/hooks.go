package upgrade

import (
	"context"
	"fmt"

	"github.com/osse101/prestige/internal/logger"
)

// runHook invokes a post-commit side effect. State is already committed when a
// hook runs, so a panicking hook is logged and swallowed.
func runHook(ctx context.Context, group, key string, hook func(ctx context.Context)) {
	if hook == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgHookPanicked,
				"group", group,
				"key", key,
				"panic", fmt.Sprint(r))
		}
	}()
	hook(ctx)
}

// unknownID panics for ids that are not in the registry.
func unknownID(group string, id int) {
	panic(fmt.Errorf("%w: %s id %d", errUnknown, group, id))
}
