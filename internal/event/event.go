package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/prestige/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types published by the engine
const (
	UnlockPurchased      Type = domain.EventTypeUnlockPurchased
	UnlockGranted        Type = domain.EventTypeUnlockGranted
	RebuyablePurchased   Type = domain.EventTypeRebuyablePurchased
	StageEntered         Type = domain.EventTypeStageEntered
	RunStarted           Type = domain.EventTypeRunStarted
	RunStopped           Type = domain.EventTypeRunStopped
	Quote                Type = domain.EventTypeQuote
	ModifiersRecalculate Type = domain.EventTypeModifiersRecalculate
	GalaxyThresholdReset Type = domain.EventTypeGalaxyThresholdReset
	ProgressReset        Type = domain.EventTypeProgressReset
)

// Typed event payloads for type safety

// UpgradePayloadV1 describes a committed unlock or rebuyable purchase
type UpgradePayloadV1 struct {
	PlayerID string `json:"player_id"`
	Group    string `json:"group"`
	Key      string `json:"key"`
	Count    int    `json:"count,omitempty"`
	Cost     string `json:"cost,omitempty"`
}

// StagePayloadV1 is published when a celestial moves to a new stage
type StagePayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Celestial string `json:"celestial"`
	Stage     int    `json:"stage"`
	Name      string `json:"name"`
}

// RunPayloadV1 brackets a celestial run
type RunPayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Celestial string `json:"celestial"`
	Timestamp int64  `json:"timestamp"`
}

// QuotePayloadV1 asks a presentation layer to show a celestial line
type QuotePayloadV1 struct {
	PlayerID  string `json:"player_id"`
	Celestial string `json:"celestial"`
	Quote     string `json:"quote"`
}

// ResetPayloadV1 is published after explicit bulk resets
type ResetPayloadV1 struct {
	PlayerID string `json:"player_id"`
	Group    string `json:"group"`
	Reason   string `json:"reason,omitempty"`
}

// Type-safe event constructors

func newEvent(t Type, payload interface{}, playerID string) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: Metadata{MetadataKeyPlayerID: playerID},
	}
}

// NewUnlockPurchasedEvent creates an unlock purchase event
func NewUnlockPurchasedEvent(playerID, group, key, cost string) Event {
	return newEvent(UnlockPurchased, UpgradePayloadV1{PlayerID: playerID, Group: group, Key: key, Cost: cost}, playerID)
}

// NewUnlockGrantedEvent creates a forced-grant event
func NewUnlockGrantedEvent(playerID, group, key string) Event {
	return newEvent(UnlockGranted, UpgradePayloadV1{PlayerID: playerID, Group: group, Key: key}, playerID)
}

// NewRebuyablePurchasedEvent creates a rebuyable purchase event
func NewRebuyablePurchasedEvent(playerID, group, key string, count int, cost string) Event {
	return newEvent(RebuyablePurchased, UpgradePayloadV1{PlayerID: playerID, Group: group, Key: key, Count: count, Cost: cost}, playerID)
}

// NewStageEnteredEvent creates a stage transition event
func NewStageEnteredEvent(playerID, celestial string, stage int, name string) Event {
	return newEvent(StageEntered, StagePayloadV1{PlayerID: playerID, Celestial: celestial, Stage: stage, Name: name}, playerID)
}

// NewRunStartedEvent creates a run start event
func NewRunStartedEvent(playerID, celestial string) Event {
	return newEvent(RunStarted, RunPayloadV1{PlayerID: playerID, Celestial: celestial, Timestamp: time.Now().Unix()}, playerID)
}

// NewRunStoppedEvent creates a run stop event
func NewRunStoppedEvent(playerID, celestial string) Event {
	return newEvent(RunStopped, RunPayloadV1{PlayerID: playerID, Celestial: celestial, Timestamp: time.Now().Unix()}, playerID)
}

// NewQuoteEvent creates a quote event
func NewQuoteEvent(playerID, celestial, quote string) Event {
	return newEvent(Quote, QuotePayloadV1{PlayerID: playerID, Celestial: celestial, Quote: quote}, playerID)
}

// NewModifiersRecalculateEvent asks dependents to re-read active effects
func NewModifiersRecalculateEvent(playerID string) Event {
	return newEvent(ModifiersRecalculate, nil, playerID)
}

// NewGalaxyThresholdResetEvent reports that dilated time was zeroed by a purchase
func NewGalaxyThresholdResetEvent(playerID string) Event {
	return newEvent(GalaxyThresholdReset, ResetPayloadV1{PlayerID: playerID, Group: "dilation", Reason: "galaxyThreshold"}, playerID)
}

// NewProgressResetEvent creates a bulk reset event
func NewProgressResetEvent(playerID, group, reason string) Event {
	return newEvent(ProgressReset, ResetPayloadV1{PlayerID: playerID, Group: group, Reason: reason}, playerID)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish delivers an event to every subscriber synchronously. Every handler
// runs even when an earlier one fails; the failures are joined into one error.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
