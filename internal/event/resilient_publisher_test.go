package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/prestige/internal/testing/leaktest"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(attempt int) bool
}

func (m *mockBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, event)
	n := len(m.calls)
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(n) {
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(Type, Handler) {}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{}
	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, path)
	require.NoError(t, err)

	require.NoError(t, rp.Publish(context.Background(), NewUnlockGrantedEvent("p1", "effarig", "infinity")))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.CallCount())
	content, _ := os.ReadFile(path)
	assert.Empty(t, content)
}

func TestResilientPublisher_RetrySuccess(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{shouldFail: func(attempt int) bool { return attempt == 1 }}
	rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewQuoteEvent("p1", "effarig", "hi"))

	assert.Eventually(t, func() bool { return bus.CallCount() == 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	content, _ := os.ReadFile(path)
	assert.Empty(t, content)
}

func TestResilientPublisher_RetryExhaustion(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{shouldFail: func(int) bool { return true }}
	rp, err := NewResilientPublisher(bus, 2, 5*time.Millisecond, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewRunStartedEvent("p1", "effarig"))

	assert.Eventually(t, func() bool {
		content, _ := os.ReadFile(path)
		return len(content) > 0
	}, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 3, bus.CallCount(), "initial attempt plus two retries")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(content, &entry))
	assert.Equal(t, RunStarted, entry.Event.Type)
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, 3, entry.Attempts)
	assert.Equal(t, "mock publish error", entry.LastError)
}

func TestResilientPublisher_ShutdownDeadLettersPending(t *testing.T) {
	path := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{shouldFail: func(int) bool { return true }}
	rp, err := NewResilientPublisher(bus, 3, time.Hour, path)
	require.NoError(t, err)

	rp.PublishWithRetry(context.Background(), NewProgressResetEvent("p1", "dilation", "test"))
	require.NoError(t, rp.Shutdown(context.Background()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), string(ProgressReset))
	assert.NoError(t, rp.Shutdown(context.Background()), "shutdown is idempotent")
}

func TestResilientPublisher_ShutdownStopsWorker(t *testing.T) {
	leaktest.Check(t, time.Second, func() {
		rp, err := NewResilientPublisher(&mockBus{}, 1, time.Millisecond, t.TempDir()+"/deadletter.jsonl")
		require.NoError(t, err)
		require.NoError(t, rp.Publish(context.Background(), NewRunStartedEvent("p1", "effarig")))
		require.NoError(t, rp.Shutdown(context.Background()))
	})
}
