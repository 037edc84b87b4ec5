package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/prestige/internal/content"
	"github.com/osse101/prestige/internal/database/memory"
	"github.com/osse101/prestige/internal/event"
	"github.com/osse101/prestige/internal/session"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := session.NewService(memory.NewStore(), event.NewMemoryBus(), content.Default(), session.Options{})
	srv := NewServer(Options{APIKey: testAPIKey, Version: "test"}, svc)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func call(t *testing.T, ts *httptest.Server, method, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestRouter_PlayerFlow(t *testing.T) {
	ts := newTestServer(t)

	resp, body := call(t, ts, http.MethodPost, "/api/v1/players", `{"player_id":"p1"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "p1", body["player_id"])

	resp, _ = call(t, ts, http.MethodPost, "/api/v1/players", `{"player_id":"p1"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = call(t, ts, http.MethodPost, "/api/v1/players/p1/credit", `{"currency":"relic_shards","amount":"1e8"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = call(t, ts, http.MethodPost, "/api/v1/players/p1/effarig/unlocks/adjuster/purchase", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["purchased"])

	resp, _ = call(t, ts, http.MethodPost, "/api/v1/players/p1/effarig/unlocks/reality/purchase", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = call(t, ts, http.MethodPost, "/api/v1/players/p1/effarig/run/start", "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = call(t, ts, http.MethodPost, "/api/v1/players/p1/dilation/upgrades/dtGainPelle/purchase", `{"flags":{"doomed":true}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["purchased"], "no dilated time")

	resp, _ = call(t, ts, http.MethodPost, "/api/v1/players/p1/dilation/upgrades/nope/purchase", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = call(t, ts, http.MethodPost, "/api/v1/players/p1/effects", `{}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "dilation")

	resp, _ = call(t, ts, http.MethodDelete, "/api/v1/players/p1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, ts, http.MethodGet, "/api/v1/players/p1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	ts := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/api/v1/players/p1")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = ts.Client().Get(ts.URL + "/readyz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
