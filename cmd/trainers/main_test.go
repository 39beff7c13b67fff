package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"luchik.app/trainers/internal/config"
	"luchik.app/trainers/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestGenerateQuickMath(t *testing.T) {
	out, err := run(t, "generate", "quick-math", "--tier", "1", "--max-digit", "9", "--count", "5", "--seed", "42")
	require.NoError(t, err)

	var s domain.Session
	require.NoError(t, json.Unmarshal([]byte(out), &s), out)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, "1-10", s.Settings.Label)
	assert.Contains(t, []int{5, 6}, len(s.Numbers))

	again, err := run(t, "generate", "quick-math", "--tier", "1", "--max-digit", "9", "--count", "5", "--seed", "42")
	require.NoError(t, err)
	var s2 domain.Session
	require.NoError(t, json.Unmarshal([]byte(again), &s2))
	assert.Equal(t, s.Numbers, s2.Numbers)
}

func TestGenerateFlashCards(t *testing.T) {
	out, err := run(t, "generate", "flash-cards", "--tier", "3", "--count", "4", "--seed", "7")
	require.NoError(t, err)

	var s domain.FlashSession
	require.NoError(t, json.Unmarshal([]byte(out), &s), out)
	require.Len(t, s.Cards, 4)
	for _, c := range s.Cards {
		assert.Len(t, c.Columns, 3)
	}
}

func TestGenerateRejectsBadFlags(t *testing.T) {
	_, err := run(t, "generate", "quick-math", "--tier", "7")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "range_key")
}

func testApp() *app {
	cfg := config.DefaultConfig()
	cfg.Server.Addr = "127.0.0.1:0"
	cfg.Server.ShutdownTimeout = time.Second
	return &app{cfg: cfg, logger: zap.NewNop()}
}

func TestHandlerServesAPI(t *testing.T) {
	h := testApp().handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/schulte/session?size=3", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServeStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- testApp().serve(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServeFailsOnBadAddr(t *testing.T) {
	a := testApp()
	a.cfg.Server.Addr = "bad-address"
	require.Error(t, a.serve(context.Background()))
}
