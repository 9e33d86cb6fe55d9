package handler_test

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportszone/internal/handler"
)

func TestHealthHandler_Healthz(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	down := func(context.Context) error { return stderrors.New("server selection timeout") }

	t.Run("all dependencies up", func(t *testing.T) {
		h := handler.NewHealthHandler(map[string]handler.Check{"store": healthy})

		rec := call(t, h.Healthz, http.MethodGet, "/healthz", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","checks":{"store":"ok"}}`, rec.Body.String())
	})

	t.Run("store down", func(t *testing.T) {
		h := handler.NewHealthHandler(map[string]handler.Check{"store": down})

		rec := call(t, h.Healthz, http.MethodGet, "/healthz", "", "")
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"degraded","checks":{"store":"server selection timeout"}}`, rec.Body.String())
	})
}

func TestHealthHandler_OptionalCheck(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	cacheDown := func(context.Context) error { return stderrors.New("dial tcp: connection refused") }

	h := handler.NewHealthHandler(map[string]handler.Check{"store": healthy}).
		WithOptional("cache", cacheDown)

	rec := call(t, h.Healthz, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","checks":{"store":"ok","cache":"dial tcp: connection refused"}}`, rec.Body.String())
}

func TestHealthHandler_Root(t *testing.T) {
	rec := call(t, handler.NewHealthHandler(nil).Root, http.MethodGet, "/", "", "")
	assert.Equal(t, "Sport Zone is running...", rec.Body.String())
}
