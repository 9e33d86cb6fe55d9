package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Check tests one dependency.
type Check func(ctx context.Context) error

// HealthHandler reports liveness and dependency health.
type HealthHandler struct {
	checks   map[string]Check
	optional map[string]Check
}

// NewHealthHandler creates a health handler running checks on /healthz.
// A failing check turns the response into 503.
func NewHealthHandler(checks map[string]Check) *HealthHandler {
	return &HealthHandler{checks: checks, optional: map[string]Check{}}
}

// WithOptional adds a check that is reported but never fails the health check.
func (h *HealthHandler) WithOptional(name string, check Check) *HealthHandler {
	h.optional[name] = check
	return h
}

// HealthResponse lists the state of every dependency.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Root godoc
// @Summary Liveness text
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *HealthHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "Sport Zone is running...")
}

// Healthz godoc
// @Summary Dependency health
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Healthz(c echo.Context) error {
	ctx := c.Request().Context()
	resp := HealthResponse{Status: "ok", Checks: make(map[string]string, len(h.checks)+len(h.optional))}
	status := http.StatusOK
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}
	for name, check := range h.optional {
		if err := check(ctx); err != nil {
			resp.Checks[name] = err.Error()
			continue
		}
		resp.Checks[name] = "ok"
	}
	return c.JSON(status, resp)
}
