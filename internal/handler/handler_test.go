package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"sportszone/internal/auth"
	"sportszone/internal/router"
)

// call runs h against a request as the given caller (empty for anonymous)
// and renders any returned error the way the server does.
func call(t *testing.T, h echo.HandlerFunc, method, target, body, caller string, param ...string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = router.NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if caller != "" {
		c.Set(auth.ContextKeyClaims, &auth.Claims{Email: caller})
	}
	if len(param) == 2 {
		c.SetParamNames(param[0])
		c.SetParamValues(param[1])
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
