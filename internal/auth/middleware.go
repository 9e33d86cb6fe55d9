package auth

import (
	"context"
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "sportszone/internal/errors"
	"sportszone/internal/model"
)

// ContextKeyClaims is the echo context key holding the verified *Claims.
const ContextKeyClaims = "user"

// RoleLookup resolves the persisted role of a user by email.
type RoleLookup interface {
	RoleOf(ctx context.Context, email string) (model.Role, error)
}

// JWTMiddleware verifies "Authorization: Bearer <token>" and stores the
// decoded claims in the context. Missing, malformed and expired tokens are
// all rejected with 401.
func JWTMiddleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ContextKey:  ContextKeyClaims,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized,
				apperrors.NewErrorResponse(apperrors.ErrUnauthorized.Error(), "UNAUTHORIZED"))
		},
	})
}

// ClaimsFrom returns the verified claims attached by JWTMiddleware.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ContextKeyClaims).(*Claims)
	return claims, ok && claims != nil
}

// RequireAdmin allows only callers whose persisted role is admin.
func RequireAdmin(lookup RoleLookup) echo.MiddlewareFunc {
	return RequireRole(lookup, model.RoleAdmin)
}

// RequireInstructor allows only callers whose persisted role is instructor.
func RequireInstructor(lookup RoleLookup) echo.MiddlewareFunc {
	return RequireRole(lookup, model.RoleInstructor)
}

// RequireRole rejects the request with 403 unless the caller's persisted role
// equals role. It must run after JWTMiddleware.
func RequireRole(lookup RoleLookup, role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized,
					apperrors.NewErrorResponse(apperrors.ErrUnauthorized.Error(), "UNAUTHORIZED"))
			}

			actual, err := lookup.RoleOf(c.Request().Context(), claims.Email)
			if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if err != nil || actual != role {
				return echo.NewHTTPError(http.StatusForbidden,
					apperrors.NewErrorResponse(apperrors.ErrForbidden.Error(), "FORBIDDEN"))
			}
			return next(c)
		}
	}
}
