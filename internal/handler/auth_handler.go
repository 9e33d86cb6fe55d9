package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sportszone/internal/service"
)

// AuthHandler handles token issuance.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// TokenRequest identifies the user a token is issued for.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

// TokenResponse carries a signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken godoc
// @Summary Issue a bearer token
// @Description Signs a token valid for seven days for an identity already verified by the client.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Identity"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	var req TokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.IssueToken(c.Request().Context(), req.Email, req.Name)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}
