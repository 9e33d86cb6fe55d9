// Package handler holds the HTTP handlers of the API. Handlers translate
// requests into service calls and render the documented response shapes;
// domain errors are mapped to statuses by internal/errors.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sportszone/internal/auth"
	"sportszone/internal/errors"
	"sportszone/internal/model"
	"sportszone/internal/repository"
)

// InsertResult reports a created document.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult reports how many documents an update matched and changed.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports how many documents a delete removed.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// MessageResponse carries an informational, non-error message.
type MessageResponse struct {
	Message string `json:"message"`
}

func inserted(id model.ID) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: id.String()}
}

func updated(res repository.UpdateResult) UpdateResult {
	return UpdateResult{Acknowledged: true, MatchedCount: res.Matched, ModifiedCount: res.Modified}
}

func deleted(n int64) DeleteResult {
	return DeleteResult{Acknowledged: true, DeletedCount: n}
}

// fail renders err through the domain error mapping.
func fail(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.NewErrorResponse(message, "VALIDATION_ERROR"))
}

func forbidden() error {
	return echo.NewHTTPError(http.StatusForbidden, errors.NewErrorResponse(errors.ErrForbidden.Error(), "FORBIDDEN"))
}

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err.Error())
	}
	return nil
}

// callerEmail returns the email of the verified token holder.
func callerEmail(c echo.Context) (string, error) {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return "", fail(errors.ErrUnauthorized)
	}
	return claims.Email, nil
}

// scopedEmail resolves an optional email query parameter against the caller.
// An empty parameter means the caller; another user's email is forbidden.
func scopedEmail(c echo.Context) (string, error) {
	caller, err := callerEmail(c)
	if err != nil {
		return "", err
	}
	email := c.QueryParam("email")
	if email == "" || email == caller {
		return caller, nil
	}
	return "", forbidden()
}
