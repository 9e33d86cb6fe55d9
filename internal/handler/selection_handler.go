package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"sportszone/internal/model"
	"sportszone/internal/service"
)

// SelectionHandler handles the student's selected classes.
type SelectionHandler struct {
	selectionService service.SelectionService
}

// NewSelectionHandler creates a new selection handler.
func NewSelectionHandler(selectionService service.SelectionService) *SelectionHandler {
	return &SelectionHandler{selectionService: selectionService}
}

// SelectClassRequest selects a class for later payment. Display fields left
// empty are copied from the class.
type SelectClassRequest struct {
	ClassID         string          `json:"classId" validate:"required"`
	ClassName       string          `json:"className"`
	ClassImage      string          `json:"classImage"`
	InstructorEmail string          `json:"instructorEmail" validate:"omitempty,email"`
	Price           decimal.Decimal `json:"price" swaggertype:"number"`
}

// ListSelected godoc
// @Summary List the caller's selected classes
// @Tags selections
// @Produce json
// @Security BearerAuth
// @Param email query string false "Student email, must be the caller"
// @Success 200 {array} model.SelectedClass
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classes/selected [get]
func (h *SelectionHandler) ListSelected(c echo.Context) error {
	email, err := scopedEmail(c)
	if err != nil {
		return err
	}
	selections, err := h.selectionService.ListSelected(c.Request().Context(), email)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, selections)
}

// SelectClass godoc
// @Summary Select a class
// @Tags selections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param selection body SelectClassRequest true "Selection"
// @Success 200 {object} InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /classes/selected [post]
func (h *SelectionHandler) SelectClass(c echo.Context) error {
	var req SelectClassRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	caller, err := callerEmail(c)
	if err != nil {
		return err
	}

	selection := &model.SelectedClass{
		StudentEmail:    caller,
		ClassID:         req.ClassID,
		ClassName:       req.ClassName,
		ClassImage:      req.ClassImage,
		InstructorEmail: req.InstructorEmail,
		Price:           req.Price,
	}
	if err := h.selectionService.SelectClass(c.Request().Context(), selection); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, inserted(selection.ID))
}

// RemoveSelected godoc
// @Summary Remove a selected class
// @Description Deletes one selection of the class, limited to the given student when email is set.
// @Tags selections
// @Produce json
// @Param id query string true "Class ID"
// @Param email query string false "Student email"
// @Success 200 {object} DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /classes/selected [delete]
func (h *SelectionHandler) RemoveSelected(c echo.Context) error {
	n, err := h.selectionService.RemoveSelected(c.Request().Context(), c.QueryParam("id"), c.QueryParam("email"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, deleted(n))
}
