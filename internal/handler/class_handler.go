package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"sportszone/internal/model"
	"sportszone/internal/service"
)

// ClassHandler handles class listing and moderation endpoints.
type ClassHandler struct {
	classService service.ClassService
}

// NewClassHandler creates a new class handler.
func NewClassHandler(classService service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// CreateClassRequest describes a new class. The instructor is the caller.
type CreateClassRequest struct {
	ClassName      string          `json:"className" validate:"required"`
	ClassImage     string          `json:"classImage"`
	InstructorName string          `json:"instructorName"`
	Price          decimal.Decimal `json:"price" swaggertype:"number"`
	AvailableSeats int64           `json:"availableSeats" validate:"gte=0"`
}

// ClassData is the editable part of a class.
type ClassData struct {
	ClassID        string          `json:"classId" validate:"required"`
	ClassName      string          `json:"className" validate:"required"`
	ClassImage     string          `json:"classImage"`
	Price          decimal.Decimal `json:"price" swaggertype:"number"`
	AvailableSeats int64           `json:"availableSeats" validate:"gte=0"`
}

// UpdateClassRequest wraps ClassData as sent by the dashboard.
type UpdateClassRequest struct {
	ClassData ClassData `json:"classData"`
}

// ListClasses godoc
// @Summary List all classes
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Class
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classes [get]
func (h *ClassHandler) ListClasses(c echo.Context) error {
	return h.list(c, h.classService.ListClasses)
}

// PopularClasses godoc
// @Summary Top six approved classes by enrollment
// @Tags classes
// @Produce json
// @Success 200 {array} model.Class
// @Router /classes/popular [get]
func (h *ClassHandler) PopularClasses(c echo.Context) error {
	return h.list(c, h.classService.PopularClasses)
}

// ApprovedClasses godoc
// @Summary List approved classes
// @Tags classes
// @Produce json
// @Success 200 {array} model.Class
// @Router /classes/approved [get]
func (h *ClassHandler) ApprovedClasses(c echo.Context) error {
	return h.list(c, h.classService.ApprovedClasses)
}

// DeniedClasses godoc
// @Summary List denied classes
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Class
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classes/denied [get]
func (h *ClassHandler) DeniedClasses(c echo.Context) error {
	return h.list(c, h.classService.DeniedClasses)
}

// InstructorClasses godoc
// @Summary List an instructor's classes with their enrollment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email query string false "Instructor email, must be the caller"
// @Success 200 {array} model.Class
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /payments/enrolled/instructor [get]
func (h *ClassHandler) InstructorClasses(c echo.Context) error {
	email, err := scopedEmail(c)
	if err != nil {
		return err
	}
	classes, err := h.classService.InstructorClasses(c.Request().Context(), email)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) list(c echo.Context, fetch func(context.Context) ([]model.Class, error)) error {
	classes, err := fetch(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, classes)
}

// CreateClass godoc
// @Summary Submit a class for review
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param class body CreateClassRequest true "Class payload"
// @Success 200 {object} InsertResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classes [post]
func (h *ClassHandler) CreateClass(c echo.Context) error {
	var req CreateClassRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	caller, err := callerEmail(c)
	if err != nil {
		return err
	}

	class := &model.Class{
		InstructorEmail: caller,
		InstructorName:  req.InstructorName,
		ClassName:       req.ClassName,
		ClassImage:      req.ClassImage,
		Price:           req.Price,
		AvailableSeats:  req.AvailableSeats,
	}
	if err := h.classService.CreateClass(c.Request().Context(), class); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, inserted(class.ID))
}

// UpdateClass godoc
// @Summary Edit one of the caller's classes
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param class body UpdateClassRequest true "Class data"
// @Success 200 {object} UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classes/update [patch]
func (h *ClassHandler) UpdateClass(c echo.Context) error {
	var req UpdateClassRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	caller, err := callerEmail(c)
	if err != nil {
		return err
	}

	data := req.ClassData
	res, err := h.classService.UpdateDetails(c.Request().Context(), model.ID(data.ClassID), caller, model.ClassDetails{
		ClassName:      data.ClassName,
		ClassImage:     data.ClassImage,
		AvailableSeats: data.AvailableSeats,
		Price:          data.Price,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, updated(res))
}

// UpdateStatus godoc
// @Summary Approve or deny a class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id query string true "Class ID"
// @Param status query string true "New status" Enums(pending, approved, denied)
// @Success 200 {object} UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classes/status [patch]
func (h *ClassHandler) UpdateStatus(c echo.Context) error {
	res, err := h.classService.UpdateStatus(c.Request().Context(), model.ID(c.QueryParam("id")), model.ClassStatus(c.QueryParam("status")))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, updated(res))
}

// UpdateFeedback godoc
// @Summary Leave moderation feedback on a class
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id query string true "Class ID"
// @Param feedback query string true "Feedback text"
// @Success 200 {object} UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /classes/feedback [patch]
func (h *ClassHandler) UpdateFeedback(c echo.Context) error {
	res, err := h.classService.UpdateFeedback(c.Request().Context(), model.ID(c.QueryParam("id")), c.QueryParam("feedback"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, updated(res))
}
