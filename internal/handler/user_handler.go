package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sportszone/internal/model"
	"sportszone/internal/service"
)

// UserHandler handles user, role and instructor endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest registers a user. New users are always students.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// AdminStatus answers GET /users/admin/:email.
type AdminStatus struct {
	Admin bool `json:"admin"`
}

// InstructorStatus answers GET /users/instructor/:email.
type InstructorStatus struct {
	Instructor bool `json:"instructor"`
}

// CreateUser godoc
// @Summary Register a user
// @Description Creates a student account. An existing email yields a message instead of a second document.
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 200 {object} InsertResult
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user := &model.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
		Role:     model.RoleStudent,
	}
	created, err := h.svc.CreateUser(c.Request().Context(), user)
	if err != nil {
		return fail(err)
	}
	if !created {
		return c.JSON(http.StatusOK, MessageResponse{Message: "User already exists"})
	}
	return c.JSON(http.StatusOK, inserted(user.ID))
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, users)
}

// ListInstructors godoc
// @Summary List instructors
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Router /users/instructors [get]
func (h *UserHandler) ListInstructors(c echo.Context) error {
	users, err := h.svc.ListInstructors(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, users)
}

// PopularInstructors godoc
// @Summary Top instructors by enrollment
// @Tags users
// @Produce json
// @Success 200 {array} model.InstructorStats
// @Router /instructors/popular [get]
func (h *UserHandler) PopularInstructors(c echo.Context) error {
	stats, err := h.svc.PopularInstructors(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// IsAdmin godoc
// @Summary Check whether the caller is an admin
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Caller email"
// @Success 200 {object} AdminStatus
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/admin/{email} [get]
func (h *UserHandler) IsAdmin(c echo.Context) error {
	ok, err := h.hasRole(c, model.RoleAdmin)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, AdminStatus{Admin: ok})
}

// IsInstructor godoc
// @Summary Check whether the caller is an instructor
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "Caller email"
// @Success 200 {object} InstructorStatus
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/instructor/{email} [get]
func (h *UserHandler) IsInstructor(c echo.Context) error {
	ok, err := h.hasRole(c, model.RoleInstructor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, InstructorStatus{Instructor: ok})
}

func (h *UserHandler) hasRole(c echo.Context, role model.Role) (bool, error) {
	caller, err := callerEmail(c)
	if err != nil {
		return false, err
	}
	ok, err := h.svc.HasRole(c.Request().Context(), caller, c.Param("email"), role)
	if err != nil {
		return false, fail(err)
	}
	return ok, nil
}

// UpdateRole godoc
// @Summary Change a user's role
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id query string true "User ID"
// @Param role query string true "New role" Enums(student, instructor, admin)
// @Success 200 {object} UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/role [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	res, err := h.svc.UpdateRole(c.Request().Context(), model.ID(c.QueryParam("id")), model.Role(c.QueryParam("role")))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, updated(res))
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id query string true "User ID"
// @Success 200 {object} DeleteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	n, err := h.svc.DeleteUser(c.Request().Context(), model.ID(c.QueryParam("id")))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, deleted(n))
}
