package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agenthub/agent-api/internal/api/metrics"
	"github.com/agenthub/agent-api/internal/core/domain"
	"github.com/agenthub/agent-api/internal/core/ports"
)

var (
	errInvalidPayload = errors.New("invalid payload")
	errFetchUsers     = errors.New("failed to fetch users")
)

// UserHandler translates HTTP requests into UserService calls and wraps
// every outcome in the response envelope.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /v1/user/add.
//
// @Summary      Create a new user
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /user/add [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "User creation failed", errInvalidPayload)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "User creation failed", err)
	}

	input := ports.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Username: req.Username,
	}
	if req.Settings != nil {
		input.Settings = &domain.UserSettings{Theme: req.Settings.Theme}
	}

	user, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		metrics.EntityOpsTotal.WithLabelValues("user", "create", "error").Inc()
		return respondError(c, http.StatusBadRequest, "User creation failed", err)
	}

	metrics.EntityOpsTotal.WithLabelValues("user", "create", "success").Inc()
	return respond(c, http.StatusCreated, "User created successfully", user)
}

// GetByID handles GET /v1/user/:id.
//
// @Summary      Get a user by ID
// @Tags         user
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /user/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "User not found", err)
	}
	return respond(c, http.StatusOK, "User retrieved successfully", user)
}

// GetAll handles GET /v1/user.
//
// @Summary      Get all users
// @Tags         user
// @Produce      json
// @Success      200  {object}  envelope
// @Failure      500  {object}  envelope
// @Router       /user [get]
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		// Deliberately a fixed message: a list-fetch failure is a server
		// problem and its cause stays in the logs.
		return respondError(c, http.StatusInternalServerError, "Failed to fetch users", errFetchUsers)
	}
	return respondList(c, "Users retrieved successfully", len(users), users)
}

// Update handles PUT /v1/user/:id.
//
// @Summary      Update a user by ID
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "User update failed", errInvalidPayload)
	}

	input := ports.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Username: req.Username,
	}
	if req.Settings != nil {
		input.Settings = &domain.UserSettings{Theme: req.Settings.Theme}
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		metrics.EntityOpsTotal.WithLabelValues("user", "update", "error").Inc()
		return respondError(c, http.StatusBadRequest, "User update failed", err)
	}

	metrics.EntityOpsTotal.WithLabelValues("user", "update", "success").Inc()
	return respond(c, http.StatusOK, "User updated successfully", user)
}

// Delete handles DELETE /v1/user/:id.
//
// @Summary      Delete a user by ID
// @Tags         user
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		metrics.EntityOpsTotal.WithLabelValues("user", "delete", "error").Inc()
		return respondError(c, http.StatusBadRequest, "User deletion failed", err)
	}
	metrics.EntityOpsTotal.WithLabelValues("user", "delete", "success").Inc()
	return respond(c, http.StatusOK, "User deleted successfully", nil)
}

// GetAgents handles GET /v1/user/:userId/agents.
//
// @Summary      Get all agents for a user
// @Tags         user
// @Produce      json
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  envelope
// @Failure      404     {object}  envelope
// @Router       /user/{userId}/agents [get]
func (h *UserHandler) GetAgents(c echo.Context) error {
	agents, err := h.service.GetAgents(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Could not retrieve agents for user", err)
	}
	return respondList(c, "Agents retrieved successfully for user", len(agents), agents)
}
