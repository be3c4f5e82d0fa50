package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agenthub/agent-api/internal/api/metrics"
	"github.com/agenthub/agent-api/internal/core/ports"
)

var errFetchAgents = errors.New("failed to fetch agents")

// AgentHandler translates HTTP requests into AgentService calls.
type AgentHandler struct {
	service ports.AgentService
}

func NewAgentHandler(service ports.AgentService) *AgentHandler {
	return &AgentHandler{service: service}
}

// Create handles POST /v1/agent/add.
//
// @Summary      Create a new agent
// @Tags         agent
// @Accept       json
// @Produce      json
// @Param        body  body      createAgentRequest  true  "Agent details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /agent/add [post]
func (h *AgentHandler) Create(c echo.Context) error {
	var req createAgentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Agent creation failed", errInvalidPayload)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Agent creation failed", err)
	}

	agent, err := h.service.Create(c.Request().Context(), ports.CreateAgentInput{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Settings:    req.Settings,
	})
	if err != nil {
		metrics.EntityOpsTotal.WithLabelValues("agent", "create", "error").Inc()
		return respondError(c, http.StatusBadRequest, "Agent creation failed", err)
	}

	metrics.EntityOpsTotal.WithLabelValues("agent", "create", "success").Inc()
	return respond(c, http.StatusCreated, "Agent created successfully", agent)
}

// GetByID handles GET /v1/agent/:id.
//
// @Summary      Get an agent by ID
// @Tags         agent
// @Produce      json
// @Param        id   path      string  true  "Agent ID"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /agent/{id} [get]
func (h *AgentHandler) GetByID(c echo.Context) error {
	agent, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, "Agent not found", err)
	}
	return respond(c, http.StatusOK, "Agent retrieved successfully", agent)
}

// GetAll handles GET /v1/agent.
//
// @Summary      Get all agents
// @Tags         agent
// @Produce      json
// @Success      200  {object}  envelope
// @Failure      500  {object}  envelope
// @Router       /agent [get]
func (h *AgentHandler) GetAll(c echo.Context) error {
	agents, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return respondError(c, http.StatusInternalServerError, "Failed to fetch agents", errFetchAgents)
	}
	return respondList(c, "Agents retrieved successfully", len(agents), agents)
}

// Update handles PUT /v1/agent/:id.
//
// @Summary      Update an agent by ID
// @Tags         agent
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Agent ID"
// @Param        body  body      updateAgentRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /agent/{id} [put]
func (h *AgentHandler) Update(c echo.Context) error {
	var req updateAgentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "Agent update failed", errInvalidPayload)
	}

	agent, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateAgentInput{
		Name:        req.Name,
		Description: req.Description,
		Settings:    req.Settings,
	})
	if err != nil {
		metrics.EntityOpsTotal.WithLabelValues("agent", "update", "error").Inc()
		return respondError(c, http.StatusBadRequest, "Agent update failed", err)
	}

	metrics.EntityOpsTotal.WithLabelValues("agent", "update", "success").Inc()
	return respond(c, http.StatusOK, "Agent updated successfully", agent)
}

// Delete handles DELETE /v1/agent/:id.
//
// @Summary      Delete an agent by ID
// @Tags         agent
// @Produce      json
// @Param        id   path      string  true  "Agent ID"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Router       /agent/{id} [delete]
func (h *AgentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		metrics.EntityOpsTotal.WithLabelValues("agent", "delete", "error").Inc()
		return respondError(c, http.StatusBadRequest, "Agent deletion failed", err)
	}
	metrics.EntityOpsTotal.WithLabelValues("agent", "delete", "success").Inc()
	return respond(c, http.StatusOK, "Agent deleted successfully", nil)
}
