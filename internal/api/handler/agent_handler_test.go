package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/agenthub/agent-api/internal/core/domain"
	"github.com/agenthub/agent-api/internal/core/ports"
)

type stubAgentService struct {
	createFn  func(ctx context.Context, input ports.CreateAgentInput) (*domain.Agent, error)
	getByIDFn func(ctx context.Context, id string) (*domain.Agent, error)
	getAllFn  func(ctx context.Context) ([]domain.Agent, error)
	updateFn  func(ctx context.Context, id string, input ports.UpdateAgentInput) (*domain.Agent, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (s *stubAgentService) Create(ctx context.Context, input ports.CreateAgentInput) (*domain.Agent, error) {
	return s.createFn(ctx, input)
}

func (s *stubAgentService) GetByID(ctx context.Context, id string) (*domain.Agent, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubAgentService) GetAll(ctx context.Context) ([]domain.Agent, error) {
	return s.getAllFn(ctx)
}

func (s *stubAgentService) Update(ctx context.Context, id string, input ports.UpdateAgentInput) (*domain.Agent, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubAgentService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestAgentHandler_Create_Success(t *testing.T) {
	stub := &stubAgentService{
		createFn: func(ctx context.Context, input ports.CreateAgentInput) (*domain.Agent, error) {
			if input.UserID != "user_1" || input.Name != "bot1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Agent{ID: "agent_1", UserID: input.UserID, Name: input.Name}, nil
		},
	}
	h := NewAgentHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/agent/add", `{"userId":"user_1","name":"bot1"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	data, _ := resp["data"].(map[string]any)
	if data["name"] != "bot1" || data["userId"] != "user_1" {
		t.Fatalf("unexpected agent payload: %+v", data)
	}
}

func TestAgentHandler_Create_MissingFields(t *testing.T) {
	stub := &stubAgentService{
		createFn: func(ctx context.Context, input ports.CreateAgentInput) (*domain.Agent, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	}
	h := NewAgentHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/agent/add", `{"name":"bot1"}`)
	_ = h.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAgentHandler_Create_UnknownUser(t *testing.T) {
	stub := &stubAgentService{
		createFn: func(ctx context.Context, input ports.CreateAgentInput) (*domain.Agent, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewAgentHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/agent/add", `{"userId":"ghost","name":"bot1"}`)
	_ = h.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if errMsg, _ := resp["error"].(string); !strings.Contains(errMsg, "not found") {
		t.Fatalf("error should mention the missing user: %q", errMsg)
	}
}

func TestAgentHandler_GetByID_NotFound(t *testing.T) {
	stub := &stubAgentService{
		getByIDFn: func(ctx context.Context, id string) (*domain.Agent, error) {
			return nil, domain.ErrAgentNotFound
		},
	}
	h := NewAgentHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/agent/ghost", "")
	c.SetPath("/v1/agent/:id")
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	_ = h.GetByID(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAgentHandler_GetAll(t *testing.T) {
	stub := &stubAgentService{
		getAllFn: func(ctx context.Context) ([]domain.Agent, error) {
			return []domain.Agent{
				{ID: "agent_1", UserID: "user_1", Name: "bot1"},
				{ID: "agent_2", UserID: "user_2", Name: "bot2"},
			}, nil
		},
	}
	h := NewAgentHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/v1/agent", "")
	if err := h.GetAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeEnvelope(t, rec)
	if resp["count"] != float64(2) {
		t.Fatalf("expected count 2, got %v", resp["count"])
	}
}

func TestAgentHandler_Update_OwnerImmutable(t *testing.T) {
	stub := &stubAgentService{
		updateFn: func(ctx context.Context, id string, input ports.UpdateAgentInput) (*domain.Agent, error) {
			if input.Name == nil || *input.Name != "bot2" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Agent{ID: id, UserID: "user_1", Name: "bot2"}, nil
		},
	}
	h := NewAgentHandler(stub)

	// A userId in the body is simply not part of the update schema.
	c, rec := newTestContext(t, http.MethodPut, "/v1/agent/agent_1", `{"name":"bot2","userId":"user_9"}`)
	c.SetPath("/v1/agent/:id")
	c.SetParamNames("id")
	c.SetParamValues("agent_1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	data, _ := resp["data"].(map[string]any)
	if data["userId"] != "user_1" {
		t.Fatalf("owner changed: %+v", data)
	}
}

func TestAgentHandler_Delete_UnknownID(t *testing.T) {
	stub := &stubAgentService{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrAgentNotFound
		},
	}
	h := NewAgentHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/v1/agent/ghost", "")
	c.SetPath("/v1/agent/:id")
	c.SetParamNames("id")
	c.SetParamValues("ghost")
	_ = h.Delete(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
