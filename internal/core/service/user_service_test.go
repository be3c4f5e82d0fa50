package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/agenthub/agent-api/internal/core/domain"
	"github.com/agenthub/agent-api/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository used to exercise the
// service without a database.
type stubUserRepo struct {
	users  map[string]*domain.User
	agents map[string][]domain.Agent
	seq    int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:  make(map[string]*domain.User),
		agents: make(map[string][]domain.Agent),
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		r.seq++
		copy.ID = fmt.Sprintf("user_%d", r.seq)
	}
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, fields map[string]any) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	for k, v := range fields {
		switch k {
		case "email":
			u.Email = v.(string)
		case "password":
			u.Password = v.(string)
		case "username":
			u.Username = v.(string)
		case "role":
			u.Role = v.(string)
		case "settings":
			u.Settings = v.(datatypes.JSONType[domain.UserSettings])
		}
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	if len(r.agents[id]) > 0 {
		return domain.ErrUserHasAgents
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) FindAgentsByUserID(_ context.Context, userID string) ([]domain.Agent, error) {
	out := make([]domain.Agent, 0)
	out = append(out, r.agents[userID]...)
	return out, nil
}

func newTestUserService(repo ports.UserRepository) *UserService {
	return NewUserService(repo, bcrypt.MinCost, zerolog.Nop())
}

func TestUserService_Create_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email:    "a@b.com",
		Password: "pw",
		Role:     "user",
		Username: "a",
		Settings: &domain.UserSettings{Theme: "dark"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.Password == "pw" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("pw")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Settings.Data().Theme != "dark" {
		t.Fatalf("unexpected settings: %+v", user.Settings.Data())
	}

	fetched, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("created user not resolvable by id: %v", err)
	}
	if fetched.Email != "a@b.com" {
		t.Fatalf("unexpected email: %s", fetched.Email)
	}
}

func TestUserService_Create_MissingFields(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())

	cases := []ports.CreateUserInput{
		{Password: "pw", Role: "user", Username: "a"},
		{Email: "a@b.com", Role: "user", Username: "a"},
		{Email: "a@b.com", Password: "pw", Username: "a"},
		{Email: "a@b.com", Password: "pw", Role: "user"},
	}
	for i, input := range cases {
		if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrMissingFields) {
			t.Fatalf("case %d: expected ErrMissingFields, got %v", i, err)
		}
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())

	input := ports.CreateUserInput{Email: "a@b.com", Password: "pw", Role: "user", Username: "a"}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	input.Username = "someone-else"
	input.Password = "other"
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())

	if _, err := svc.GetByID(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Email: "a@b.com", Password: "old-pass", Role: "user", Username: "a",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	oldHash := created.Password

	newPass := "new-pass"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Password: &newPass})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Password == oldHash {
		t.Fatalf("expected a new hash after password update")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte(newPass)); err != nil {
		t.Fatalf("new hash does not match new password: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("old-pass")); err == nil {
		t.Fatalf("old plaintext must not match the new hash")
	}
}

func TestUserService_Update_Partial(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	created, _ := svc.Create(context.Background(), ports.CreateUserInput{
		Email: "a@b.com", Password: "pw", Role: "user", Username: "a",
	})

	name := "renamed"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Username: &name})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Username != "renamed" {
		t.Fatalf("username not updated: %s", updated.Username)
	}
	if updated.Email != "a@b.com" || updated.Role != "user" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := newTestUserService(newStubUserRepo())

	name := "x"
	if _, err := svc.Update(context.Background(), "ghost", ports.UpdateUserInput{Username: &name}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	created, _ := svc.Create(context.Background(), ports.CreateUserInput{
		Email: "a@b.com", Password: "pw", Role: "user", Username: "a",
	})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}

	if err := svc.Delete(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete_RestrictedByAgents(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	created, _ := svc.Create(context.Background(), ports.CreateUserInput{
		Email: "a@b.com", Password: "pw", Role: "user", Username: "a",
	})
	repo.agents[created.ID] = []domain.Agent{{ID: "agent_1", UserID: created.ID, Name: "bot1"}}

	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrUserHasAgents) {
		t.Fatalf("expected ErrUserHasAgents, got %v", err)
	}
}

func TestUserService_GetAgents_EmptyIsNotAnError(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	created, _ := svc.Create(context.Background(), ports.CreateUserInput{
		Email: "a@b.com", Password: "pw", Role: "user", Username: "a",
	})

	agents, err := svc.GetAgents(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected no error for zero agents, got %v", err)
	}
	if agents == nil || len(agents) != 0 {
		t.Fatalf("expected empty slice, got %v", agents)
	}

	// Unknown user ids are not validated here either.
	if _, err := svc.GetAgents(context.Background(), "ghost"); err != nil {
		t.Fatalf("expected no error for unknown user, got %v", err)
	}
}
