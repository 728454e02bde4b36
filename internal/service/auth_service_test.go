package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"artshare/internal/models"
	"artshare/internal/token"
)

// mockUsers is a lightweight in-test mock for repository.Users.
type mockUsers struct {
	FindByEmailFn func(email string) (*models.User, error)
	CreateFn      func(u models.User) (*models.User, error)
	GetByIDFn     func(id string) (*models.User, error)
	ListFn        func() ([]models.User, error)
	UpdateFn      func(u models.User) error
	DeleteFn      func(id string) error

	createCalls []models.User
	findCalls   []string
	deleteCalls []string
}

func (m *mockUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.findCalls = append(m.findCalls, email)
	return m.FindByEmailFn(email)
}

func (m *mockUsers) Create(_ context.Context, u models.User) (*models.User, error) {
	m.createCalls = append(m.createCalls, u)
	return m.CreateFn(u)
}

func (m *mockUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	return m.GetByIDFn(id)
}

func (m *mockUsers) List(_ context.Context) ([]models.User, error) {
	return m.ListFn()
}

func (m *mockUsers) Update(_ context.Context, u models.User) error {
	return m.UpdateFn(u)
}

func (m *mockUsers) Delete(_ context.Context, id string) error {
	m.deleteCalls = append(m.deleteCalls, id)
	return m.DeleteFn(id)
}

// mockTrail records activity calls in memory.
type mockTrail struct {
	recorded []models.ActivityEvent
	err      error
}

func (m *mockTrail) Record(_ context.Context, typ, email, detail string) error {
	m.recorded = append(m.recorded, models.ActivityEvent{Type: typ, Email: email, Detail: detail})
	return m.err
}

func (m *mockTrail) List(_ context.Context, _ ActivityFilter) ([]models.ActivityEvent, error) {
	return m.recorded, nil
}

func newTestTokens(t *testing.T) *token.Manager {
	t.Helper()
	tokens, err := token.NewManager("unit-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return tokens
}

// --- Register tests ---

func TestAuthService_Register_CreatesUserVerbatim(t *testing.T) {
	mock := &mockUsers{
		FindByEmailFn: func(email string) (*models.User, error) { return nil, nil },
		CreateFn:      func(u models.User) (*models.User, error) { return &u, nil },
	}
	trail := &mockTrail{}
	svc := NewAuthService(mock, newTestTokens(t), trail)

	created, err := svc.Register(context.Background(), "amy", "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if created == nil {
		t.Fatal("expected created user, got nil")
	}
	if created.ID == "" {
		t.Error("expected server-generated id")
	}
	if created.Username != "amy" || created.Email != "a@x.com" {
		t.Errorf("unexpected user fields: %+v", created)
	}
	if created.Password != "pw1" {
		t.Errorf("expected password stored verbatim, got %q", created.Password)
	}
	if created.Role != "" {
		t.Errorf("expected role unset, got %q", created.Role)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	if len(trail.recorded) != 1 || trail.recorded[0].Type != EventRegister {
		t.Fatalf("expected one REGISTER event, got %+v", trail.recorded)
	}
}

func TestAuthService_Register_ExistingEmail(t *testing.T) {
	mock := &mockUsers{
		FindByEmailFn: func(email string) (*models.User, error) {
			return &models.User{ID: "u-1", Email: email}, nil
		},
		CreateFn: func(u models.User) (*models.User, error) {
			t.Fatal("Create should not be called when the email exists")
			return nil, nil
		},
	}
	svc := NewAuthService(mock, newTestTokens(t), nil)

	_, err := svc.Register(context.Background(), "amy", "a@x.com", "pw1")
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got: %v", err)
	}
	if len(mock.createCalls) != 0 {
		t.Fatalf("expected no Create calls, got %d", len(mock.createCalls))
	}
}

func TestAuthService_Register_LookupFault(t *testing.T) {
	mock := &mockUsers{
		FindByEmailFn: func(email string) (*models.User, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewAuthService(mock, newTestTokens(t), nil)

	_, err := svc.Register(context.Background(), "amy", "a@x.com", "pw1")
	if err == nil {
		t.Fatal("expected storage fault to surface")
	}
	if errors.Is(err, ErrUserExists) {
		t.Fatal("storage fault must not be reported as a conflict")
	}
}

func TestAuthService_Register_CreateFault(t *testing.T) {
	mock := &mockUsers{
		FindByEmailFn: func(email string) (*models.User, error) { return nil, nil },
		CreateFn: func(u models.User) (*models.User, error) {
			return nil, errors.New("insert failed")
		},
	}
	trail := &mockTrail{}
	svc := NewAuthService(mock, newTestTokens(t), trail)

	_, err := svc.Register(context.Background(), "amy", "a@x.com", "pw1")
	if err == nil {
		t.Fatal("expected storage fault to surface")
	}
	if len(trail.recorded) != 0 {
		t.Fatalf("expected no events after failed create, got %+v", trail.recorded)
	}
}

// --- Login tests ---

func TestAuthService_Login_Success(t *testing.T) {
	stored := &models.User{ID: "u-7", Username: "amy", Email: "a@x.com", Password: "pw1"}
	mock := &mockUsers{
		FindByEmailFn: func(email string) (*models.User, error) {
			if email != "a@x.com" {
				t.Fatalf("expected lookup by a@x.com, got %q", email)
			}
			return stored, nil
		},
	}
	trail := &mockTrail{}
	svc := NewAuthService(mock, newTestTokens(t), trail)

	tok, err := svc.Login(context.Background(), "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if tok == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.ParseToken(tok)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.UserID != "u-7" || claims.Email != "a@x.com" {
		t.Fatalf("token claims mismatch: %+v", claims)
	}

	if len(trail.recorded) != 1 || trail.recorded[0].Type != EventLogin {
		t.Fatalf("expected one LOGIN event, got %+v", trail.recorded)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mock := &mockUsers{
		FindByEmailFn: func(email string) (*models.User, error) { return nil, nil },
	}
	trail := &mockTrail{}
	svc := NewAuthService(mock, newTestTokens(t), trail)

	// Any password: the existence check comes first.
	_, err := svc.Login(context.Background(), "missing@x.com", "anything")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got: %v", err)
	}
	if len(trail.recorded) != 1 || trail.recorded[0].Type != EventLoginFailed {
		t.Fatalf("expected one LOGIN_FAILED event, got %+v", trail.recorded)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mock := &mockUsers{
		FindByEmailFn: func(email string) (*models.User, error) {
			return &models.User{ID: "u-1", Email: email, Password: "pw1"}, nil
		},
	}
	svc := NewAuthService(mock, newTestTokens(t), nil)

	_, err := svc.Login(context.Background(), "a@x.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestAuthService_Login_StorageFault(t *testing.T) {
	mock := &mockUsers{
		FindByEmailFn: func(email string) (*models.User, error) {
			return nil, errors.New("query failed")
		},
	}
	svc := NewAuthService(mock, newTestTokens(t), nil)

	_, err := svc.Login(context.Background(), "a@x.com", "pw1")
	if err == nil {
		t.Fatal("expected storage fault to surface")
	}
	if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("storage fault must stay internal, got: %v", err)
	}
}

func TestAuthService_Login_TrailFaultDoesNotChangeOutcome(t *testing.T) {
	stored := &models.User{ID: "u-1", Email: "a@x.com", Password: "pw1"}
	mock := &mockUsers{
		FindByEmailFn: func(email string) (*models.User, error) { return stored, nil },
	}
	trail := &mockTrail{err: errors.New("trail unavailable")}
	svc := NewAuthService(mock, newTestTokens(t), trail)

	tok, err := svc.Login(context.Background(), "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("Login must succeed despite trail fault, got: %v", err)
	}
	if tok == "" {
		t.Fatal("expected non-empty token")
	}
}
