package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
	"github.com/amteixeira/uvtrack-backend/internal/service/user"
)

type userServiceMock struct {
	RegisterFunc      func(ctx context.Context, input user.RegisterInput) (*domain.User, error)
	LoginFunc         func(ctx context.Context, input user.LoginInput) (*user.AuthResult, error)
	GetProfileFunc    func(ctx context.Context) (*domain.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
}

func (m *userServiceMock) Register(ctx context.Context, input user.RegisterInput) (*domain.User, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *userServiceMock) Login(ctx context.Context, input user.LoginInput) (*user.AuthResult, error) {
	return m.LoginFunc(ctx, input)
}

func (m *userServiceMock) GetProfile(ctx context.Context) (*domain.User, error) {
	return m.GetProfileFunc(ctx)
}

func (m *userServiceMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.GetByUsernameFunc(ctx, username)
}

func (m *userServiceMock) UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error) {
	return m.UpdateProfileFunc(ctx, input)
}

func TestUserHandler_Register(t *testing.T) {
	t.Parallel()

	svc := &userServiceMock{
		RegisterFunc: func(ctx context.Context, input user.RegisterInput) (*domain.User, error) {
			return &domain.User{ID: uuid.New(), Username: input.Username, Email: input.Email}, nil
		},
	}
	h := NewUserHandler(svc, slog.Default())

	body := `{"username":"ana","email":"ana@example.com","password":"secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}

	var resp userResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Email != "ana@example.com" {
		t.Errorf("email = %q, own profile should include it", resp.Email)
	}
	if !strings.HasPrefix(resp.AvatarURL, "https://www.gravatar.com/avatar/") {
		t.Errorf("avatarUrl = %q", resp.AvatarURL)
	}
}

func TestUserHandler_Register_Conflict(t *testing.T) {
	t.Parallel()

	svc := &userServiceMock{
		RegisterFunc: func(ctx context.Context, input user.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrAlreadyExists
		},
	}
	h := NewUserHandler(svc, slog.Default())

	body := `{"username":"ana","email":"ana@example.com","password":"secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestUserHandler_Login(t *testing.T) {
	t.Parallel()

	svc := &userServiceMock{
		LoginFunc: func(ctx context.Context, input user.LoginInput) (*user.AuthResult, error) {
			return &user.AuthResult{
				AccessToken: "signed-token",
				User:        &domain.User{ID: uuid.New(), Username: "ana"},
			}, nil
		},
	}
	h := NewUserHandler(svc, slog.Default())

	body := `{"email":"ana@example.com","password":"secret-password"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp loginResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.AccessToken != "signed-token" {
		t.Errorf("accessToken = %q", resp.AccessToken)
	}
}

func TestUserHandler_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	svc := &userServiceMock{
		LoginFunc: func(ctx context.Context, input user.LoginInput) (*user.AuthResult, error) {
			return nil, domain.ErrUnauthorized
		},
	}
	h := NewUserHandler(svc, slog.Default())

	body := `{"email":"ana@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestUserHandler_GetUser_HidesEmail(t *testing.T) {
	t.Parallel()

	svc := &userServiceMock{
		GetByUsernameFunc: func(ctx context.Context, username string) (*domain.User, error) {
			if username != "ana" {
				t.Errorf("username = %q, want ana", username)
			}
			return &domain.User{ID: uuid.New(), Username: "ana", Email: "ana@example.com"}, nil
		},
	}
	h := NewUserHandler(svc, slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/users/ana", nil)
	req.SetPathValue("username", "ana")
	rec := httptest.NewRecorder()

	h.GetUser(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "ana@example.com") {
		t.Error("public profile leaks the email address")
	}
}
