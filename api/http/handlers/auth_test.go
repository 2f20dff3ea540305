package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renoplan/renoplan/pkg/auth"
)

type fakeAuthUseCase struct {
	registerResult auth.AuthResult
	registerErr    error
	loginResult    auth.AuthResult
	loginErr       error
}

func (f *fakeAuthUseCase) Register(context.Context, string, string) (auth.AuthResult, error) {
	return f.registerResult, f.registerErr
}

func (f *fakeAuthUseCase) Login(context.Context, string, string) (auth.AuthResult, error) {
	return f.loginResult, f.loginErr
}

func newAuthApp(uc auth.AuthUseCase) *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)
	h := NewAuthHandler(uc, log)
	app := fiber.New()
	app.Post("/auth/register", h.Register)
	app.Post("/auth/login", h.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthHandler_RegisterCreated(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := &fakeAuthUseCase{registerResult: auth.AuthResult{
		User:  auth.User{ID: 5, Email: "alice@example.com", CreatedAt: created},
		Token: "signed-token",
	}}

	resp := postJSON(t, newAuthApp(uc), "/auth/register", `{"email":"alice@example.com","password":"abc12345"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID        int64     `json:"id"`
			Email     string    `json:"email"`
			CreatedAt time.Time `json:"createdAt"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "signed-token", body.Token)
	assert.Equal(t, int64(5), body.User.ID)
	assert.Equal(t, "alice@example.com", body.User.Email)
	assert.True(t, created.Equal(body.User.CreatedAt))
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	t.Parallel()

	uc := &fakeAuthUseCase{registerErr: &auth.ValidationError{Reason: "password must contain a digit"}}
	resp := postJSON(t, newAuthApp(uc), "/auth/register", `{"email":"a@b.co","password":"abcdefgh"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "password must contain a digit", body.Message)
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	t.Parallel()

	uc := &fakeAuthUseCase{registerErr: auth.ErrUserAlreadyExists}
	resp := postJSON(t, newAuthApp(uc), "/auth/register", `{"email":"a@b.co","password":"abc12345"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAuthHandler_RegisterBadJSON(t *testing.T) {
	t.Parallel()

	resp := postJSON(t, newAuthApp(&fakeAuthUseCase{}), "/auth/register", `{"email":`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthHandler_RegisterInternalError(t *testing.T) {
	t.Parallel()

	uc := &fakeAuthUseCase{registerErr: errors.New("pool exhausted")}
	resp := postJSON(t, newAuthApp(uc), "/auth/register", `{"email":"a@b.co","password":"abc12345"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// Internal detail stays out of the response body.
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "pool exhausted")
}

func TestAuthHandler_LoginOK(t *testing.T) {
	t.Parallel()

	uc := &fakeAuthUseCase{loginResult: auth.AuthResult{
		User:  auth.User{ID: 9, Email: "bob@example.com", CreatedAt: time.Now().UTC()},
		Token: "signed-token",
	}}
	resp := postJSON(t, newAuthApp(uc), "/auth/login", `{"email":"bob@example.com","password":"abc12345"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "signed-token", body.Token)
}

func TestAuthHandler_LoginUnauthorized(t *testing.T) {
	t.Parallel()

	uc := &fakeAuthUseCase{loginErr: auth.ErrInvalidCredentials}
	resp := postJSON(t, newAuthApp(uc), "/auth/login", `{"email":"a@b.co","password":"wrong1234"}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "invalid email or password", body.Message)
}

func TestAuthHandler_LoginInternalError(t *testing.T) {
	t.Parallel()

	uc := &fakeAuthUseCase{loginErr: errors.New("connection reset")}
	resp := postJSON(t, newAuthApp(uc), "/auth/login", `{"email":"a@b.co","password":"abc12345"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
