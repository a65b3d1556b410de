package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-resume-backend/pkg/auth"
	"ai-resume-backend/pkg/security/jwt"
)

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	gen := jwt.NewGenerator("test-secret", "ai-resume-backend", time.Hour)
	handler := NewAuthHandler(auth.NewAuthService(gen))
	app := fiber.New()
	app.Post("/auth/login", handler.Login)
	return app
}

func loginRequestJSON(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoginIssuesToken(t *testing.T) {
	app := newAuthApp(t)

	resp, err := app.Test(loginRequestJSON(`{"email":"user@example.com","password":"anything"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		User    struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, "Login successful", out.Message)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "user@example.com", out.User.Email)
	assert.NotEmpty(t, out.User.ID)
}

func TestLoginSameEmailSameID(t *testing.T) {
	app := newAuthApp(t)

	var ids [2]string
	for i := range ids {
		resp, err := app.Test(loginRequestJSON(`{"email":"user@example.com","password":"pw"}`))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out struct {
			User struct {
				ID string `json:"id"`
			} `json:"user"`
		}
		decodeBody(t, resp, &out)
		ids[i] = out.User.ID
	}
	assert.Equal(t, ids[0], ids[1])
}

func TestLoginValidation(t *testing.T) {
	app := newAuthApp(t)

	resp, err := app.Test(loginRequestJSON(`not json`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(loginRequestJSON(`{"email":"","password":"pw"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(loginRequestJSON(`{"email":"user@example.com","password":""}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
