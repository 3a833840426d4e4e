package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"servi-search/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"app error", NewAppError(fiber.StatusNotFound, "Category not found", nil, nil), 404, "Category not found"},
		{"app error default message", NewAppError(fiber.StatusConflict, "", nil, nil), 409, "conflict"},
		{"hidden 5xx", NewAppError(fiber.StatusBadGateway, "upstream said no", nil, errors.New("boom")), 500, "internal server error"},
		{"kept 503", NewAppError(fiber.StatusServiceUnavailable, "catalog missing", nil, nil), 503, "service unavailable"},
		{"fiber error", fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), 405, "nope"},
		{"plain error", errors.New("db down"), 500, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg, _ := normalizeError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	app := fiber.New()
	app.Use(NewErrorMiddleware(zerolog.Nop()).Middleware())
	app.Get("/boom", func(c fiber.Ctx) error { panic("kaput") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestBearerTokenFromHeader(t *testing.T) {
	tok, ok := bearerTokenFromHeader("bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	for _, h := range []string{"", "Bearer", "Basic abc", "Bearer   "} {
		_, ok := bearerTokenFromHeader(h)
		assert.False(t, ok, h)
	}
}

func TestAuthMiddleware_Optional(t *testing.T) {
	svc := jwt.NewHMACService("secret", time.Hour)
	mw := NewAuthMiddleware(svc)

	app := fiber.New()
	app.Use(NewErrorMiddleware(zerolog.Nop()).Middleware())
	app.Get("/who", mw.Optional(), func(c fiber.Ctx) error {
		uid, ok := UserIDFromCtx(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(uid.String())
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/who", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	uid := uuid.New()
	tok, err := svc.GenerateAccessToken(uid, "", "")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var env struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "Invalid token", env.Message)
}
