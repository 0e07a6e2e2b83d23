package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/resumatch/backend/pkg/auth"
)

func testApp(secret, issuer string) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", NewAuthMiddleware(secret, issuer), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId":    c.Locals("userId"),
			"userEmail": c.Locals("userEmail"),
		})
	})
	return app
}

func TestMiddleware_SetsIdentityLocals(t *testing.T) {
	gen := NewGenerator("secret", "resumatch", time.Minute)
	user := auth.User{ID: uuid.New(), Email: "u@example.com", Name: "U"}
	token, err := gen.Generate(context.Background(), user)
	require.NoError(t, err)

	app := testApp("secret", "resumatch")
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddleware_AcceptsBareToken(t *testing.T) {
	gen := NewGenerator("secret", "resumatch", time.Minute)
	token, err := gen.Generate(context.Background(), auth.User{ID: uuid.New(), Email: "u@example.com"})
	require.NoError(t, err)

	app := testApp("secret", "resumatch")
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMiddleware_RejectsMissingHeader(t *testing.T) {
	app := testApp("secret", "resumatch")
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_RejectsWrongSecret(t *testing.T) {
	gen := NewGenerator("other-secret", "resumatch", time.Minute)
	token, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	app := testApp("secret", "resumatch")
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_RejectsWrongIssuer(t *testing.T) {
	gen := NewGenerator("secret", "someone-else", time.Minute)
	token, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	app := testApp("secret", "resumatch")
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddleware_RejectsExpiredToken(t *testing.T) {
	gen := NewGenerator("secret", "resumatch", -time.Minute)
	token, err := gen.Generate(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	app := testApp("secret", "resumatch")
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
