package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/utils/auth"
)

// newProtectedApp mounts a route behind RequireAdmin with no database
// attached. Requests without a valid session token must be rejected before
// the blacklist or admin record is ever consulted.
func newProtectedApp() (*fiber.App, *bool) {
	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: "test-secret-at-least-32-characters!",
		Expiry: time.Hour,
		Issuer: "school-cms-test",
	})
	authMiddleware := NewAuthMiddleware(jwtManager, nil)

	reached := false
	app := fiber.New()
	app.Post("/api/v1/notices", authMiddleware.RequireAdmin(), func(c *fiber.Ctx) error {
		reached = true
		return c.SendStatus(fiber.StatusCreated)
	})
	return app, &reached
}

func TestRequireAdminRejectsMissingToken(t *testing.T) {
	app, reached := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest("POST", "/api/v1/notices", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", resp.StatusCode)
	}
	if *reached {
		t.Error("Handler ran without a session token")
	}
}

func TestRequireAdminRejectsInvalidToken(t *testing.T) {
	cases := []struct {
		name   string
		cookie string
		header string
	}{
		{"garbage cookie", "not-a-jwt", ""},
		{"malformed bearer header", "", "Bearer-without-space"},
		{"garbage bearer token", "", "Bearer not-a-jwt"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			app, reached := newProtectedApp()

			req := httptest.NewRequest("POST", "/api/v1/notices", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != fiber.StatusUnauthorized {
				t.Errorf("Expected 401, got %d", resp.StatusCode)
			}
			if *reached {
				t.Error("Handler ran with an invalid session token")
			}
		})
	}
}
