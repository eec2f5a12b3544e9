package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func TestMiddleware(t *testing.T) {
	repo := newFakeSessionRepo()
	authority := NewAuthority(repo)
	userID := uuid.New()

	session, err := authority.IssueSession(userID)
	if err != nil {
		t.Fatalf("IssueSession: %v", err)
	}

	app := fiber.New()
	app.Get("/whoami", Middleware(authority), func(c *fiber.Ctx) error {
		id, ok := CallerID(c)
		if !ok {
			t.Error("CallerID missing inside protected handler")
		}
		return c.SendString(id.String())
	})

	t.Run("valid cookie passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: session.Token})

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("missing cookie rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})
}
