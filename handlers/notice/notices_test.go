package notice

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/utils/response"
)

// newTestApp wires a handler with no database so tests can exercise the
// request parsing and validation paths, which must reject bad input before
// any query runs.
func newTestApp() *fiber.App {
	handler := NewNoticeHandler(nil, nil)

	app := fiber.New()
	app.Get("/api/v1/notices/:id", handler.GetNotice)
	app.Post("/api/v1/notices", handler.CreateNotice)
	return app
}

func parseResponse(t *testing.T, resp io.Reader) response.Response {
	t.Helper()

	body, err := io.ReadAll(resp)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}

	var parsed response.Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("Failed to parse response %s: %v", body, err)
	}
	return parsed
}

func TestGetNoticeRejectsNonNumericID(t *testing.T) {
	app := newTestApp()

	// None of these may reach the database; a raw string passed to a
	// primary-key lookup would be interpolated into the query.
	ids := []string{"abc", "1x", "(1=1)", "1;drop"}

	for _, id := range ids {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/notices/"+id, nil))
		if err != nil {
			t.Fatalf("Request for id %q failed: %v", id, err)
		}

		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("id %q: expected 400, got %d", id, resp.StatusCode)
		}

		parsed := parseResponse(t, resp.Body)
		resp.Body.Close()
		if parsed.Success {
			t.Errorf("id %q: expected success=false", id)
		}
	}
}

func TestCreateNoticeRejectsMissingFields(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"missing content", `{"title": "Sports day"}`},
		{"malformed json", `{"title":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/notices", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("Expected 400, got %d", resp.StatusCode)
			}

			parsed := parseResponse(t, resp.Body)
			if parsed.Success {
				t.Error("Expected success=false")
			}
		})
	}
}
