package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func doRequest(t *testing.T, handler fiber.Handler) (int, Response) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}

	var parsed Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("Failed to parse response %s: %v", body, err)
	}
	return resp.StatusCode, parsed
}

func TestSuccess(t *testing.T) {
	status, parsed := doRequest(t, func(c *fiber.Ctx) error {
		return Success(c, fiber.Map{"id": 1})
	})
	if status != fiber.StatusOK {
		t.Errorf("Expected 200, got %d", status)
	}
	if !parsed.Success {
		t.Error("Expected success=true")
	}
}

func TestValidationErrorIsBadRequest(t *testing.T) {
	status, parsed := doRequest(t, func(c *fiber.Ctx) error {
		return ValidationError(c, errors.New("name is required"))
	})
	if status != fiber.StatusBadRequest {
		t.Errorf("Expected 400 for validation errors, got %d", status)
	}
	if parsed.Success {
		t.Error("Expected success=false")
	}
	if parsed.Error == nil || parsed.Error.Code == "" {
		t.Error("Expected an error code in the body")
	}
}

func TestNotFound(t *testing.T) {
	status, parsed := doRequest(t, func(c *fiber.Ctx) error {
		return NotFound(c, "Notice not found")
	})
	if status != fiber.StatusNotFound {
		t.Errorf("Expected 404, got %d", status)
	}
	if parsed.Error == nil || parsed.Error.Message != "Notice not found" {
		t.Errorf("Expected error message passed through, got %+v", parsed.Error)
	}
}

func TestInternalServerErrorHidesDetails(t *testing.T) {
	status, parsed := doRequest(t, func(c *fiber.Ctx) error {
		return InternalServerError(c, "Failed to fetch notices")
	})
	if status != fiber.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", status)
	}
	if parsed.Error == nil {
		t.Fatal("Expected an error body")
	}
}

func TestCalculatePagination(t *testing.T) {
	meta := CalculatePagination(2, 20, 45)
	if meta.CurrentPage != 2 {
		t.Errorf("Expected page 2, got %d", meta.CurrentPage)
	}
	if meta.TotalPages != 3 {
		t.Errorf("Expected 3 total pages, got %d", meta.TotalPages)
	}
	if meta.Total != 45 {
		t.Errorf("Expected total 45, got %d", meta.Total)
	}
}
