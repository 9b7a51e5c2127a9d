package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/model"
	"github.com/greenvalley-school/school-cms-api/utils/auth"
	"github.com/greenvalley-school/school-cms-api/utils/middleware"
	"github.com/greenvalley-school/school-cms-api/utils/response"
)

// SessionExpiry is how long an admin session token stays valid
const SessionExpiry = 24 * time.Hour

// LoginRequest represents an admin login request
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminResponse is the admin shape returned to the dashboard
type AdminResponse struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Admin        AdminResponse `json:"admin"`
	SessionToken string        `json:"session_token"`
	ExpiresIn    int           `json:"expires_in"` // in seconds
}

// Login handles admin login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	ip := c.IP()

	// Find admin by username. The error message must not reveal whether the
	// username existed.
	var admin model.Admin
	if err := h.db.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid username or password")
	}

	// Verify password
	if err := auth.VerifyPassword(admin.PasswordHash, req.Password); err != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid username or password")
	}

	// Clear failed attempts on successful login
	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(c, ip)
	}

	sessionToken, _, err := h.jwtManager.GenerateSessionToken(admin.ID, admin.Username, admin.DisplayName, admin.TokenVersion)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate session token")
	}

	// Set the session cookie consumed by the admin dashboard
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sessionToken,
		Expires:  time.Now().Add(SessionExpiry),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	res := LoginResponse{
		Admin: AdminResponse{
			ID:          admin.ID,
			Username:    admin.Username,
			DisplayName: admin.DisplayName,
			CreatedAt:   admin.CreatedAt,
		},
		SessionToken: sessionToken,
		ExpiresIn:    int(SessionExpiry.Seconds()),
	}

	return response.Success(c, res)
}
