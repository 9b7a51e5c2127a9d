package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/utils/middleware"
	"github.com/greenvalley-school/school-cms-api/utils/response"
)

// Logout revokes the current session token and clears the session cookie
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := middleware.GetClaims(c)
	if !ok || claims == nil {
		return response.Unauthorized(c, "Not authenticated")
	}

	expiresAt := time.Now().Add(SessionExpiry)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := h.blacklistService.RevokeToken(c.Context(), claims.ID, claims.AdminID, expiresAt, "logout"); err != nil {
		return response.InternalServerError(c, "Failed to revoke session")
	}

	// Expire the cookie
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return response.SuccessWithMessage(c, "Logged out successfully", nil)
}
