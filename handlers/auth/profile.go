package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/utils/middleware"
	"github.com/greenvalley-school/school-cms-api/utils/response"
)

// GetProfile returns the authenticated admin's profile
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	admin, ok := middleware.GetAdmin(c)
	if !ok || admin == nil {
		return response.Unauthorized(c, "Not authenticated")
	}

	return response.Success(c, AdminResponse{
		ID:          admin.ID,
		Username:    admin.Username,
		DisplayName: admin.DisplayName,
		CreatedAt:   admin.CreatedAt,
	})
}
