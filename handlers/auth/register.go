package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/model"
	"github.com/greenvalley-school/school-cms-api/utils/auth"
	"github.com/greenvalley-school/school-cms-api/utils/response"
	"github.com/greenvalley-school/school-cms-api/utils/validation"
)

// RegisterRequest represents a request to create another admin account.
// The route sits behind the admin session gate; self-registration is not
// reachable without an existing session.
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=30"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"display_name" validate:"required,min=2,max=255"`
}

// Register creates a new admin account
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	if ok, msg := validation.ValidateUsername(req.Username); !ok {
		return response.BadRequest(c, msg)
	}

	// Check for duplicate username
	var existing model.Admin
	if err := h.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return response.Conflict(c, "Username is already taken")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		if err == auth.ErrPasswordTooShort {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to hash password")
	}

	admin := model.Admin{
		Username:     req.Username,
		PasswordHash: passwordHash,
		DisplayName:  validation.SanitizeString(req.DisplayName),
	}

	if err := h.db.Create(&admin).Error; err != nil {
		return response.InternalServerError(c, "Failed to create admin")
	}

	return response.Created(c, AdminResponse{
		ID:          admin.ID,
		Username:    admin.Username,
		DisplayName: admin.DisplayName,
		CreatedAt:   admin.CreatedAt,
	})
}
