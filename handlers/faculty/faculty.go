package faculty

import (
	"context"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/model"
	"github.com/greenvalley-school/school-cms-api/services/spaces"
	"github.com/greenvalley-school/school-cms-api/utils/response"
	"github.com/greenvalley-school/school-cms-api/utils/validation"
	"gorm.io/gorm"
)

// FacultyHandler handles faculty-related requests
type FacultyHandler struct {
	db        *gorm.DB
	validator *validation.Validator
	assets    *spaces.Client
}

// NewFacultyHandler creates a new faculty handler
func NewFacultyHandler(db *gorm.DB, assets *spaces.Client) *FacultyHandler {
	return &FacultyHandler{
		db:        db,
		validator: validation.NewValidator(),
		assets:    assets,
	}
}

// FacultyRequest represents the request body for creating or replacing a
// faculty profile
type FacultyRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Degree       string `json:"degree" validate:"required,max=255"`
	Experience   *int   `json:"experience" validate:"required,gte=0"`
	Subject      string `json:"subject" validate:"required,max=255"`
	Description  string `json:"description" validate:"required"`
	ImageURL     string `json:"image_url" validate:"required,url,max=512"`
	DisplayOrder int    `json:"display_order" validate:"omitempty,gte=0"`
}

// ListFaculty handles GET /api/v1/faculty.
// Lower display orders come first; ties break newest-created-first.
func (h *FacultyHandler) ListFaculty(c *fiber.Ctx) error {
	var faculty []model.Faculty
	if err := h.db.Order("display_order ASC, created_at DESC").Find(&faculty).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch faculty")
	}

	return response.Success(c, faculty)
}

// GetFaculty handles GET /api/v1/faculty/:id
func (h *FacultyHandler) GetFaculty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid faculty member ID")
	}

	var faculty model.Faculty
	if err := h.db.First(&faculty, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Faculty not found")
		}
		return response.InternalServerError(c, "Failed to fetch faculty")
	}

	return response.Success(c, faculty)
}

// CreateFaculty handles POST /api/v1/faculty
func (h *FacultyHandler) CreateFaculty(c *fiber.Ctx) error {
	var req FacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	faculty := model.Faculty{
		Name:         validation.SanitizeString(req.Name),
		Degree:       validation.SanitizeString(req.Degree),
		Experience:   *req.Experience,
		Subject:      validation.SanitizeString(req.Subject),
		Description:  validation.SanitizeString(req.Description),
		ImageURL:     req.ImageURL,
		DisplayOrder: req.DisplayOrder,
	}

	if err := h.db.Create(&faculty).Error; err != nil {
		return response.InternalServerError(c, "Failed to create faculty")
	}

	return response.Created(c, faculty)
}

// UpdateFaculty handles PUT /api/v1/faculty/:id
func (h *FacultyHandler) UpdateFaculty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid faculty member ID")
	}

	var req FacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var faculty model.Faculty
	if err := h.db.First(&faculty, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Faculty not found")
		}
		return response.InternalServerError(c, "Failed to fetch faculty")
	}

	if faculty.ImageURL != "" && faculty.ImageURL != req.ImageURL {
		h.deleteAsset(c.Context(), faculty.ImageURL)
	}

	faculty.Name = validation.SanitizeString(req.Name)
	faculty.Degree = validation.SanitizeString(req.Degree)
	faculty.Experience = *req.Experience
	faculty.Subject = validation.SanitizeString(req.Subject)
	faculty.Description = validation.SanitizeString(req.Description)
	faculty.ImageURL = req.ImageURL
	faculty.DisplayOrder = req.DisplayOrder

	if err := h.db.Save(&faculty).Error; err != nil {
		return response.InternalServerError(c, "Failed to update faculty")
	}

	return response.SuccessWithMessage(c, "Faculty updated successfully", faculty)
}

// DeleteFaculty handles DELETE /api/v1/faculty/:id
func (h *FacultyHandler) DeleteFaculty(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid faculty member ID")
	}

	var faculty model.Faculty
	if err := h.db.First(&faculty, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Faculty not found")
		}
		return response.InternalServerError(c, "Failed to fetch faculty")
	}

	// Best-effort asset cleanup; the record delete proceeds regardless
	if faculty.ImageURL != "" {
		h.deleteAsset(c.Context(), faculty.ImageURL)
	}

	if err := h.db.Delete(&faculty).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete faculty")
	}

	return response.SuccessWithMessage(c, "Faculty deleted successfully", nil)
}

func (h *FacultyHandler) deleteAsset(ctx context.Context, assetURL string) {
	if h.assets == nil {
		return
	}
	if err := h.assets.DeleteByURL(ctx, assetURL); err != nil {
		log.Printf("faculty: failed to delete asset %s: %v", assetURL, err)
	}
}
