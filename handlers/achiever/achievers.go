package achiever

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

// AchieverHandler handles student achiever requests
type AchieverHandler struct {
	db        *gorm.DB
	validator *validation.Validator
	assets    *spaces.Client
}

// NewAchieverHandler creates a new achiever handler
func NewAchieverHandler(db *gorm.DB, assets *spaces.Client) *AchieverHandler {
	return &AchieverHandler{
		db:        db,
		validator: validation.NewValidator(),
		assets:    assets,
	}
}

// AchieverRequest represents the request body for creating or replacing a
// student achiever record
type AchieverRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	ImageURL     string `json:"image_url" validate:"required,url,max=512"`
	Heading      string `json:"heading" validate:"required,max=255"`
	Description  string `json:"description" validate:"required"`
	DisplayOrder int    `json:"display_order" validate:"omitempty,gte=0"`
}

// ListAchievers handles GET /api/v1/achievers
func (h *AchieverHandler) ListAchievers(c *fiber.Ctx) error {
	var achievers []model.StudentAchiever
	if err := h.db.Order("display_order ASC, created_at DESC").Find(&achievers).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch achievers")
	}

	return response.Success(c, achievers)
}

// GetAchiever handles GET /api/v1/achievers/:id
func (h *AchieverHandler) GetAchiever(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid achiever ID")
	}

	var achiever model.StudentAchiever
	if err := h.db.First(&achiever, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Achiever not found")
		}
		return response.InternalServerError(c, "Failed to fetch achiever")
	}

	return response.Success(c, achiever)
}

// CreateAchiever handles POST /api/v1/achievers
func (h *AchieverHandler) CreateAchiever(c *fiber.Ctx) error {
	var req AchieverRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	achiever := model.StudentAchiever{
		Name:         validation.SanitizeString(req.Name),
		ImageURL:     req.ImageURL,
		Heading:      validation.SanitizeString(req.Heading),
		Description:  validation.SanitizeString(req.Description),
		DisplayOrder: req.DisplayOrder,
	}

	if err := h.db.Create(&achiever).Error; err != nil {
		return response.InternalServerError(c, "Failed to create achiever")
	}

	return response.Created(c, achiever)
}

// UpdateAchiever handles PUT /api/v1/achievers/:id
func (h *AchieverHandler) UpdateAchiever(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid achiever ID")
	}

	var req AchieverRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var achiever model.StudentAchiever
	if err := h.db.First(&achiever, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Achiever not found")
		}
		return response.InternalServerError(c, "Failed to fetch achiever")
	}

	if achiever.ImageURL != "" && achiever.ImageURL != req.ImageURL {
		h.deleteAsset(c.Context(), achiever.ImageURL)
	}

	achiever.Name = validation.SanitizeString(req.Name)
	achiever.ImageURL = req.ImageURL
	achiever.Heading = validation.SanitizeString(req.Heading)
	achiever.Description = validation.SanitizeString(req.Description)
	achiever.DisplayOrder = req.DisplayOrder

	if err := h.db.Save(&achiever).Error; err != nil {
		return response.InternalServerError(c, "Failed to update achiever")
	}

	return response.SuccessWithMessage(c, "Achiever updated successfully", achiever)
}

// DeleteAchiever handles DELETE /api/v1/achievers/:id
func (h *AchieverHandler) DeleteAchiever(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid achiever ID")
	}

	var achiever model.StudentAchiever
	if err := h.db.First(&achiever, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Achiever not found")
		}
		return response.InternalServerError(c, "Failed to fetch achiever")
	}

	// Best-effort asset cleanup; the record delete proceeds regardless
	if achiever.ImageURL != "" {
		h.deleteAsset(c.Context(), achiever.ImageURL)
	}

	if err := h.db.Delete(&achiever).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete achiever")
	}

	return response.SuccessWithMessage(c, "Achiever deleted successfully", nil)
}

func (h *AchieverHandler) deleteAsset(ctx context.Context, assetURL string) {
	if h.assets == nil {
		return
	}
	if err := h.assets.DeleteByURL(ctx, assetURL); err != nil {
		log.Printf("achiever: failed to delete asset %s: %v", assetURL, err)
	}
}
