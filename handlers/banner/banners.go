package banner

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/model"
	"github.com/greenvalley-school/school-cms-api/services/spaces"
	"github.com/greenvalley-school/school-cms-api/utils/response"
	"github.com/greenvalley-school/school-cms-api/utils/validation"
	"gorm.io/gorm"
)

// BannerHandler handles banner-related requests
type BannerHandler struct {
	db        *gorm.DB
	validator *validation.Validator
	assets    *spaces.Client
}

// NewBannerHandler creates a new banner handler
func NewBannerHandler(db *gorm.DB, assets *spaces.Client) *BannerHandler {
	return &BannerHandler{
		db:        db,
		validator: validation.NewValidator(),
		assets:    assets,
	}
}

// BannerRequest represents the request body for creating or replacing a banner
type BannerRequest struct {
	Title    string     `json:"title" validate:"omitempty,max=255"`
	Message  string     `json:"message" validate:"omitempty"`
	ImageURL string     `json:"image_url" validate:"required,url,max=512"`
	IsActive *bool      `json:"is_active" validate:"omitempty"`
	StartsAt *time.Time `json:"starts_at" validate:"omitempty"`
	EndsAt   *time.Time `json:"ends_at" validate:"omitempty"`
}

// ListBanners handles GET /api/v1/banners
func (h *BannerHandler) ListBanners(c *fiber.Ctx) error {
	query := h.db.Model(&model.Banner{})

	if active := c.Query("active", ""); active == "true" {
		query = query.Where("is_active = ?", true)
	} else if active == "false" {
		query = query.Where("is_active = ?", false)
	}

	var banners []model.Banner
	if err := query.Order("created_at DESC").Find(&banners).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch banners")
	}

	return response.Success(c, banners)
}

// GetActiveBanner handles GET /api/v1/banners/active (drives the banner popup).
// Eligible banners are active, carry an image, and sit inside their validity
// window; the newest one wins.
func (h *BannerHandler) GetActiveBanner(c *fiber.Ctx) error {
	banner, err := ActiveBanner(h.db)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch banner")
	}
	if banner == nil {
		return response.NotFound(c, "No active banner")
	}

	return response.Success(c, banner)
}

// ActiveBanner returns the newest eligible banner, or nil when none qualifies
func ActiveBanner(db *gorm.DB) (*model.Banner, error) {
	now := time.Now()

	var banner model.Banner
	err := db.
		Where("is_active = ? AND image_url <> ''", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		Order("created_at DESC").
		First(&banner).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &banner, nil
}

// GetBanner handles GET /api/v1/banners/:id
func (h *BannerHandler) GetBanner(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid banner ID")
	}

	var banner model.Banner
	if err := h.db.First(&banner, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Banner not found")
		}
		return response.InternalServerError(c, "Failed to fetch banner")
	}

	return response.Success(c, banner)
}

// CreateBanner handles POST /api/v1/banners
func (h *BannerHandler) CreateBanner(c *fiber.Ctx) error {
	var req BannerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	banner := model.Banner{
		Title:    validation.SanitizeString(req.Title),
		Message:  validation.SanitizeString(req.Message),
		ImageURL: req.ImageURL,
		IsActive: isActive,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}

	if err := h.db.Create(&banner).Error; err != nil {
		return response.InternalServerError(c, "Failed to create banner")
	}

	return response.Created(c, banner)
}

// UpdateBanner handles PUT /api/v1/banners/:id. Visibility is normally toggled
// here via the active flag rather than deleting the banner.
func (h *BannerHandler) UpdateBanner(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid banner ID")
	}

	var req BannerRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var banner model.Banner
	if err := h.db.First(&banner, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Banner not found")
		}
		return response.InternalServerError(c, "Failed to fetch banner")
	}

	if banner.ImageURL != "" && banner.ImageURL != req.ImageURL {
		h.deleteAsset(c.Context(), banner.ImageURL)
	}

	banner.Title = validation.SanitizeString(req.Title)
	banner.Message = validation.SanitizeString(req.Message)
	banner.ImageURL = req.ImageURL
	if req.IsActive != nil {
		banner.IsActive = *req.IsActive
	}
	banner.StartsAt = req.StartsAt
	banner.EndsAt = req.EndsAt

	if err := h.db.Save(&banner).Error; err != nil {
		return response.InternalServerError(c, "Failed to update banner")
	}

	return response.SuccessWithMessage(c, "Banner updated successfully", banner)
}

// DeleteBanner handles DELETE /api/v1/banners/:id
func (h *BannerHandler) DeleteBanner(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid banner ID")
	}

	var banner model.Banner
	if err := h.db.First(&banner, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Banner not found")
		}
		return response.InternalServerError(c, "Failed to fetch banner")
	}

	// Best-effort asset cleanup; the record delete proceeds regardless
	if banner.ImageURL != "" {
		h.deleteAsset(c.Context(), banner.ImageURL)
	}

	if err := h.db.Delete(&banner).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete banner")
	}

	return response.SuccessWithMessage(c, "Banner deleted successfully", nil)
}

func (h *BannerHandler) deleteAsset(ctx context.Context, assetURL string) {
	if h.assets == nil {
		return
	}
	if err := h.assets.DeleteByURL(ctx, assetURL); err != nil {
		log.Printf("banner: failed to delete asset %s: %v", assetURL, err)
	}
}
