package notice

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

// NoticeHandler handles notice-related requests
type NoticeHandler struct {
	db        *gorm.DB
	validator *validation.Validator
	assets    *spaces.Client
}

// NewNoticeHandler creates a new notice handler
func NewNoticeHandler(db *gorm.DB, assets *spaces.Client) *NoticeHandler {
	return &NoticeHandler{
		db:        db,
		validator: validation.NewValidator(),
		assets:    assets,
	}
}

// NoticeRequest represents the request body for creating or replacing a notice
type NoticeRequest struct {
	Title   string     `json:"title" validate:"required,max=255"`
	Content string     `json:"content" validate:"required"`
	Date    *time.Time `json:"date" validate:"omitempty"`
	PDFURL  string     `json:"pdf_url" validate:"omitempty,url,max=512"`
	PDFName string     `json:"pdf_name" validate:"omitempty,max=255"`
}

// ListNotices handles GET /api/v1/notices
func (h *NoticeHandler) ListNotices(c *fiber.Ctx) error {
	var notices []model.Notice
	if err := h.db.Order("date DESC, created_at DESC").Find(&notices).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch notices")
	}

	return response.Success(c, notices)
}

// GetLatestNotice handles GET /api/v1/notices/latest (drives the notice popup)
func (h *NoticeHandler) GetLatestNotice(c *fiber.Ctx) error {
	notice, err := LatestNotice(h.db)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch notice")
	}
	if notice == nil {
		return response.NotFound(c, "No notices available")
	}

	return response.Success(c, notice)
}

// LatestNotice returns the most recent notice by notice date, or nil when
// the board is empty.
func LatestNotice(db *gorm.DB) (*model.Notice, error) {
	var notice model.Notice
	if err := db.Order("date DESC, created_at DESC").First(&notice).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &notice, nil
}

// GetNotice handles GET /api/v1/notices/:id
func (h *NoticeHandler) GetNotice(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid notice ID")
	}

	var notice model.Notice
	if err := h.db.First(&notice, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Notice not found")
		}
		return response.InternalServerError(c, "Failed to fetch notice")
	}

	return response.Success(c, notice)
}

// CreateNotice handles POST /api/v1/notices
func (h *NoticeHandler) CreateNotice(c *fiber.Ctx) error {
	var req NoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	notice := model.Notice{
		Title:   validation.SanitizeString(req.Title),
		Content: validation.SanitizeString(req.Content),
		Date:    date,
		PDFURL:  req.PDFURL,
		PDFName: validation.SanitizeString(req.PDFName),
	}

	if err := h.db.Create(&notice).Error; err != nil {
		return response.InternalServerError(c, "Failed to create notice")
	}

	return response.Created(c, notice)
}

// UpdateNotice handles PUT /api/v1/notices/:id, replacing the record in place
func (h *NoticeHandler) UpdateNotice(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid notice ID")
	}

	var req NoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var notice model.Notice
	if err := h.db.First(&notice, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Notice not found")
		}
		return response.InternalServerError(c, "Failed to fetch notice")
	}

	// A replaced PDF leaves its predecessor orphaned unless deleted here
	if notice.PDFURL != "" && notice.PDFURL != req.PDFURL {
		h.deleteAsset(c.Context(), notice.PDFURL)
	}

	notice.Title = validation.SanitizeString(req.Title)
	notice.Content = validation.SanitizeString(req.Content)
	if req.Date != nil {
		notice.Date = *req.Date
	}
	notice.PDFURL = req.PDFURL
	notice.PDFName = validation.SanitizeString(req.PDFName)

	if err := h.db.Save(&notice).Error; err != nil {
		return response.InternalServerError(c, "Failed to update notice")
	}

	return response.SuccessWithMessage(c, "Notice updated successfully", notice)
}

// DeleteNotice handles DELETE /api/v1/notices/:id
func (h *NoticeHandler) DeleteNotice(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid notice ID")
	}

	var notice model.Notice
	if err := h.db.First(&notice, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Notice not found")
		}
		return response.InternalServerError(c, "Failed to fetch notice")
	}

	// Best-effort asset cleanup; the record delete proceeds regardless
	if notice.PDFURL != "" {
		h.deleteAsset(c.Context(), notice.PDFURL)
	}

	if err := h.db.Delete(&notice).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete notice")
	}

	return response.SuccessWithMessage(c, "Notice deleted successfully", nil)
}

func (h *NoticeHandler) deleteAsset(ctx context.Context, assetURL string) {
	if h.assets == nil {
		return
	}
	if err := h.assets.DeleteByURL(ctx, assetURL); err != nil {
		log.Printf("notice: failed to delete asset %s: %v", assetURL, err)
	}
}
