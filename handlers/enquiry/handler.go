package enquiry

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/services"
	"github.com/greenvalley-school/school-cms-api/utils/response"
	"github.com/greenvalley-school/school-cms-api/utils/validation"
	"gorm.io/gorm"
)

// EnquiryHandler handles the four public enquiry form collections.
// Visitors create enquiries; admins list and delete them. There is no update.
type EnquiryHandler struct {
	db        *gorm.DB
	validator *validation.Validator
	mailer    *services.EmailService
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(db *gorm.DB, mailer *services.EmailService) *EnquiryHandler {
	return &EnquiryHandler{
		db:        db,
		validator: validation.NewValidator(),
		mailer:    mailer,
	}
}

// notify emails the office about a new submission without blocking the request
func (h *EnquiryHandler) notify(enquiryType string, fields map[string]string) {
	if h.mailer == nil {
		return
	}
	go func() {
		if err := h.mailer.SendEnquiryNotification(enquiryType, fields); err != nil {
			log.Printf("Failed to send %s enquiry notification: %v", enquiryType, err)
		}
	}()
}

// listParams reads the admin pagination query parameters
func listParams(c *fiber.Ctx) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	limit, _ = strconv.Atoi(c.Query("limit", "20"))
	return page, limit
}

// paginate runs a count + ordered page query over the given model
func (h *EnquiryHandler) paginate(c *fiber.Ctx, model interface{}, dest interface{}) error {
	page, limit := listParams(c)

	query := h.db.Model(model)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count enquiries")
	}

	pagination := response.CalculatePagination(page, limit, total)
	offset := (pagination.CurrentPage - 1) * pagination.PerPage

	if err := query.Order("created_at DESC").
		Limit(pagination.PerPage).
		Offset(offset).
		Find(dest).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch enquiries")
	}

	return response.Paginated(c, dest, pagination)
}
