package enquiry

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/model"
	"github.com/greenvalley-school/school-cms-api/utils/response"
	"github.com/greenvalley-school/school-cms-api/utils/validation"
	"gorm.io/gorm"
)

// FeesRequest represents a public fee structure enquiry form submission
type FeesRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Phone   string `json:"phone" validate:"required,min=7,max=20"`
	Email   string `json:"email" validate:"omitempty,email,max=255"`
	Class   string `json:"class" validate:"required,max=50"`
	Message string `json:"message" validate:"omitempty"`
}

// CreateFees handles POST /api/v1/enquiries/fees (public)
func (h *EnquiryHandler) CreateFees(c *fiber.Ctx) error {
	var req FeesRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	enquiry := model.FeesEnquiry{
		Name:    validation.SanitizeString(req.Name),
		Phone:   validation.SanitizeString(req.Phone),
		Email:   validation.SanitizeString(req.Email),
		Class:   validation.SanitizeString(req.Class),
		Message: validation.SanitizeString(req.Message),
	}

	if err := h.db.Create(&enquiry).Error; err != nil {
		return response.InternalServerError(c, "Failed to submit enquiry")
	}

	h.notify("fee structure", map[string]string{
		"Name":  enquiry.Name,
		"Phone": enquiry.Phone,
		"Class": enquiry.Class,
	})

	return response.Created(c, enquiry)
}

// ListFees handles GET /api/v1/enquiries/fees (admin)
func (h *EnquiryHandler) ListFees(c *fiber.Ctx) error {
	var enquiries []model.FeesEnquiry
	return h.paginate(c, &model.FeesEnquiry{}, &enquiries)
}

// GetFees handles GET /api/v1/enquiries/fees/:id (admin)
func (h *EnquiryHandler) GetFees(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid enquiry ID")
	}

	var enquiry model.FeesEnquiry
	if err := h.db.First(&enquiry, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Enquiry not found")
		}
		return response.InternalServerError(c, "Failed to fetch enquiry")
	}

	return response.Success(c, enquiry)
}

// DeleteFees handles DELETE /api/v1/enquiries/fees/:id (admin)
func (h *EnquiryHandler) DeleteFees(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid enquiry ID")
	}

	var enquiry model.FeesEnquiry
	if err := h.db.First(&enquiry, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Enquiry not found")
		}
		return response.InternalServerError(c, "Failed to fetch enquiry")
	}

	if err := h.db.Delete(&enquiry).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete enquiry")
	}

	return response.SuccessWithMessage(c, "Enquiry deleted successfully", nil)
}
