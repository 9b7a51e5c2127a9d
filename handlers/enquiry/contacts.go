package enquiry

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/model"
	"github.com/greenvalley-school/school-cms-api/utils/response"
	"github.com/greenvalley-school/school-cms-api/utils/validation"
	"gorm.io/gorm"
)

// ContactRequest represents a public contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"omitempty,min=7,max=20"`
	Message string `json:"message" validate:"required"`
}

// CreateContact handles POST /api/v1/enquiries/contacts (public)
func (h *EnquiryHandler) CreateContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	enquiry := model.ContactEnquiry{
		Name:    validation.SanitizeString(req.Name),
		Email:   validation.SanitizeString(req.Email),
		Phone:   validation.SanitizeString(req.Phone),
		Message: validation.SanitizeString(req.Message),
	}

	if err := h.db.Create(&enquiry).Error; err != nil {
		return response.InternalServerError(c, "Failed to submit enquiry")
	}

	h.notify("contact", map[string]string{
		"Name":  enquiry.Name,
		"Email": enquiry.Email,
		"Phone": enquiry.Phone,
	})

	return response.Created(c, enquiry)
}

// ListContacts handles GET /api/v1/enquiries/contacts (admin)
func (h *EnquiryHandler) ListContacts(c *fiber.Ctx) error {
	var enquiries []model.ContactEnquiry
	return h.paginate(c, &model.ContactEnquiry{}, &enquiries)
}

// GetContact handles GET /api/v1/enquiries/contacts/:id (admin)
func (h *EnquiryHandler) GetContact(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid enquiry ID")
	}

	var enquiry model.ContactEnquiry
	if err := h.db.First(&enquiry, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Enquiry not found")
		}
		return response.InternalServerError(c, "Failed to fetch enquiry")
	}

	return response.Success(c, enquiry)
}

// DeleteContact handles DELETE /api/v1/enquiries/contacts/:id (admin)
func (h *EnquiryHandler) DeleteContact(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid enquiry ID")
	}

	var enquiry model.ContactEnquiry
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
