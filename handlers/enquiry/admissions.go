package enquiry

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/model"
	"github.com/greenvalley-school/school-cms-api/utils/response"
	"github.com/greenvalley-school/school-cms-api/utils/validation"
	"gorm.io/gorm"
)

// AdmissionRequest represents a public admission enquiry form submission
type AdmissionRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	ParentName string `json:"parent_name" validate:"omitempty,max=255"`
	Phone      string `json:"phone" validate:"required,min=7,max=20"`
	Email      string `json:"email" validate:"omitempty,email,max=255"`
	Grade      string `json:"grade" validate:"required,max=50"`
	Message    string `json:"message" validate:"omitempty"`
}

// CreateAdmission handles POST /api/v1/enquiries/admissions (public)
func (h *EnquiryHandler) CreateAdmission(c *fiber.Ctx) error {
	var req AdmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	enquiry := model.AdmissionEnquiry{
		Name:       validation.SanitizeString(req.Name),
		ParentName: validation.SanitizeString(req.ParentName),
		Phone:      validation.SanitizeString(req.Phone),
		Email:      validation.SanitizeString(req.Email),
		Grade:      validation.SanitizeString(req.Grade),
		Message:    validation.SanitizeString(req.Message),
	}

	if err := h.db.Create(&enquiry).Error; err != nil {
		return response.InternalServerError(c, "Failed to submit enquiry")
	}

	h.notify("admission", map[string]string{
		"Name":        enquiry.Name,
		"Parent name": enquiry.ParentName,
		"Phone":       enquiry.Phone,
		"Grade":       enquiry.Grade,
	})

	return response.Created(c, enquiry)
}

// ListAdmissions handles GET /api/v1/enquiries/admissions (admin)
func (h *EnquiryHandler) ListAdmissions(c *fiber.Ctx) error {
	var enquiries []model.AdmissionEnquiry
	return h.paginate(c, &model.AdmissionEnquiry{}, &enquiries)
}

// GetAdmission handles GET /api/v1/enquiries/admissions/:id (admin)
func (h *EnquiryHandler) GetAdmission(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid enquiry ID")
	}

	var enquiry model.AdmissionEnquiry
	if err := h.db.First(&enquiry, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Enquiry not found")
		}
		return response.InternalServerError(c, "Failed to fetch enquiry")
	}

	return response.Success(c, enquiry)
}

// DeleteAdmission handles DELETE /api/v1/enquiries/admissions/:id (admin)
func (h *EnquiryHandler) DeleteAdmission(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid enquiry ID")
	}

	var enquiry model.AdmissionEnquiry
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
