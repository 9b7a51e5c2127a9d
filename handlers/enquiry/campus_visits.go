package enquiry

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/model"
	"github.com/greenvalley-school/school-cms-api/utils/response"
	"github.com/greenvalley-school/school-cms-api/utils/validation"
	"gorm.io/gorm"
)

// CampusVisitRequest represents a public campus visit form submission
type CampusVisitRequest struct {
	Name              string `json:"name" validate:"required,max=255"`
	Phone             string `json:"phone" validate:"required,min=7,max=20"`
	Email             string `json:"email" validate:"omitempty,email,max=255"`
	Grade             string `json:"grade" validate:"required,max=50"`
	VisitReason       string `json:"visit_reason" validate:"required,oneof=admission campus_tour meeting other"`
	PreferredTimeSlot string `json:"preferred_time_slot" validate:"required,oneof=morning afternoon evening"`
	Message           string `json:"message" validate:"omitempty"`
}

// CreateCampusVisit handles POST /api/v1/enquiries/campus-visits (public)
func (h *EnquiryHandler) CreateCampusVisit(c *fiber.Ctx) error {
	var req CampusVisitRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	enquiry := model.CampusVisitEnquiry{
		Name:              validation.SanitizeString(req.Name),
		Phone:             validation.SanitizeString(req.Phone),
		Email:             validation.SanitizeString(req.Email),
		Grade:             validation.SanitizeString(req.Grade),
		VisitReason:       model.VisitReason(req.VisitReason),
		PreferredTimeSlot: model.TimeSlot(req.PreferredTimeSlot),
		Message:           validation.SanitizeString(req.Message),
	}

	if err := h.db.Create(&enquiry).Error; err != nil {
		return response.InternalServerError(c, "Failed to submit enquiry")
	}

	h.notify("campus visit", map[string]string{
		"Name":      enquiry.Name,
		"Phone":     enquiry.Phone,
		"Grade":     enquiry.Grade,
		"Reason":    string(enquiry.VisitReason),
		"Time slot": string(enquiry.PreferredTimeSlot),
	})

	return response.Created(c, enquiry)
}

// ListCampusVisits handles GET /api/v1/enquiries/campus-visits (admin)
func (h *EnquiryHandler) ListCampusVisits(c *fiber.Ctx) error {
	var enquiries []model.CampusVisitEnquiry
	return h.paginate(c, &model.CampusVisitEnquiry{}, &enquiries)
}

// GetCampusVisit handles GET /api/v1/enquiries/campus-visits/:id (admin)
func (h *EnquiryHandler) GetCampusVisit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid enquiry ID")
	}

	var enquiry model.CampusVisitEnquiry
	if err := h.db.First(&enquiry, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return response.NotFound(c, "Enquiry not found")
		}
		return response.InternalServerError(c, "Failed to fetch enquiry")
	}

	return response.Success(c, enquiry)
}

// DeleteCampusVisit handles DELETE /api/v1/enquiries/campus-visits/:id (admin)
func (h *EnquiryHandler) DeleteCampusVisit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid enquiry ID")
	}

	var enquiry model.CampusVisitEnquiry
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
