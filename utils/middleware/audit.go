package middleware

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminAuditLog records an audit trail entry for admin dashboard writes.
// Attach it after RequireAdmin on mutating routes.
func AdminAuditLog(db *gorm.DB, action, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, ok := GetAdmin(c)
		if !ok || admin == nil {
			return c.Next() // Continue without logging if admin not in context
		}

		// Parse resource ID from params if available
		var resourceID uint
		if id := c.Params("id"); id != "" {
			if parsedID, err := strconv.ParseUint(id, 10, 32); err == nil {
				resourceID = uint(parsedID)
			}
		}

		// Capture request body as "new value" for mutating requests
		var newValue []byte
		if c.Method() == "POST" || c.Method() == "PUT" {
			body := c.Body()
			if len(body) > 0 && json.Valid(body) {
				newValue = append(newValue, body...)
			}
		}

		// Capture the existing record as "old value" for updates and deletes
		var oldValue []byte
		if resourceID > 0 && (c.Method() == "DELETE" || c.Method() == "PUT") {
			if record := resourceModel(resource); record != nil {
				if err := db.First(record, resourceID).Error; err == nil {
					oldValue, _ = json.Marshal(record)
				}
			}
		}

		ip := c.IP()
		userAgent := c.Get("User-Agent")
		description := c.Method() + " " + c.Path()

		// Execute the actual handler
		err := c.Next()

		// Log the action after completion
		go func() {
			auditLog := model.AdminAuditLog{
				AdminID:     admin.ID,
				Action:      action,
				Resource:    resource,
				ResourceID:  resourceID,
				OldValue:    datatypes.JSON(oldValue),
				NewValue:    datatypes.JSON(newValue),
				IPAddress:   ip,
				UserAgent:   userAgent,
				Description: description,
			}

			db.Create(&auditLog)
		}()

		return err
	}
}

// resourceModel maps an audited resource (its table name) to an empty record
// for the old-value snapshot. Returns nil for resources without one.
func resourceModel(resource string) interface{} {
	switch resource {
	case "notices":
		return &model.Notice{}
	case "banners":
		return &model.Banner{}
	case "faculty":
		return &model.Faculty{}
	case "student_achievers":
		return &model.StudentAchiever{}
	case "campus_visit_enquiries":
		return &model.CampusVisitEnquiry{}
	case "admission_enquiries":
		return &model.AdmissionEnquiry{}
	case "fees_enquiries":
		return &model.FeesEnquiry{}
	case "contact_enquiries":
		return &model.ContactEnquiry{}
	default:
		return nil
	}
}
