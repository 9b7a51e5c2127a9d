package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/greenvalley-school/school-cms-api/database"
	"github.com/greenvalley-school/school-cms-api/model"
	"github.com/greenvalley-school/school-cms-api/utils/response"
	"gorm.io/gorm"
)

// recentEnquiryLimit bounds how many fresh submissions the dashboard shows
const recentEnquiryLimit = 5

// GetDashboard retrieves content counts and recent enquiry activity for the
// admin dashboard.
// GET /admin/dashboard
func GetDashboard(c *fiber.Ctx, store database.Storage, stats *database.PostgreSQLStore) error {
	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		return response.InternalServerError(c, "Database connection error")
	}

	counts, err := stats.CollectionCounts()
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch collection counts")
	}

	var recentCampusVisits []model.CampusVisitEnquiry
	db.Order("created_at DESC").Limit(recentEnquiryLimit).Find(&recentCampusVisits)

	var recentAdmissions []model.AdmissionEnquiry
	db.Order("created_at DESC").Limit(recentEnquiryLimit).Find(&recentAdmissions)

	var recentFees []model.FeesEnquiry
	db.Order("created_at DESC").Limit(recentEnquiryLimit).Find(&recentFees)

	var recentContacts []model.ContactEnquiry
	db.Order("created_at DESC").Limit(recentEnquiryLimit).Find(&recentContacts)

	return response.SuccessWithMessage(c, "Dashboard retrieved successfully", fiber.Map{
		"counts": counts,
		"recent_enquiries": fiber.Map{
			"campus_visits": recentCampusVisits,
			"admissions":    recentAdmissions,
			"fees":          recentFees,
			"contacts":      recentContacts,
		},
	})
}

// GetEnquiryTrends retrieves per-day enquiry submission volume for the
// dashboard chart.
// GET /admin/dashboard/enquiry-trends
func GetEnquiryTrends(c *fiber.Ctx, stats *database.PostgreSQLStore) error {
	days := c.QueryInt("days", 30)
	if days < 1 || days > 365 {
		days = 30
	}

	trends := fiber.Map{}
	for label, table := range map[string]string{
		"campus_visits": "campus_visit_enquiries",
		"admissions":    "admission_enquiries",
		"fees":          "fees_enquiries",
		"contacts":      "contact_enquiries",
	} {
		volume, err := stats.EnquiryVolumeByDay(table, days)
		if err != nil {
			return response.InternalServerError(c, "Failed to fetch enquiry trends")
		}
		trends[label] = volume
	}

	return response.SuccessWithMessage(c, "Enquiry trends retrieved successfully", fiber.Map{
		"days":   days,
		"trends": trends,
	})
}
