package middleware

import (
	"fmt"
	"testing"

	"github.com/greenvalley-school/school-cms-api/model"
)

// TestResourceModelCoversAuditedResources verifies that every resource name
// the routes audit with old-value capture resolves to its record type, so
// updates and deletes snapshot the prior state.
func TestResourceModelCoversAuditedResources(t *testing.T) {
	tests := []struct {
		resource string
		want     interface{}
	}{
		{"notices", &model.Notice{}},
		{"banners", &model.Banner{}},
		{"faculty", &model.Faculty{}},
		{"student_achievers", &model.StudentAchiever{}},
		{"campus_visit_enquiries", &model.CampusVisitEnquiry{}},
		{"admission_enquiries", &model.AdmissionEnquiry{}},
		{"fees_enquiries", &model.FeesEnquiry{}},
		{"contact_enquiries", &model.ContactEnquiry{}},
	}

	for _, tt := range tests {
		t.Run(tt.resource, func(t *testing.T) {
			got := resourceModel(tt.resource)
			if got == nil {
				t.Fatalf("Expected a record type for %s, got nil", tt.resource)
			}
			if fmt.Sprintf("%T", got) != fmt.Sprintf("%T", tt.want) {
				t.Errorf("resourceModel(%q) = %T, want %T", tt.resource, got, tt.want)
			}
		})
	}

	if resourceModel("chat_sessions") != nil {
		t.Error("Expected nil for an unknown resource")
	}
}
