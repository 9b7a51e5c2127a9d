// migrate_gorm.go - Run this file to test GORM migrations
// Usage: go run migrate_gorm.go

//go:build ignore

package main

import (
	"log"

	"github.com/greenvalley-school/school-cms-api/config"
	"github.com/greenvalley-school/school-cms-api/database"
)

func main() {
	log.Println("=== GORM Migration Test ===")

	// Load environment variables
	if err := config.LoadENV(); err != nil {
		log.Fatal("Failed to load environment variables:", err)
	}

	// Initialize GORM connection
	store, err := database.StartGORM()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer store.Close()

	// Run migrations
	if err := store.Init(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Health check
	if err := store.HealthCheck(); err != nil {
		log.Fatal("Database health check failed:", err)
	}

	log.Println("✅ All migrations completed successfully!")
	log.Println("✅ Database connection healthy!")
	log.Println("\nYou can now check your PostgreSQL database to see the new tables:")
	log.Println("  - admins")
	log.Println("  - notices")
	log.Println("  - banners")
	log.Println("  - faculty")
	log.Println("  - student_achievers")
	log.Println("  - campus_visit_enquiries")
	log.Println("  - admission_enquiries")
	log.Println("  - fees_enquiries")
	log.Println("  - contact_enquiries")
	log.Println("  - jwt_token_blacklist")
	log.Println("  - cron_job_logs")
	log.Println("  - admin_audit_logs")
}
