package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/greenvalley-school/school-cms-api/model"
	"github.com/greenvalley-school/school-cms-api/utils/auth"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	if err := s.SeedAdmin(); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	if err := s.SeedNotices(); err != nil {
		return fmt.Errorf("failed to seed notices: %w", err)
	}

	if err := s.SeedBanners(); err != nil {
		return fmt.Errorf("failed to seed banners: %w", err)
	}

	if err := s.SeedFaculty(); err != nil {
		return fmt.Errorf("failed to seed faculty: %w", err)
	}

	if err := s.SeedAchievers(); err != nil {
		return fmt.Errorf("failed to seed achievers: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedAdmin creates the default administrator account.
// Registration is an out-of-band step; this is the supported way to create one.
func (s *Seeder) SeedAdmin() error {
	var count int64
	if err := s.db.Model(&model.Admin{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Admin already exists, skipping...")
		return nil
	}

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" || adminPassword == "" {
		log.Println("⚠️  ADMIN_USERNAME and ADMIN_PASSWORD environment variables not set, skipping admin creation")
		return nil
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	displayName := os.Getenv("ADMIN_DISPLAY_NAME")
	if displayName == "" {
		displayName = "Administrator"
	}

	admin := model.Admin{
		Username:     adminUsername,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
	}

	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Created admin account: %s", adminUsername)
	return nil
}

// SeedNotices creates sample notices for development environments
func (s *Seeder) SeedNotices() error {
	var count int64
	if err := s.db.Model(&model.Notice{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️  Notices already exist, skipping...")
		return nil
	}

	notices := []model.Notice{
		{Title: "Admissions Open 2026-27", Content: "Admissions for the academic year 2026-27 are now open for Nursery to Grade IX.", Date: time.Now()},
		{Title: "Annual Sports Day", Content: "The annual sports day will be held on the school grounds. All parents are invited.", Date: time.Now().AddDate(0, 0, -7)},
	}

	if err := s.db.Create(&notices).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d notices", len(notices))
	return nil
}

// SeedBanners creates a sample active banner
func (s *Seeder) SeedBanners() error {
	var count int64
	if err := s.db.Model(&model.Banner{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️  Banners already exist, skipping...")
		return nil
	}

	banner := model.Banner{
		Title:    "Welcome to Green Valley School",
		Message:  "Nurturing young minds since 1985",
		ImageURL: "https://placehold.co/1200x600",
		IsActive: true,
	}

	if err := s.db.Create(&banner).Error; err != nil {
		return err
	}

	log.Println("✅ Created sample banner")
	return nil
}

// SeedFaculty creates sample faculty profiles
func (s *Seeder) SeedFaculty() error {
	var count int64
	if err := s.db.Model(&model.Faculty{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️  Faculty already exist, skipping...")
		return nil
	}

	faculty := []model.Faculty{
		{Name: "Anita Deshmukh", Degree: "M.Sc., B.Ed.", Experience: 14, Subject: "Mathematics", Description: "Head of the mathematics department.", ImageURL: "https://placehold.co/400x400", DisplayOrder: 1},
		{Name: "Rahul Verma", Degree: "M.A., B.Ed.", Experience: 9, Subject: "English", Description: "Coordinates the middle school English programme.", ImageURL: "https://placehold.co/400x400", DisplayOrder: 2},
	}

	if err := s.db.Create(&faculty).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d faculty profiles", len(faculty))
	return nil
}

// SeedAchievers creates sample student achiever records
func (s *Seeder) SeedAchievers() error {
	var count int64
	if err := s.db.Model(&model.StudentAchiever{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️  Achievers already exist, skipping...")
		return nil
	}

	achiever := model.StudentAchiever{
		Name:         "Sneha Kulkarni",
		ImageURL:     "https://placehold.co/400x400",
		Heading:      "State Science Olympiad Gold",
		Description:  "Secured first place in the state-level science olympiad.",
		DisplayOrder: 1,
	}

	if err := s.db.Create(&achiever).Error; err != nil {
		return err
	}

	log.Println("✅ Created sample achiever")
	return nil
}
