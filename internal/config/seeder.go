package config

import (
	"log"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}
	if err := s.seedFeeStructures(); err != nil {
		log.Printf("⚠️ Fee structure seeder skipped: %v", err)
	}
	if err := s.seedMenuItems(); err != nil {
		log.Printf("⚠️ Menu seeder skipped: %v", err)
	}
	if err := s.seedSettings(); err != nil {
		log.Printf("⚠️ Settings seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds default admin user
// This is for development/testing only
// In production, create admin through secure process
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).Where("role = ?", "ADMIN").Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:     "Administrator",
		Email:    "admin@manavwelfaresevasociety.com",
		Password: hashedPassword,
		Role:     "ADMIN",
		IsActive: true,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin user created: %s", admin.Email)
	return nil
}

// seedFeeStructures seeds default student fee levels.
// Amounts are in paise.
func (s *Seeder) seedFeeStructures() error {
	var count int64
	s.db.Model(&models.FeeStructure{}).Count(&count)
	if count > 0 {
		return nil
	}

	fees := []models.FeeStructure{
		{Level: "primary", Name: "Primary (Class 1-5)", Amount: 50000, IsActive: true},
		{Level: "middle", Name: "Middle (Class 6-8)", Amount: 75000, IsActive: true},
		{Level: "secondary", Name: "Secondary (Class 9-10)", Amount: 100000, IsActive: true},
		{Level: "senior", Name: "Senior Secondary (Class 11-12)", Amount: 150000, IsActive: true},
	}

	for i := range fees {
		if err := s.db.Create(&fees[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Fee structures seeded: %d levels", len(fees))
	return nil
}

// seedMenuItems seeds the default public navigation
func (s *Seeder) seedMenuItems() error {
	var count int64
	s.db.Model(&models.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	items := []models.MenuItem{
		{Label: "Home", LabelHi: "होम", Path: "/", Icon: "home", SortOrder: 1, IsActive: true},
		{Label: "About Us", LabelHi: "हमारे बारे में", Path: "/about", Icon: "info", SortOrder: 2, IsActive: true},
		{Label: "Events", LabelHi: "कार्यक्रम", Path: "/events", Icon: "calendar", SortOrder: 3, IsActive: true},
		{Label: "News", LabelHi: "समाचार", Path: "/news", Icon: "news", SortOrder: 4, IsActive: true},
		{Label: "Donate", LabelHi: "दान करें", Path: "/donate", Icon: "heart", SortOrder: 5, IsActive: true},
		{Label: "Membership", LabelHi: "सदस्यता", Path: "/membership", Icon: "users", SortOrder: 6, IsActive: true},
		{Label: "Contact", LabelHi: "संपर्क", Path: "/contact", Icon: "mail", SortOrder: 7, IsActive: true},
	}

	for i := range items {
		if err := s.db.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Menu items seeded: %d entries", len(items))
	return nil
}

// seedSettings seeds default site settings
func (s *Seeder) seedSettings() error {
	var count int64
	s.db.Model(&models.Setting{}).Count(&count)
	if count > 0 {
		return nil
	}

	settings := []models.Setting{
		{Key: "org_name", Value: "Manav Welfare Seva Society"},
		{Key: "contact_email", Value: "info@manavwelfaresevasociety.com"},
		{Key: "contact_phone", Value: ""},
		{Key: "upi_id", Value: ""},
		{Key: "payment_qr_url", Value: ""},
	}

	for i := range settings {
		if err := s.db.Create(&settings[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Settings seeded: %d keys", len(settings))
	return nil
}
