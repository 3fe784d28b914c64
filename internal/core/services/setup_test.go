package services_test

import (
	"testing"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/repositories"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/config"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/password"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with all tables migrated.
// A single connection keeps the in-memory database alive and shared.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		Port:    "3000",
		JWT: config.JWTConfig{
			Secret:           "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

// newAuthService wires an auth service over the test database. The
// notification service has no webhook configured, so it stays silent.
func newAuthService(t *testing.T, db *gorm.DB) *services.AuthService {
	t.Helper()

	cfg := testConfig()
	return services.NewAuthService(
		repositories.NewUserRepository(db),
		repositories.NewMemberRepository(db),
		repositories.NewStudentRepository(db),
		repositories.NewRefreshTokenRepository(db),
		repositories.NewResetTokenRepository(db),
		services.NewNotificationService(cfg),
		cfg,
	)
}

// newRegistrationService wires a registration service over the test database
func newRegistrationService(t *testing.T, db *gorm.DB) *services.RegistrationService {
	t.Helper()

	cfg := testConfig()
	return services.NewRegistrationService(
		repositories.NewMemberRepository(db),
		repositories.NewStudentRepository(db),
		repositories.NewVolunteerRepository(db),
		repositories.NewFeeStructureRepository(db),
		repositories.NewSequenceRepository(db),
		newAuthService(t, db),
		services.NewNotificationService(cfg),
	)
}

// seedMember inserts a member directly, bypassing the registration flow
func seedMember(t *testing.T, db *gorm.DB, email string, verified bool) *models.Member {
	t.Helper()

	hash, err := password.Hash("secret123")
	require.NoError(t, err)

	member := &models.Member{
		MembershipNo: "MWSS-" + email,
		Name:         "Test Member",
		Email:        email,
		Password:     hash,
		IsVerified:   verified,
		IsActive:     true,
	}
	require.NoError(t, db.Create(member).Error)
	return member
}

// seedStudent inserts a student directly, bypassing the registration flow
func seedStudent(t *testing.T, db *gorm.DB, email string, verified bool) *models.Student {
	t.Helper()

	hash, err := password.Hash("secret123")
	require.NoError(t, err)

	student := &models.Student{
		RegistrationNo: "MWSS-STU-" + email,
		Name:           "Test Student",
		Email:          email,
		FeeLevel:       "primary",
		FeeAmount:      50000,
		Password:       hash,
		IsVerified:     verified,
		IsActive:       true,
	}
	require.NoError(t, db.Create(student).Error)
	return student
}

// seedAdmin inserts a back-office admin user
func seedAdmin(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := password.Hash("admin123456")
	require.NoError(t, err)

	admin := &models.User{
		Name:     "Test Admin",
		Email:    email,
		Password: hash,
		Role:     "ADMIN",
		IsActive: true,
	}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

// seedFeeLevel inserts a fee structure row
func seedFeeLevel(t *testing.T, db *gorm.DB, level string, amount int64) *models.FeeStructure {
	t.Helper()

	fee := &models.FeeStructure{
		Level:    level,
		Name:     "Level " + level,
		Amount:   amount,
		IsActive: true,
	}
	require.NoError(t, db.Create(fee).Error)
	return fee
}
