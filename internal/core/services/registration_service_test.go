package services_test

import (
	"context"
	"testing"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/domain"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMember(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(t, db)
	ctx := context.Background()

	t.Run("Successful registration", func(t *testing.T) {
		resp, err := svc.RegisterMember(ctx, &services.RegisterMemberInput{
			Name:     "Ramesh Kumar",
			Email:    "ramesh@example.com",
			Phone:    "9876543210",
			City:     "Rohtak",
			Password: "secret123",
		})
		require.NoError(t, err)

		assert.Equal(t, "MWSS-0001", resp.Account.Number)
		assert.Equal(t, domain.KindMember, resp.Account.Kind)
		assert.False(t, resp.Account.IsVerified, "new members must start unverified")
		assert.True(t, resp.Account.IsActive)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("Membership numbers increment", func(t *testing.T) {
		resp, err := svc.RegisterMember(ctx, &services.RegisterMemberInput{
			Name:     "Suresh Kumar",
			Email:    "suresh@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "MWSS-0002", resp.Account.Number)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		_, err := svc.RegisterMember(ctx, &services.RegisterMemberInput{
			Name:     "Ramesh Again",
			Email:    "ramesh@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, services.ErrDuplicateEmail)
	})

	t.Run("Invalid email", func(t *testing.T) {
		_, err := svc.RegisterMember(ctx, &services.RegisterMemberInput{
			Name:     "No Email",
			Email:    "not-an-email",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, services.ErrInvalidEmail)
	})

	t.Run("Password too short", func(t *testing.T) {
		_, err := svc.RegisterMember(ctx, &services.RegisterMemberInput{
			Name:     "Short Password",
			Email:    "short@example.com",
			Password: "abc",
		})
		assert.ErrorIs(t, err, services.ErrPasswordTooShort)
	})

	t.Run("Password is stored hashed", func(t *testing.T) {
		var hash string
		err := db.Table("members").
			Where("email = ?", "ramesh@example.com").
			Select("password").
			Scan(&hash).Error
		require.NoError(t, err)

		assert.NotEqual(t, "secret123", hash)
		assert.True(t, password.Verify("secret123", hash))
	})
}

func TestRegisterStudent(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(t, db)
	ctx := context.Background()

	seedFeeLevel(t, db, "primary", 50000)

	t.Run("Fee amount frozen from fee structure", func(t *testing.T) {
		resp, err := svc.RegisterStudent(ctx, &services.RegisterStudentInput{
			Name:       "Anita Devi",
			FatherName: "Ram Singh",
			Email:      "anita@example.com",
			FeeLevel:   "primary",
			Password:   "secret123",
		})
		require.NoError(t, err)

		assert.Equal(t, "MWSS-STU-0001", resp.Account.Number)
		assert.Equal(t, domain.KindStudent, resp.Account.Kind)
		assert.False(t, resp.Account.IsVerified)

		var feeAmount int64
		err = db.Table("students").
			Where("email = ?", "anita@example.com").
			Select("fee_amount").
			Scan(&feeAmount).Error
		require.NoError(t, err)
		assert.Equal(t, int64(50000), feeAmount)
	})

	t.Run("Later fee change does not touch existing students", func(t *testing.T) {
		require.NoError(t, db.Table("fee_structures").
			Where("level = ?", "primary").
			Update("amount", 75000).Error)

		var feeAmount int64
		err := db.Table("students").
			Where("email = ?", "anita@example.com").
			Select("fee_amount").
			Scan(&feeAmount).Error
		require.NoError(t, err)
		assert.Equal(t, int64(50000), feeAmount)
	})

	t.Run("Unknown fee level", func(t *testing.T) {
		_, err := svc.RegisterStudent(ctx, &services.RegisterStudentInput{
			Name:     "Unknown Level",
			Email:    "unknown@example.com",
			FeeLevel: "doctorate",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, services.ErrFeeLevelNotFound)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		_, err := svc.RegisterStudent(ctx, &services.RegisterStudentInput{
			Name:     "Anita Again",
			Email:    "anita@example.com",
			FeeLevel: "primary",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, services.ErrDuplicateEmail)
	})
}

func TestApplyVolunteer(t *testing.T) {
	db := setupTestDB(t)
	svc := newRegistrationService(t, db)
	ctx := context.Background()

	t.Run("Successful application", func(t *testing.T) {
		volunteer, err := svc.ApplyVolunteer(ctx, &services.ApplyVolunteerInput{
			Name:       "Pooja Sharma",
			Email:      "pooja@example.com",
			Phone:      "9812345678",
			City:       "Hisar",
			Occupation: "Teacher",
			Message:    "I want to help with the education programs",
		})
		require.NoError(t, err)

		assert.NotZero(t, volunteer.ID)
		assert.False(t, volunteer.IsApproved, "applications start unapproved")
	})

	t.Run("Duplicate email", func(t *testing.T) {
		_, err := svc.ApplyVolunteer(ctx, &services.ApplyVolunteerInput{
			Name:  "Pooja Again",
			Email: "pooja@example.com",
		})
		assert.ErrorIs(t, err, services.ErrDuplicateEmail)
	})

	t.Run("Missing name", func(t *testing.T) {
		_, err := svc.ApplyVolunteer(ctx, &services.ApplyVolunteerInput{
			Email: "noname@example.com",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Invalid email", func(t *testing.T) {
		_, err := svc.ApplyVolunteer(ctx, &services.ApplyVolunteerInput{
			Name:  "Bad Email",
			Email: "bad email",
		})
		assert.ErrorIs(t, err, services.ErrInvalidEmail)
	})
}
