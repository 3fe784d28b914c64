package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/repositories"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/domain"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(t, db)
	ctx := context.Background()

	seedMember(t, db, "member@example.com", false)
	seedStudent(t, db, "student@example.com", false)
	seedAdmin(t, db, "admin@example.com")

	t.Run("Member login", func(t *testing.T) {
		resp, err := svc.Login(ctx, domain.KindMember, &services.LoginInput{
			Email:    "member@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.KindMember, resp.Account.Kind)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
	})

	t.Run("Admin login", func(t *testing.T) {
		resp, err := svc.Login(ctx, domain.KindAdmin, &services.LoginInput{
			Email:    "admin@example.com",
			Password: "admin123456",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, resp.Account.Role)
	})

	t.Run("Wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.KindMember, &services.LoginInput{
			Email:    "member@example.com",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Unknown email looks identical to wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.KindMember, &services.LoginInput{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Kind scopes the credential lookup", func(t *testing.T) {
		// A member's credentials must not open a student session
		_, err := svc.Login(ctx, domain.KindStudent, &services.LoginInput{
			Email:    "member@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Inactive account", func(t *testing.T) {
		seedMember(t, db, "inactive@example.com", false)
		require.NoError(t, db.Table("members").
			Where("email = ?", "inactive@example.com").
			Update("is_active", false).Error)

		_, err := svc.Login(ctx, domain.KindMember, &services.LoginInput{
			Email:    "inactive@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, services.ErrAccountInactive)
	})

	t.Run("Repeated failures do not lock the account", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			_, err := svc.Login(ctx, domain.KindMember, &services.LoginInput{
				Email:    "member@example.com",
				Password: "wrong-password",
			})
			require.ErrorIs(t, err, services.ErrInvalidCredentials)
		}

		_, err := svc.Login(ctx, domain.KindMember, &services.LoginInput{
			Email:    "member@example.com",
			Password: "secret123",
		})
		assert.NoError(t, err)
	})

	t.Run("Volunteer kind has no credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, domain.KindVolunteer, &services.LoginInput{
			Email:    "volunteer@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, services.ErrUnknownKind)
	})
}

func TestRefreshToken(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(t, db)
	ctx := context.Background()

	seedMember(t, db, "member@example.com", false)

	login, err := svc.Login(ctx, domain.KindMember, &services.LoginInput{
		Email:    "member@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("Valid refresh rotates the token", func(t *testing.T) {
		resp, err := svc.RefreshToken(ctx, login.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEqual(t, login.RefreshToken, resp.RefreshToken)
	})

	t.Run("Rotated token is dead", func(t *testing.T) {
		_, err := svc.RefreshToken(ctx, login.RefreshToken)
		assert.ErrorIs(t, err, services.ErrTokenRevoked)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := svc.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("Logout revokes the session", func(t *testing.T) {
		fresh, err := svc.Login(ctx, domain.KindMember, &services.LoginInput{
			Email:    "member@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, fresh.RefreshToken))

		_, err = svc.RefreshToken(ctx, fresh.RefreshToken)
		assert.ErrorIs(t, err, services.ErrTokenRevoked)
	})

	t.Run("LogoutAll revokes every session", func(t *testing.T) {
		first, err := svc.Login(ctx, domain.KindMember, &services.LoginInput{
			Email:    "member@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		second, err := svc.Login(ctx, domain.KindMember, &services.LoginInput{
			Email:    "member@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		require.NoError(t, svc.LogoutAll(ctx, first.Account.Kind, first.Account.ID))

		_, err = svc.RefreshToken(ctx, first.RefreshToken)
		assert.ErrorIs(t, err, services.ErrTokenRevoked)
		_, err = svc.RefreshToken(ctx, second.RefreshToken)
		assert.ErrorIs(t, err, services.ErrTokenRevoked)
	})
}

func TestResetPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(t, db)
	ctx := context.Background()
	resetRepo := repositories.NewResetTokenRepository(db)

	member := seedMember(t, db, "member@example.com", false)

	// seedResetToken stores a hashed token the way ForgotPassword does
	seedResetToken := func(t *testing.T, expiresAt time.Time) string {
		t.Helper()
		token, err := password.GenerateResetToken()
		require.NoError(t, err)
		require.NoError(t, resetRepo.Create(ctx, &models.PasswordResetToken{
			AccountKind: string(domain.KindMember),
			AccountID:   member.ID,
			TokenHash:   password.HashToken(token),
			ExpiresAt:   expiresAt,
		}))
		return token
	}

	t.Run("Valid token resets the password", func(t *testing.T) {
		token := seedResetToken(t, time.Now().Add(services.ResetTokenTTL))

		require.NoError(t, svc.ResetPassword(ctx, token, "newsecret456"))

		_, err := svc.Login(ctx, domain.KindMember, &services.LoginInput{
			Email:    "member@example.com",
			Password: "newsecret456",
		})
		assert.NoError(t, err)

		_, err = svc.Login(ctx, domain.KindMember, &services.LoginInput{
			Email:    "member@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Token works exactly once", func(t *testing.T) {
		token := seedResetToken(t, time.Now().Add(services.ResetTokenTTL))

		require.NoError(t, svc.ResetPassword(ctx, token, "anothersecret"))
		err := svc.ResetPassword(ctx, token, "yetanothersecret")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		token := seedResetToken(t, time.Now().Add(-time.Minute))

		err := svc.ResetPassword(ctx, token, "newsecret456")
		assert.ErrorIs(t, err, services.ErrTokenExpired)
	})

	t.Run("Unknown token", func(t *testing.T) {
		err := svc.ResetPassword(ctx, "deadbeef", "newsecret456")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})

	t.Run("Reset revokes open sessions", func(t *testing.T) {
		login, err := svc.Login(ctx, domain.KindMember, &services.LoginInput{
			Email:    "member@example.com",
			Password: "anothersecret",
		})
		require.NoError(t, err)

		token := seedResetToken(t, time.Now().Add(services.ResetTokenTTL))
		require.NoError(t, svc.ResetPassword(ctx, token, "finalsecret"))

		_, err = svc.RefreshToken(ctx, login.RefreshToken)
		assert.ErrorIs(t, err, services.ErrTokenRevoked)
	})

	t.Run("ForgotPassword stays silent for unknown email", func(t *testing.T) {
		err := svc.ForgotPassword(ctx, domain.KindMember, "nobody@example.com")
		assert.NoError(t, err)
	})
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(t, db)
	ctx := context.Background()

	member := seedMember(t, db, "member@example.com", false)

	t.Run("Wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, domain.KindMember, member.ID, "wrong", "newsecret456")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("New password too short", func(t *testing.T) {
		err := svc.ChangePassword(ctx, domain.KindMember, member.ID, "secret123", "abc")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Successful change", func(t *testing.T) {
		err := svc.ChangePassword(ctx, domain.KindMember, member.ID, "secret123", "newsecret456")
		require.NoError(t, err)

		_, err = svc.Login(ctx, domain.KindMember, &services.LoginInput{
			Email:    "member@example.com",
			Password: "newsecret456",
		})
		assert.NoError(t, err)
	})
}
