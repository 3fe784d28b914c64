package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/repositories"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCardService(t *testing.T, db *gorm.DB) *services.CardService {
	t.Helper()

	return services.NewCardService(
		repositories.NewCardRepository(db),
		repositories.NewMemberRepository(db),
		repositories.NewStudentRepository(db),
		repositories.NewSequenceRepository(db),
	)
}

func TestGenerateMemberCard(t *testing.T) {
	db := setupTestDB(t)
	svc := newCardService(t, db)
	ctx := context.Background()
	admin := seedAdmin(t, db, "admin@example.com")

	t.Run("Verified member gets a card", func(t *testing.T) {
		member := seedMember(t, db, "verified@example.com", true)

		card, err := svc.GenerateMemberCard(ctx, member.ID, admin.ID)
		require.NoError(t, err)

		assert.Equal(t, "MWSS-CARD-0001", card.CardNumber)
		assert.Equal(t, admin.ID, card.IssuedBy)
		assert.WithinDuration(t, time.Now().Add(services.MemberCardValidity), card.ValidUntil, time.Minute)
	})

	t.Run("Card numbers increment", func(t *testing.T) {
		member := seedMember(t, db, "second@example.com", true)

		card, err := svc.GenerateMemberCard(ctx, member.ID, admin.ID)
		require.NoError(t, err)
		assert.Equal(t, "MWSS-CARD-0002", card.CardNumber)
	})

	t.Run("Unverified member is refused", func(t *testing.T) {
		member := seedMember(t, db, "unverified@example.com", false)

		_, err := svc.GenerateMemberCard(ctx, member.ID, admin.ID)
		assert.ErrorIs(t, err, services.ErrAccountNotVerified)
	})

	t.Run("Second generation is refused", func(t *testing.T) {
		member := seedMember(t, db, "once@example.com", true)

		_, err := svc.GenerateMemberCard(ctx, member.ID, admin.ID)
		require.NoError(t, err)

		_, err = svc.GenerateMemberCard(ctx, member.ID, admin.ID)
		assert.ErrorIs(t, err, services.ErrCardAlreadyGenerated)
	})

	t.Run("Unknown member", func(t *testing.T) {
		_, err := svc.GenerateMemberCard(ctx, 99999, admin.ID)
		assert.ErrorIs(t, err, services.ErrAccountNotFound)
	})
}

func TestGetMemberCard(t *testing.T) {
	db := setupTestDB(t)
	svc := newCardService(t, db)
	ctx := context.Background()
	admin := seedAdmin(t, db, "admin@example.com")

	t.Run("Existing card", func(t *testing.T) {
		member := seedMember(t, db, "carded@example.com", true)
		issued, err := svc.GenerateMemberCard(ctx, member.ID, admin.ID)
		require.NoError(t, err)

		card, err := svc.GetMemberCard(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, issued.CardNumber, card.CardNumber)
	})

	t.Run("No card yet", func(t *testing.T) {
		member := seedMember(t, db, "cardless@example.com", true)

		_, err := svc.GetMemberCard(ctx, member.ID)
		assert.ErrorIs(t, err, services.ErrCardNotFound)
	})
}

func TestGenerateAdmitCard(t *testing.T) {
	db := setupTestDB(t)
	svc := newCardService(t, db)
	ctx := context.Background()
	admin := seedAdmin(t, db, "admin@example.com")

	t.Run("Verified student gets an admit card", func(t *testing.T) {
		student := seedStudent(t, db, "verified@example.com", true)

		card, err := svc.GenerateAdmitCard(ctx, student.ID, admin.ID)
		require.NoError(t, err)
		assert.Equal(t, "MWSS-ADM-0001", card.CardNumber)
	})

	t.Run("Unverified student is refused", func(t *testing.T) {
		student := seedStudent(t, db, "unverified@example.com", false)

		_, err := svc.GenerateAdmitCard(ctx, student.ID, admin.ID)
		assert.ErrorIs(t, err, services.ErrAccountNotVerified)
	})

	t.Run("Second generation is refused", func(t *testing.T) {
		student := seedStudent(t, db, "once@example.com", true)

		_, err := svc.GenerateAdmitCard(ctx, student.ID, admin.ID)
		require.NoError(t, err)

		_, err = svc.GenerateAdmitCard(ctx, student.ID, admin.ID)
		assert.ErrorIs(t, err, services.ErrCardAlreadyGenerated)
	})

	t.Run("Unknown student", func(t *testing.T) {
		_, err := svc.GenerateAdmitCard(ctx, 99999, admin.ID)
		assert.ErrorIs(t, err, services.ErrAccountNotFound)
	})
}
