package services_test

import (
	"context"
	"testing"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/repositories"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/domain"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newClaimService(t *testing.T, db *gorm.DB) *services.ClaimService {
	t.Helper()

	return services.NewClaimService(
		repositories.NewClaimRepository(db),
		repositories.NewMemberRepository(db),
		repositories.NewStudentRepository(db),
		services.NewNotificationService(testConfig()),
	)
}

func donationInput() *services.CreateClaimInput {
	return &services.CreateClaimInput{
		Type:          "donation",
		PayerName:     "Ramesh Kumar",
		PayerEmail:    "ramesh@example.com",
		Amount:        100000,
		Method:        "upi",
		TransactionID: "UTR123456789",
		Purpose:       "General donation",
	}
}

func TestCreateClaim(t *testing.T) {
	db := setupTestDB(t)
	svc := newClaimService(t, db)
	ctx := context.Background()

	t.Run("Successful donation claim", func(t *testing.T) {
		claim, err := svc.Create(ctx, donationInput())
		require.NoError(t, err)

		assert.NotZero(t, claim.ID)
		assert.Equal(t, "pending", claim.Status)
		assert.Nil(t, claim.ApprovedBy)
		assert.Nil(t, claim.ApprovedAt)
	})

	t.Run("Duplicate transaction id is accepted", func(t *testing.T) {
		// Transaction ids are free text pasted by the payer; duplicates
		// land side by side in the triage list instead of being rejected.
		first, err := svc.Create(ctx, donationInput())
		require.NoError(t, err)
		second, err := svc.Create(ctx, donationInput())
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Invalid claim type", func(t *testing.T) {
		input := donationInput()
		input.Type = "bribe"
		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, services.ErrInvalidClaimType)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		input := donationInput()
		input.Amount = 0
		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, services.ErrInvalidAmount)
	})

	t.Run("Missing transaction id", func(t *testing.T) {
		input := donationInput()
		input.TransactionID = ""
		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, services.ErrMissingTxnID)
	})

	t.Run("Missing payer name", func(t *testing.T) {
		input := donationInput()
		input.PayerName = ""
		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Unknown member reference", func(t *testing.T) {
		memberID := uint(999)
		input := donationInput()
		input.Type = "membership"
		input.MemberID = &memberID
		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Known member reference", func(t *testing.T) {
		member := seedMember(t, db, "linked@example.com", false)
		input := donationInput()
		input.Type = "membership"
		input.MemberID = &member.ID
		claim, err := svc.Create(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, claim.MemberID)
		assert.Equal(t, member.ID, *claim.MemberID)
	})
}

func TestApproveClaim(t *testing.T) {
	db := setupTestDB(t)
	svc := newClaimService(t, db)
	ctx := context.Background()
	admin := seedAdmin(t, db, "admin@example.com")

	t.Run("Approve pending claim", func(t *testing.T) {
		created, err := svc.Create(ctx, donationInput())
		require.NoError(t, err)

		approved, err := svc.Approve(ctx, created.ID, admin.ID, "verified against bank statement")
		require.NoError(t, err)

		assert.Equal(t, "approved", approved.Status)
		require.NotNil(t, approved.ApprovedBy)
		assert.Equal(t, admin.ID, *approved.ApprovedBy)
		assert.NotNil(t, approved.ApprovedAt)
		assert.Equal(t, "verified against bank statement", approved.AdminNotes)
	})

	t.Run("Approval verifies the linked member", func(t *testing.T) {
		member := seedMember(t, db, "pending-member@example.com", false)

		input := donationInput()
		input.Type = "membership"
		input.MemberID = &member.ID
		created, err := svc.Create(ctx, input)
		require.NoError(t, err)

		_, err = svc.Approve(ctx, created.ID, admin.ID, "")
		require.NoError(t, err)

		var verified bool
		err = db.Table("members").
			Where("id = ?", member.ID).
			Select("is_verified").
			Scan(&verified).Error
		require.NoError(t, err)
		assert.True(t, verified)
	})

	t.Run("Approval verifies the linked student", func(t *testing.T) {
		student := seedStudent(t, db, "pending-student@example.com", false)

		input := donationInput()
		input.Type = "fee"
		input.StudentID = &student.ID
		created, err := svc.Create(ctx, input)
		require.NoError(t, err)

		_, err = svc.Approve(ctx, created.ID, admin.ID, "")
		require.NoError(t, err)

		var verified bool
		err = db.Table("students").
			Where("id = ?", student.ID).
			Select("is_verified").
			Scan(&verified).Error
		require.NoError(t, err)
		assert.True(t, verified)
	})

	t.Run("Second approval loses", func(t *testing.T) {
		created, err := svc.Create(ctx, donationInput())
		require.NoError(t, err)

		_, err = svc.Approve(ctx, created.ID, admin.ID, "")
		require.NoError(t, err)

		_, err = svc.Approve(ctx, created.ID, admin.ID, "")
		assert.ErrorIs(t, err, services.ErrClaimAlreadyFinal)
	})

	t.Run("Approve after reject loses", func(t *testing.T) {
		created, err := svc.Create(ctx, donationInput())
		require.NoError(t, err)

		_, err = svc.Reject(ctx, created.ID, admin.ID, "no matching payment")
		require.NoError(t, err)

		_, err = svc.Approve(ctx, created.ID, admin.ID, "")
		assert.ErrorIs(t, err, services.ErrClaimAlreadyFinal)
	})

	t.Run("Approve unknown claim", func(t *testing.T) {
		_, err := svc.Approve(ctx, 99999, admin.ID, "")
		assert.ErrorIs(t, err, services.ErrClaimNotFound)
	})
}

func TestRejectClaim(t *testing.T) {
	db := setupTestDB(t)
	svc := newClaimService(t, db)
	ctx := context.Background()
	admin := seedAdmin(t, db, "admin@example.com")

	t.Run("Reject pending claim", func(t *testing.T) {
		member := seedMember(t, db, "rejected-member@example.com", false)

		input := donationInput()
		input.Type = "membership"
		input.MemberID = &member.ID
		created, err := svc.Create(ctx, input)
		require.NoError(t, err)

		rejected, err := svc.Reject(ctx, created.ID, admin.ID, "UTR not found in statement")
		require.NoError(t, err)

		assert.Equal(t, "rejected", rejected.Status)
		assert.Equal(t, "UTR not found in statement", rejected.AdminNotes)

		// Rejection must not verify the linked account
		var verified bool
		err = db.Table("members").
			Where("id = ?", member.ID).
			Select("is_verified").
			Scan(&verified).Error
		require.NoError(t, err)
		assert.False(t, verified)
	})

	t.Run("Reject unknown claim", func(t *testing.T) {
		_, err := svc.Reject(ctx, 99999, admin.ID, "")
		assert.ErrorIs(t, err, services.ErrClaimNotFound)
	})
}

func TestListClaims(t *testing.T) {
	db := setupTestDB(t)
	svc := newClaimService(t, db)
	ctx := context.Background()
	admin := seedAdmin(t, db, "admin@example.com")

	// Three donations, one membership; one donation approved
	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, donationInput())
		require.NoError(t, err)
	}
	membership := donationInput()
	membership.Type = "membership"
	created, err := svc.Create(ctx, membership)
	require.NoError(t, err)
	_, err = svc.Approve(ctx, created.ID, admin.ID, "")
	require.NoError(t, err)

	t.Run("Unfiltered", func(t *testing.T) {
		out, err := svc.List(ctx, &services.ListInput{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), out.Total)
	})

	t.Run("Filter by status", func(t *testing.T) {
		out, err := svc.List(ctx, &services.ListInput{Status: "pending"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), out.Total)
	})

	t.Run("Filter by type and status", func(t *testing.T) {
		out, err := svc.List(ctx, &services.ListInput{Type: "membership", Status: "approved"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), out.Total)
	})

	t.Run("Pagination", func(t *testing.T) {
		out, err := svc.List(ctx, &services.ListInput{Page: 1, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, out.Claims, 2)
		assert.Equal(t, 2, out.TotalPages)
	})
}

// TestClaimTransitionRace drives the conditional update directly: exactly
// one of two competing finalizations may touch the pending row.
func TestClaimTransitionRace(t *testing.T) {
	db := setupTestDB(t)
	svc := newClaimService(t, db)
	ctx := context.Background()
	admin := seedAdmin(t, db, "admin@example.com")

	created, err := svc.Create(ctx, donationInput())
	require.NoError(t, err)

	claimRepo := repositories.NewClaimRepository(db)

	won, err := claimRepo.Transition(ctx, created.ID, "approved", admin.ID, "")
	require.NoError(t, err)
	assert.True(t, won)

	won, err = claimRepo.Transition(ctx, created.ID, "rejected", admin.ID, "")
	require.NoError(t, err)
	assert.False(t, won, "a finalized claim must not transition again")

	claim, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)

	// Still approved, not clobbered by the losing rejection
	assert.Equal(t, "approved", claim.Status)
	assert.True(t, claim.IsFinal())
}
