package services_test

import (
	"context"
	"testing"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMembershipFlow walks the whole membership journey: signup, payment
// claim, admin approval, card issuance.
func TestMembershipFlow(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	registrationSvc := newRegistrationService(t, db)
	claimSvc := newClaimService(t, db)
	cardSvc := newCardService(t, db)
	admin := seedAdmin(t, db, "admin@example.com")

	// 1. Member signs up; account starts unverified
	signup, err := registrationSvc.RegisterMember(ctx, &services.RegisterMemberInput{
		Name:     "Sunita Rani",
		Email:    "sunita@example.com",
		Phone:    "9811112222",
		City:     "Rohtak",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.False(t, signup.Account.IsVerified)
	memberID := signup.Account.ID

	// 2. A card this early is refused
	_, err = cardSvc.GenerateMemberCard(ctx, memberID, admin.ID)
	require.ErrorIs(t, err, services.ErrAccountNotVerified)

	// 3. Member submits the membership fee claim
	claim, err := claimSvc.Create(ctx, &services.CreateClaimInput{
		Type:          "membership",
		PayerName:     "Sunita Rani",
		PayerEmail:    "sunita@example.com",
		Amount:        50000,
		Method:        "upi",
		TransactionID: "UTR999888777",
		MemberID:      &memberID,
	})
	require.NoError(t, err)
	require.Equal(t, "pending", claim.Status)

	// 4. Admin approves; the member flips to verified
	approved, err := claimSvc.Approve(ctx, claim.ID, admin.ID, "matched in statement")
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	// 5. Card issuance now succeeds, exactly once
	card, err := cardSvc.GenerateMemberCard(ctx, memberID, admin.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, card.CardNumber)

	_, err = cardSvc.GenerateMemberCard(ctx, memberID, admin.ID)
	assert.ErrorIs(t, err, services.ErrCardAlreadyGenerated)

	// 6. The member can fetch their card
	fetched, err := cardSvc.GetMemberCard(ctx, memberID)
	require.NoError(t, err)
	assert.Equal(t, card.CardNumber, fetched.CardNumber)
}
