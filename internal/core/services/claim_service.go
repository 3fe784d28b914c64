package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/repositories"
	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/core/domain"

	"gorm.io/gorm"
)

// Claim service errors
var (
	ErrClaimNotFound     = errors.New("payment claim not found")
	ErrClaimAlreadyFinal = errors.New("payment claim already finalized")
	ErrInvalidClaimType  = errors.New("invalid claim type")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrMissingTxnID      = errors.New("transaction id is required")
)

// ClaimService is the payment claim ledger plus the admin approval state
// machine over it. A claim starts pending and moves exactly once to
// approved or rejected; there is no way back.
type ClaimService struct {
	claimRepo     *repositories.ClaimRepository
	memberRepo    repositories.MemberRepository
	studentRepo   repositories.StudentRepository
	notifyService *NotificationService
}

// NewClaimService creates a new claim service
func NewClaimService(
	claimRepo *repositories.ClaimRepository,
	memberRepo repositories.MemberRepository,
	studentRepo repositories.StudentRepository,
	notifyService *NotificationService,
) *ClaimService {
	return &ClaimService{
		claimRepo:     claimRepo,
		memberRepo:    memberRepo,
		studentRepo:   studentRepo,
		notifyService: notifyService,
	}
}

// CreateClaimInput represents create claim input
type CreateClaimInput struct {
	Type          string `json:"type"`
	PayerName     string `json:"payer_name"`
	PayerEmail    string `json:"payer_email"`
	PayerPhone    string `json:"payer_phone"`
	Amount        int64  `json:"amount"`
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
	Purpose       string `json:"purpose"`
	MemberID      *uint  `json:"member_id,omitempty"`
	StudentID     *uint  `json:"student_id,omitempty"`
}

// Create records a payment claim. TransactionID is free text and is NOT
// checked for uniqueness; duplicate submissions of the same real-world
// payment show up side by side in the admin triage list.
func (s *ClaimService) Create(ctx context.Context, input *CreateClaimInput) (*models.PaymentClaim, error) {
	if !domain.ClaimType(input.Type).Valid() {
		return nil, ErrInvalidClaimType
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if input.TransactionID == "" {
		return nil, ErrMissingTxnID
	}
	if input.PayerName == "" {
		return nil, domain.ErrValidation
	}

	// Back-references must point at real accounts
	if input.MemberID != nil {
		if _, err := s.memberRepo.GetByID(ctx, *input.MemberID); err != nil {
			return nil, domain.ErrNotFound
		}
	}
	if input.StudentID != nil {
		if _, err := s.studentRepo.GetByID(ctx, *input.StudentID); err != nil {
			return nil, domain.ErrNotFound
		}
	}

	claim := &models.PaymentClaim{
		Type:          input.Type,
		PayerName:     input.PayerName,
		PayerEmail:    input.PayerEmail,
		PayerPhone:    input.PayerPhone,
		Amount:        input.Amount,
		Method:        input.Method,
		TransactionID: input.TransactionID,
		Purpose:       input.Purpose,
		Status:        string(domain.ClaimPending),
		MemberID:      input.MemberID,
		StudentID:     input.StudentID,
	}

	if err := s.claimRepo.Create(ctx, claim); err != nil {
		return nil, err
	}

	if s.notifyService != nil {
		s.notifyService.NotifyNewClaim(claim)
	}

	log.Printf("✅ Payment claim recorded: #%d %s %d (txn %s)", claim.ID, claim.Type, claim.Amount, claim.TransactionID)
	return claim, nil
}

// GetByID gets a claim by ID
func (s *ClaimService) GetByID(ctx context.Context, id uint) (*models.PaymentClaim, error) {
	claim, err := s.claimRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}
	return claim, nil
}

// ListInput represents list input for the admin triage view
type ListInput struct {
	Type   string
	Status string
	Page   int
	Limit  int
}

// ListOutput represents list output
type ListOutput struct {
	Claims     []*models.PaymentClaim `json:"claims"`
	Total      int64                  `json:"total"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"total_pages"`
}

// List lists claims with optional type/status filters
func (s *ClaimService) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 10
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	filter := &repositories.ClaimFilter{
		Type:   input.Type,
		Status: input.Status,
	}

	offset := (input.Page - 1) * input.Limit
	claims, total, err := s.claimRepo.List(ctx, filter, offset, input.Limit)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / input.Limit
	if int(total)%input.Limit > 0 {
		totalPages++
	}

	return &ListOutput{
		Claims:     claims,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages,
	}, nil
}

// Approve finalizes a pending claim as approved and, when the claim
// references a member or student, flips that account to verified.
//
// The status check runs inside the UPDATE, so when two admins race on the
// same claim exactly one wins; the loser gets ErrClaimAlreadyFinal.
// A failure in the downstream verification does NOT report success: the
// claim stays approved and the error comes back wrapped in ErrDownstream
// for the operator to act on.
func (s *ClaimService) Approve(ctx context.Context, claimID, adminID uint, notes string) (*models.PaymentClaim, error) {
	claim, err := s.transition(ctx, claimID, domain.ClaimApproved, adminID, notes)
	if err != nil {
		return nil, err
	}

	if claim.MemberID != nil {
		if err := s.memberRepo.SetVerified(ctx, *claim.MemberID, true); err != nil {
			return claim, fmt.Errorf("%w: member %d verification: %v", domain.ErrDownstream, *claim.MemberID, err)
		}
		log.Printf("✅ Member #%d verified via claim #%d approval", *claim.MemberID, claim.ID)
	}
	if claim.StudentID != nil {
		if err := s.studentRepo.SetVerified(ctx, *claim.StudentID, true); err != nil {
			return claim, fmt.Errorf("%w: student %d verification: %v", domain.ErrDownstream, *claim.StudentID, err)
		}
		log.Printf("✅ Student #%d verified via claim #%d approval", *claim.StudentID, claim.ID)
	}

	if s.notifyService != nil {
		s.notifyService.NotifyClaimApproved(claim)
	}

	return claim, nil
}

// Reject finalizes a pending claim as rejected. Terminal; the payer
// re-submits a fresh claim if the rejection was in error.
func (s *ClaimService) Reject(ctx context.Context, claimID, adminID uint, notes string) (*models.PaymentClaim, error) {
	claim, err := s.transition(ctx, claimID, domain.ClaimRejected, adminID, notes)
	if err != nil {
		return nil, err
	}

	if s.notifyService != nil {
		s.notifyService.NotifyClaimRejected(claim, notes)
	}

	return claim, nil
}

// transition runs the conditional pending→final update and reloads the row
func (s *ClaimService) transition(ctx context.Context, claimID uint, target domain.ClaimStatus, adminID uint, notes string) (*models.PaymentClaim, error) {
	won, err := s.claimRepo.Transition(ctx, claimID, string(target), adminID, notes)
	if err != nil {
		return nil, err
	}

	if !won {
		// Either the claim doesn't exist or it was already finalized;
		// a lookup tells the two apart.
		if _, err := s.claimRepo.GetByID(ctx, claimID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClaimNotFound
			}
			return nil, err
		}
		return nil, ErrClaimAlreadyFinal
	}

	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Claim #%d → %s by admin #%d", claim.ID, target, adminID)
	return claim, nil
}
