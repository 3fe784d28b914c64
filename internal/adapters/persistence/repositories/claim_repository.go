package repositories

import (
	"context"
	"time"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ClaimRepository handles payment claim data access
type ClaimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// Create creates a new payment claim
func (r *ClaimRepository) Create(ctx context.Context, claim *models.PaymentClaim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

// GetByID gets a payment claim by ID with relations
func (r *ClaimRepository) GetByID(ctx context.Context, id uint) (*models.PaymentClaim, error) {
	var claim models.PaymentClaim
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Student").
		Preload("Approver").
		First(&claim, id).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// ClaimFilter narrows List results for admin triage views
type ClaimFilter struct {
	Type   string
	Status string
}

// List lists payment claims with optional filters and pagination
func (r *ClaimRepository) List(ctx context.Context, filter *ClaimFilter, offset, limit int) ([]*models.PaymentClaim, int64, error) {
	var claims []*models.PaymentClaim
	var total int64

	query := r.db.WithContext(ctx).Model(&models.PaymentClaim{})
	if filter != nil {
		if filter.Type != "" {
			query = query.Where("type = ?", filter.Type)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Member").
		Preload("Student").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&claims).Error

	return claims, total, err
}

// ListByMember lists claims referencing a member
func (r *ClaimRepository) ListByMember(ctx context.Context, memberID uint) ([]*models.PaymentClaim, error) {
	var claims []*models.PaymentClaim
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&claims).Error
	return claims, err
}

// ListByStudent lists claims referencing a student
func (r *ClaimRepository) ListByStudent(ctx context.Context, studentID uint) ([]*models.PaymentClaim, error) {
	var claims []*models.PaymentClaim
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&claims).Error
	return claims, err
}

// Transition finalizes a pending claim. The status check happens in the
// UPDATE itself so that two admins racing on the same claim cannot both
// win: exactly one UPDATE matches the pending row.
// Returns (false, nil) when the claim exists but is no longer pending.
func (r *ClaimRepository) Transition(ctx context.Context, id uint, newStatus string, adminID uint, notes string) (bool, error) {
	updates := map[string]interface{}{
		"status":      newStatus,
		"admin_notes": notes,
	}
	if newStatus == "approved" {
		now := time.Now()
		updates["approved_by"] = adminID
		updates["approved_at"] = &now
	}

	result := r.db.WithContext(ctx).
		Model(&models.PaymentClaim{}).
		Where("id = ? AND status = ?", id, "pending").
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// CountByStatus counts claims per status (dashboard)
func (r *ClaimRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PaymentClaim{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// CountStalePending counts pending claims older than the cutoff (cron digest)
func (r *ClaimRepository) CountStalePending(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PaymentClaim{}).
		Where("status = ? AND created_at < ?", "pending", cutoff).
		Count(&count).Error
	return count, err
}

// SumApprovedAmount sums approved amounts for a claim type (dashboard)
func (r *ClaimRepository) SumApprovedAmount(ctx context.Context, claimType string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&models.PaymentClaim{}).
		Where("type = ? AND status = ?", claimType, "approved").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

// ============================================================
// Cards
// ============================================================

// CardRepository handles member card and admit card data access
type CardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// CreateMemberCard creates a member card
func (r *CardRepository) CreateMemberCard(ctx context.Context, card *models.MemberCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// GetMemberCardByMemberID gets the card for a member, if any
func (r *CardRepository) GetMemberCardByMemberID(ctx context.Context, memberID uint) (*models.MemberCard, error) {
	var card models.MemberCard
	err := r.db.WithContext(ctx).Where("member_id = ?", memberID).First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// MemberCardExists checks whether a member already has a card
func (r *CardRepository) MemberCardExists(ctx context.Context, memberID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.MemberCard{}).
		Where("member_id = ?", memberID).
		Count(&count).Error
	return count > 0, err
}

// CreateAdmitCard creates an admit card
func (r *CardRepository) CreateAdmitCard(ctx context.Context, card *models.AdmitCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// GetAdmitCardByStudentID gets the admit card for a student, if any
func (r *CardRepository) GetAdmitCardByStudentID(ctx context.Context, studentID uint) (*models.AdmitCard, error) {
	var card models.AdmitCard
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// AdmitCardExists checks whether a student already has an admit card
func (r *CardRepository) AdmitCardExists(ctx context.Context, studentID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AdmitCard{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count > 0, err
}
