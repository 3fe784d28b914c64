package services

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DashboardService handles dashboard operations
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// ============================================================
// Admin Dashboard
// ============================================================

// AdminDashboardData represents admin dashboard data
type AdminDashboardData struct {
	// Account Statistics
	TotalMembers      int64 `json:"total_members"`
	VerifiedMembers   int64 `json:"verified_members"`
	TotalStudents     int64 `json:"total_students"`
	VerifiedStudents  int64 `json:"verified_students"`
	TotalVolunteers   int64 `json:"total_volunteers"`
	PendingVolunteers int64 `json:"pending_volunteers"`

	// Claim Statistics
	TotalClaims    int64 `json:"total_claims"`
	PendingClaims  int64 `json:"pending_claims"`
	ApprovedClaims int64 `json:"approved_claims"`
	RejectedClaims int64 `json:"rejected_claims"`
	StaleClaims    int64 `json:"stale_claims"`

	// Approved amounts in paise, split by claim type
	TotalDonations   int64 `json:"total_donations"`
	TotalMemberships int64 `json:"total_memberships"`
	TotalFees        int64 `json:"total_fees"`

	// Monthly Statistics
	ClaimsThisMonth int64 `json:"claims_this_month"`
	AmountThisMonth int64 `json:"amount_this_month"`

	// Recent Activity
	RecentClaims []ClaimSummary `json:"recent_claims"`
}

// ClaimSummary represents claim summary
type ClaimSummary struct {
	ID            uint      `json:"id"`
	Type          string    `json:"type"`
	PayerName     string    `json:"payer_name"`
	Amount        int64     `json:"amount"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// StaleClaimAge is how long a claim may sit pending before the dashboard
// flags it
const StaleClaimAge = 72 * time.Hour

// GetAdminDashboard returns admin dashboard data
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboardData, error) {
	data := &AdminDashboardData{}

	// Account counts
	s.db.WithContext(ctx).Table("members").Where("deleted_at IS NULL").Count(&data.TotalMembers)
	s.db.WithContext(ctx).Table("members").Where("is_verified = ? AND deleted_at IS NULL", true).Count(&data.VerifiedMembers)
	s.db.WithContext(ctx).Table("students").Where("deleted_at IS NULL").Count(&data.TotalStudents)
	s.db.WithContext(ctx).Table("students").Where("is_verified = ? AND deleted_at IS NULL", true).Count(&data.VerifiedStudents)
	s.db.WithContext(ctx).Table("volunteers").Where("deleted_at IS NULL").Count(&data.TotalVolunteers)
	s.db.WithContext(ctx).Table("volunteers").Where("is_approved = ? AND deleted_at IS NULL", false).Count(&data.PendingVolunteers)

	// Claim counts by status
	s.db.WithContext(ctx).Table("payment_claims").Count(&data.TotalClaims)
	s.db.WithContext(ctx).Table("payment_claims").Where("status = ?", "pending").Count(&data.PendingClaims)
	s.db.WithContext(ctx).Table("payment_claims").Where("status = ?", "approved").Count(&data.ApprovedClaims)
	s.db.WithContext(ctx).Table("payment_claims").Where("status = ?", "rejected").Count(&data.RejectedClaims)

	staleBefore := time.Now().Add(-StaleClaimAge)
	s.db.WithContext(ctx).Table("payment_claims").
		Where("status = ? AND created_at < ?", "pending", staleBefore).
		Count(&data.StaleClaims)

	// Approved amounts by claim type
	s.db.WithContext(ctx).Table("payment_claims").
		Where("type = ? AND status = ?", "donation", "approved").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalDonations)

	s.db.WithContext(ctx).Table("payment_claims").
		Where("type = ? AND status = ?", "membership", "approved").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalMemberships)

	s.db.WithContext(ctx).Table("payment_claims").
		Where("type = ? AND status = ?", "fee", "approved").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalFees)

	// This month statistics
	startOfMonth := time.Now().AddDate(0, 0, -time.Now().Day()+1).Truncate(24 * time.Hour)
	s.db.WithContext(ctx).Table("payment_claims").
		Where("created_at >= ?", startOfMonth).
		Count(&data.ClaimsThisMonth)

	s.db.WithContext(ctx).Table("payment_claims").
		Where("created_at >= ? AND status = ?", startOfMonth, "approved").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.AmountThisMonth)

	// Recent claims
	var recentClaims []struct {
		ID            uint
		Type          string
		PayerName     string
		Amount        int64
		TransactionID string
		Status        string
		CreatedAt     time.Time
	}
	s.db.WithContext(ctx).Table("payment_claims").
		Select("id, type, payer_name, amount, transaction_id, status, created_at").
		Order("created_at DESC").
		Limit(10).
		Scan(&recentClaims)

	data.RecentClaims = make([]ClaimSummary, len(recentClaims))
	for i, c := range recentClaims {
		data.RecentClaims[i] = ClaimSummary{
			ID:            c.ID,
			Type:          c.Type,
			PayerName:     c.PayerName,
			Amount:        c.Amount,
			TransactionID: c.TransactionID,
			Status:        c.Status,
			CreatedAt:     c.CreatedAt,
		}
	}

	return data, nil
}

// ============================================================
// Member Dashboard
// ============================================================

// MemberDashboardData represents member dashboard data
type MemberDashboardData struct {
	TotalClaims    int64 `json:"total_claims"`
	PendingClaims  int64 `json:"pending_claims"`
	ApprovedClaims int64 `json:"approved_claims"`
	RejectedClaims int64 `json:"rejected_claims"`
	TotalApproved  int64 `json:"total_approved"`
	HasCard        bool  `json:"has_card"`

	Claims []ClaimSummary `json:"claims"`
}

// GetMemberDashboard returns a member's own claim history and card status
func (s *DashboardService) GetMemberDashboard(ctx context.Context, memberID uint) (*MemberDashboardData, error) {
	data := &MemberDashboardData{}

	s.db.WithContext(ctx).Table("payment_claims").
		Where("member_id = ?", memberID).
		Count(&data.TotalClaims)

	s.db.WithContext(ctx).Table("payment_claims").
		Where("member_id = ? AND status = ?", memberID, "pending").
		Count(&data.PendingClaims)

	s.db.WithContext(ctx).Table("payment_claims").
		Where("member_id = ? AND status = ?", memberID, "approved").
		Count(&data.ApprovedClaims)

	s.db.WithContext(ctx).Table("payment_claims").
		Where("member_id = ? AND status = ?", memberID, "rejected").
		Count(&data.RejectedClaims)

	s.db.WithContext(ctx).Table("payment_claims").
		Where("member_id = ? AND status = ?", memberID, "approved").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.TotalApproved)

	var cardCount int64
	s.db.WithContext(ctx).Table("member_cards").
		Where("member_id = ?", memberID).
		Count(&cardCount)
	data.HasCard = cardCount > 0

	var claims []struct {
		ID            uint
		Type          string
		PayerName     string
		Amount        int64
		TransactionID string
		Status        string
		CreatedAt     time.Time
	}
	s.db.WithContext(ctx).Table("payment_claims").
		Select("id, type, payer_name, amount, transaction_id, status, created_at").
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Scan(&claims)

	data.Claims = make([]ClaimSummary, len(claims))
	for i, c := range claims {
		data.Claims[i] = ClaimSummary{
			ID:            c.ID,
			Type:          c.Type,
			PayerName:     c.PayerName,
			Amount:        c.Amount,
			TransactionID: c.TransactionID,
			Status:        c.Status,
			CreatedAt:     c.CreatedAt,
		}
	}

	return data, nil
}

// ============================================================
// Student Dashboard
// ============================================================

// StudentDashboardData represents student dashboard data
type StudentDashboardData struct {
	FeeLevel      string `json:"fee_level"`
	FeeAmount     int64  `json:"fee_amount"`
	FeePaid       int64  `json:"fee_paid"`
	PendingClaims int64  `json:"pending_claims"`
	HasAdmitCard  bool   `json:"has_admit_card"`

	Claims []ClaimSummary `json:"claims"`
}

// GetStudentDashboard returns a student's fee position and claim history
func (s *DashboardService) GetStudentDashboard(ctx context.Context, studentID uint) (*StudentDashboardData, error) {
	data := &StudentDashboardData{}

	s.db.WithContext(ctx).Table("students").
		Select("fee_level, fee_amount").
		Where("id = ? AND deleted_at IS NULL", studentID).
		Row().Scan(&data.FeeLevel, &data.FeeAmount)

	s.db.WithContext(ctx).Table("payment_claims").
		Where("student_id = ? AND status = ?", studentID, "approved").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&data.FeePaid)

	s.db.WithContext(ctx).Table("payment_claims").
		Where("student_id = ? AND status = ?", studentID, "pending").
		Count(&data.PendingClaims)

	var cardCount int64
	s.db.WithContext(ctx).Table("admit_cards").
		Where("student_id = ?", studentID).
		Count(&cardCount)
	data.HasAdmitCard = cardCount > 0

	var claims []struct {
		ID            uint
		Type          string
		PayerName     string
		Amount        int64
		TransactionID string
		Status        string
		CreatedAt     time.Time
	}
	s.db.WithContext(ctx).Table("payment_claims").
		Select("id, type, payer_name, amount, transaction_id, status, created_at").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Scan(&claims)

	data.Claims = make([]ClaimSummary, len(claims))
	for i, c := range claims {
		data.Claims[i] = ClaimSummary{
			ID:            c.ID,
			Type:          c.Type,
			PayerName:     c.PayerName,
			Amount:        c.Amount,
			TransactionID: c.TransactionID,
			Status:        c.Status,
			CreatedAt:     c.CreatedAt,
		}
	}

	return data, nil
}
