package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Account Tables (admin / member / student / volunteer)
// ============================================================

// User represents the admins table (back-office logins)
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string         `gorm:"size:255;not null" json:"-"`
	Role      string         `gorm:"size:20;default:'ADMIN'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// Member represents the members table
type Member struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	MembershipNo string         `gorm:"uniqueIndex;size:20;not null" json:"membership_no"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Phone        string         `gorm:"size:20" json:"phone"`
	City         string         `gorm:"size:100" json:"city"`
	Address      string         `gorm:"type:text" json:"address"`
	PhotoURL     string         `gorm:"size:255" json:"photo_url"`
	Password     string         `gorm:"size:255;not null" json:"-"`
	IsVerified   bool           `gorm:"default:false" json:"is_verified"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string {
	return "members"
}

// MemberResponse DTO
type MemberResponse struct {
	ID           uint      `json:"id"`
	MembershipNo string    `json:"membership_no"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	IsVerified   bool      `json:"is_verified"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:           m.ID,
		MembershipNo: m.MembershipNo,
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		City:         m.City,
		IsVerified:   m.IsVerified,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

// Student represents the students table
type Student struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	RegistrationNo string         `gorm:"uniqueIndex;size:20;not null" json:"registration_no"`
	Name           string         `gorm:"size:100;not null" json:"name"`
	FatherName     string         `gorm:"size:100" json:"father_name"`
	Email          string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Phone          string         `gorm:"size:20" json:"phone"`
	Address        string         `gorm:"type:text" json:"address"`
	PhotoURL       string         `gorm:"size:255" json:"photo_url"`
	FeeLevel       string         `gorm:"size:50;not null" json:"fee_level"`
	FeeAmount      int64          `gorm:"not null" json:"fee_amount"` // smallest currency unit
	Password       string         `gorm:"size:255;not null" json:"-"`
	IsVerified     bool           `gorm:"default:false" json:"is_verified"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

// StudentResponse DTO
type StudentResponse struct {
	ID             uint      `json:"id"`
	RegistrationNo string    `json:"registration_no"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	FeeLevel       string    `json:"fee_level"`
	FeeAmount      int64     `json:"fee_amount"`
	IsVerified     bool      `json:"is_verified"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func (s *Student) ToResponse() *StudentResponse {
	return &StudentResponse{
		ID:             s.ID,
		RegistrationNo: s.RegistrationNo,
		Name:           s.Name,
		Email:          s.Email,
		Phone:          s.Phone,
		FeeLevel:       s.FeeLevel,
		FeeAmount:      s.FeeAmount,
		IsVerified:     s.IsVerified,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
	}
}

// Volunteer represents the volunteers table (applications)
type Volunteer struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"size:100;not null" json:"name"`
	Email      string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Phone      string         `gorm:"size:20" json:"phone"`
	City       string         `gorm:"size:100" json:"city"`
	Occupation string         `gorm:"size:100" json:"occupation"`
	Message    string         `gorm:"type:text" json:"message"`
	IsApproved bool           `gorm:"default:false" json:"is_approved"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Volunteer) TableName() string {
	return "volunteers"
}

// ============================================================
// Token Tables
// ============================================================

// RefreshToken represents refresh_tokens table.
// AccountKind + AccountID together identify the owning account.
type RefreshToken struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	AccountKind string     `gorm:"size:20;not null;index:idx_refresh_account" json:"account_kind"`
	AccountID   uint       `gorm:"not null;index:idx_refresh_account" json:"account_id"`
	TokenHash   string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt   time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt   *time.Time `gorm:"index" json:"revoked_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// PasswordResetToken represents password_reset_tokens table.
// Stored hashed; single use enforced via UsedAt.
type PasswordResetToken struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	AccountKind string     `gorm:"size:20;not null" json:"account_kind"`
	AccountID   uint       `gorm:"not null" json:"account_id"`
	TokenHash   string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt   time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt      *time.Time `json:"used_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

func (t *PasswordResetToken) IsUsed() bool {
	return t.UsedAt != nil
}

func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}

// ============================================================
// Number Sequences
// ============================================================

// NumberSequence backs server-side generation of membership, registration
// and card numbers. One row per namespace; incremented under a row lock.
type NumberSequence struct {
	Name string `gorm:"primaryKey;size:50" json:"name"`
	Next int64  `gorm:"not null;default:1" json:"next"`
}

func (NumberSequence) TableName() string {
	return "number_sequences"
}

// Sequence namespaces
const (
	SeqMembership   = "membership_no"
	SeqRegistration = "registration_no"
	SeqMemberCard   = "member_card_no"
	SeqAdmitCard    = "admit_card_no"
)

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Accounts
		&User{},
		&Member{},
		&Student{},
		&Volunteer{},
		// Tokens
		&RefreshToken{},
		&PasswordResetToken{},
		&NumberSequence{},
		// Claims & cards
		&PaymentClaim{},
		&MemberCard{},
		&AdmitCard{},
		// Content
		&Event{},
		&News{},
		&ContentSection{},
		&MenuItem{},
		&Setting{},
		&FeeStructure{},
	)
}
