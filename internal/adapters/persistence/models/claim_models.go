package models

import (
	"time"
)

// ============================================================
// Payment Claims & Cards
// ============================================================

// PaymentClaim represents payment_claims table. A claim is a user's
// assertion "I paid amount X via method Y, here is transaction id Z".
// Rows are never deleted by normal flow; rejected claims stay as history.
type PaymentClaim struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Type          string     `gorm:"size:20;not null;index" json:"type"` // donation | membership | fee | other
	PayerName     string     `gorm:"size:100;not null" json:"payer_name"`
	PayerEmail    string     `gorm:"size:100" json:"payer_email"`
	PayerPhone    string     `gorm:"size:20" json:"payer_phone"`
	Amount        int64      `gorm:"not null" json:"amount"` // smallest currency unit
	Method        string     `gorm:"size:50" json:"method"`  // upi, bank transfer, ...
	TransactionID string     `gorm:"size:100;not null;index" json:"transaction_id"`
	Purpose       string     `gorm:"size:200" json:"purpose"`
	Status        string     `gorm:"size:20;not null;default:'pending';index" json:"status"`
	MemberID      *uint      `gorm:"index" json:"member_id"`
	StudentID     *uint      `gorm:"index" json:"student_id"`
	AdminNotes    string     `gorm:"type:text" json:"admin_notes"`
	ApprovedBy    *uint      `json:"approved_by"`
	ApprovedAt    *time.Time `json:"approved_at"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Member   *Member  `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Student  *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Approver *User    `gorm:"foreignKey:ApprovedBy" json:"approver,omitempty"`
}

func (PaymentClaim) TableName() string {
	return "payment_claims"
}

func (c *PaymentClaim) IsFinal() bool {
	return c.Status != "pending"
}

// MemberCard represents member_cards table.
// At most one card per member; immutable once generated.
type MemberCard struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	MemberID   uint      `gorm:"uniqueIndex;not null" json:"member_id"`
	CardNumber string    `gorm:"uniqueIndex;size:30;not null" json:"card_number"`
	IssuedBy   uint      `gorm:"not null" json:"issued_by"`
	IssuedAt   time.Time `gorm:"not null" json:"issued_at"`
	ValidUntil time.Time `json:"valid_until"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Issuer *User   `gorm:"foreignKey:IssuedBy" json:"issuer,omitempty"`
}

func (MemberCard) TableName() string {
	return "member_cards"
}

// AdmitCard represents admit_cards table, the student counterpart
type AdmitCard struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StudentID  uint      `gorm:"uniqueIndex;not null" json:"student_id"`
	CardNumber string    `gorm:"uniqueIndex;size:30;not null" json:"card_number"`
	IssuedBy   uint      `gorm:"not null" json:"issued_by"`
	IssuedAt   time.Time `gorm:"not null" json:"issued_at"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relations
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Issuer  *User    `gorm:"foreignKey:IssuedBy" json:"issuer,omitempty"`
}

func (AdmitCard) TableName() string {
	return "admit_cards"
}
