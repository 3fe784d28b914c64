package domain

import "time"

// AccountKind identifies which credential namespace an account lives in
type AccountKind string

const (
	KindAdmin     AccountKind = "admin"
	KindMember    AccountKind = "member"
	KindStudent   AccountKind = "student"
	KindVolunteer AccountKind = "volunteer"
)

// Valid reports whether the kind is one of the known account kinds
func (k AccountKind) Valid() bool {
	switch k {
	case KindAdmin, KindMember, KindStudent, KindVolunteer:
		return true
	}
	return false
}

// Role represents user role in the system
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ClaimType classifies what a payment claim was submitted for
type ClaimType string

const (
	ClaimDonation   ClaimType = "donation"
	ClaimMembership ClaimType = "membership"
	ClaimFee        ClaimType = "fee"
	ClaimOther      ClaimType = "other"
)

// Valid reports whether the claim type is in the closed enum
func (t ClaimType) Valid() bool {
	switch t {
	case ClaimDonation, ClaimMembership, ClaimFee, ClaimOther:
		return true
	}
	return false
}

// ClaimStatus is the review state of a payment claim.
// pending is initial; approved and rejected are both terminal.
type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimRejected ClaimStatus = "rejected"
)

// Account is a kind-agnostic view of a credentialed account,
// used by the auth layer and token issuer
type Account struct {
	ID         uint
	Kind       AccountKind
	Number     string // membership / registration number, empty for admins
	Name       string
	Email      string
	Role       Role
	IsVerified bool
	IsActive   bool
	CreatedAt  time.Time
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
