package repositories

import (
	"context"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"
)

// UserRepository defines admin user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

// MemberRepository defines member repository interface
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id uint) (*models.Member, error)
	GetByEmail(ctx context.Context, email string) (*models.Member, error)
	GetByMembershipNo(ctx context.Context, membershipNo string) (*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Member, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SetVerified(ctx context.Context, id uint, verified bool) error
	SetActive(ctx context.Context, id uint, active bool) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

// StudentRepository defines student repository interface
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByRegistrationNo(ctx context.Context, registrationNo string) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Student, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SetVerified(ctx context.Context, id uint, verified bool) error
	SetActive(ctx context.Context, id uint, active bool) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

// VolunteerRepository defines volunteer repository interface
type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *models.Volunteer) error
	GetByID(ctx context.Context, id uint) (*models.Volunteer, error)
	Update(ctx context.Context, volunteer *models.Volunteer) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Volunteer, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SetApproved(ctx context.Context, id uint, approved bool) error
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByAccount(ctx context.Context, kind string, accountID uint) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// ResetTokenRepository defines password reset token repository interface
type ResetTokenRepository interface {
	Create(ctx context.Context, token *models.PasswordResetToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id uint) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}
