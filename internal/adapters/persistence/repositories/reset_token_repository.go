package repositories

import (
	"context"
	"time"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// resetTokenRepository implements ResetTokenRepository interface
type resetTokenRepository struct {
	db *gorm.DB
}

// NewResetTokenRepository creates a new password reset token repository
func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

// Create creates a new reset token record
func (r *resetTokenRepository) Create(ctx context.Context, token *models.PasswordResetToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// GetByTokenHash gets a reset token by its hash
func (r *resetTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordResetToken, error) {
	var token models.PasswordResetToken
	err := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// MarkUsed marks a reset token consumed. The used_at IS NULL guard makes
// the token single-use even when two reset requests race: only one UPDATE
// matches. Returns false when the token was already consumed.
func (r *resetTokenRepository) MarkUsed(ctx context.Context, id uint) (bool, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.PasswordResetToken{}).
		Where("id = ? AND used_at IS NULL", id).
		Update("used_at", &now)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteExpired deletes expired and consumed tokens (cleanup job)
func (r *resetTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ? OR used_at IS NOT NULL", time.Now()).
		Delete(&models.PasswordResetToken{})
	return result.RowsAffected, result.Error
}
