package repositories

import (
	"context"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// volunteerRepository implements VolunteerRepository interface
type volunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository creates a new volunteer repository
func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &volunteerRepository{db: db}
}

// Create creates a new volunteer application
func (r *volunteerRepository) Create(ctx context.Context, volunteer *models.Volunteer) error {
	return r.db.WithContext(ctx).Create(volunteer).Error
}

// GetByID gets a volunteer by ID
func (r *volunteerRepository) GetByID(ctx context.Context, id uint) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&volunteer).Error
	if err != nil {
		return nil, err
	}
	return &volunteer, nil
}

// Update updates a volunteer
func (r *volunteerRepository) Update(ctx context.Context, volunteer *models.Volunteer) error {
	return r.db.WithContext(ctx).Save(volunteer).Error
}

// Delete soft deletes a volunteer
func (r *volunteerRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Volunteer{}, id).Error
}

// List lists volunteers with pagination
func (r *volunteerRepository) List(ctx context.Context, offset, limit int) ([]*models.Volunteer, int64, error) {
	var volunteers []*models.Volunteer
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Volunteer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&volunteers).Error

	return volunteers, total, err
}

// ExistsByEmail checks if a volunteer email exists
func (r *volunteerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Volunteer{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// SetApproved flips the approved flag. Idempotent.
func (r *volunteerRepository) SetApproved(ctx context.Context, id uint, approved bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Volunteer{}).
		Where("id = ?", id).
		Update("is_approved", approved).Error
}
