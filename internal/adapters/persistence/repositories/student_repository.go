package repositories

import (
	"context"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// studentRepository implements StudentRepository interface
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// Create creates a new student
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

// GetByID gets a student by ID
func (r *studentRepository) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByEmail gets a student by email
func (r *studentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByRegistrationNo gets a student by registration number
func (r *studentRepository) GetByRegistrationNo(ctx context.Context, registrationNo string) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Where("registration_no = ?", registrationNo).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Update updates a student
func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

// Delete soft deletes a student
func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Student{}, id).Error
}

// List lists students with pagination
func (r *studentRepository) List(ctx context.Context, offset, limit int) ([]*models.Student, int64, error) {
	var students []*models.Student
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Student{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&students).Error

	return students, total, err
}

// ExistsByEmail checks if a student email exists
func (r *studentRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Student{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// SetVerified flips the verified flag. Idempotent.
func (r *studentRepository) SetVerified(ctx context.Context, id uint, verified bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ?", id).
		Update("is_verified", verified).Error
}

// SetActive flips the active flag. Idempotent.
func (r *studentRepository) SetActive(ctx context.Context, id uint, active bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

// UpdatePassword updates the stored password hash
func (r *studentRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ?", id).
		Update("password", passwordHash).Error
}
