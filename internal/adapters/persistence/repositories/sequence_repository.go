package repositories

import (
	"context"
	"fmt"

	"github.com/Ishwar78/manavwelfaresevasociety.com-sub000/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SequenceRepository hands out monotonically increasing numbers per
// namespace (membership, registration, card numbers)
type SequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(db *gorm.DB) *SequenceRepository {
	return &SequenceRepository{db: db}
}

// Next returns the next number for a namespace. The increment runs as a
// single atomic UPDATE inside the transaction so concurrent registrations
// cannot hand out the same number.
func (r *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Make sure the namespace row exists; a concurrent insert loses
		// quietly on the primary key.
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.NumberSequence{Name: name, Next: 1}).Error
		if err != nil {
			return err
		}

		result := tx.Model(&models.NumberSequence{}).
			Where("name = ?", name).
			UpdateColumn("next", gorm.Expr("next + 1"))
		if result.Error != nil {
			return result.Error
		}

		var seq models.NumberSequence
		if err := tx.Where("name = ?", name).First(&seq).Error; err != nil {
			return err
		}

		value = seq.Next - 1
		return nil
	})
	if err != nil {
		return 0, err
	}

	return value, nil
}

// NextFormatted returns the next number rendered with the given format,
// e.g. NextFormatted(ctx, models.SeqMembership, "MWSS-%04d") -> "MWSS-0001"
func (r *SequenceRepository) NextFormatted(ctx context.Context, name, format string) (string, error) {
	n, err := r.Next(ctx, name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(format, n), nil
}
