package repository

import (
	"what-to-watch-backend/internal/database/models"

	"gorm.io/gorm"
)

// OpinionRepository handles database operations for opinions
type OpinionRepository struct {
	db *gorm.DB
}

// Ensure OpinionRepository implements OpinionRepositoryInterface
var _ OpinionRepositoryInterface = (*OpinionRepository)(nil)

// NewOpinionRepository creates a new opinion repository
func NewOpinionRepository(db *gorm.DB) *OpinionRepository {
	return &OpinionRepository{db: db}
}

// Create inserts a new opinion. The id and timestamp are assigned by the
// store; the insert runs in its own transaction and is rolled back on error.
func (r *OpinionRepository) Create(opinion *models.Opinion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(opinion).Error
	})
}

// GetByID retrieves an opinion by its id
func (r *OpinionRepository) GetByID(id uint) (*models.Opinion, error) {
	var opinion models.Opinion
	if err := r.db.First(&opinion, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &opinion, nil
}

// GetAll retrieves all opinions in insertion order
func (r *OpinionRepository) GetAll() ([]models.Opinion, error) {
	var opinions []models.Opinion
	if err := r.db.Order("id ASC").Find(&opinions).Error; err != nil {
		return nil, err
	}
	return opinions, nil
}

// Count returns the number of stored opinions
func (r *OpinionRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Opinion{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// GetAtOffset retrieves the nth opinion in id order. A stale offset from a
// concurrent delete surfaces as gorm.ErrRecordNotFound.
func (r *OpinionRepository) GetAtOffset(offset int) (*models.Opinion, error) {
	var opinion models.Opinion
	if err := r.db.Order("id ASC").Offset(offset).First(&opinion).Error; err != nil {
		return nil, err
	}
	return &opinion, nil
}

// ExistsByText reports whether an opinion with the given text exists.
// A non-zero excludeID leaves that row out of the check so an update does
// not collide with itself.
func (r *OpinionRepository) ExistsByText(text string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Opinion{}).Where("text = ?", text)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists the mutable fields of an existing opinion inside its own
// transaction, rolled back on any error exit path.
func (r *OpinionRepository) Update(opinion *models.Opinion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(opinion).Error
	})
}

// Delete removes an opinion by id inside its own transaction. Deleting an
// unknown id returns gorm.ErrRecordNotFound.
func (r *OpinionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Opinion{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
