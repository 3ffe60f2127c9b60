package repository

import (
	"what-to-watch-backend/internal/database/models"
)

// OpinionRepositoryInterface defines the contract of the opinion record store
type OpinionRepositoryInterface interface {
	Create(opinion *models.Opinion) error
	GetByID(id uint) (*models.Opinion, error)
	GetAll() ([]models.Opinion, error)
	Count() (int64, error)
	GetAtOffset(offset int) (*models.Opinion, error)
	ExistsByText(text string, excludeID uint) (bool, error)
	Update(opinion *models.Opinion) error
	Delete(id uint) error
}
