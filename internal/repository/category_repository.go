package repository

import (
	"errors"

	"github.com/MikhailEmv/SmartBudget/internal/models"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CategoryRepository) CreateInTx(tx *gorm.DB, category *models.Category) error {
	return tx.Create(category).Error
}

func (r *CategoryRepository) CountByUserInTx(tx *gorm.DB, userID uint) (int64, error) {
	var count int64
	err := tx.Model(&models.Category{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *CategoryRepository) FindByIDAndUser(id, userID uint) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) ListByUser(userID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("user_id = ?", userID).
		Order("kind, name").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *CategoryRepository) Delete(id, userID uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Category{}).Error
}
