package repository

import (
	"github.com/MikhailEmv/SmartBudget/internal/models"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(tx *gorm.DB, transaction *models.Transaction) error {
	return tx.Create(transaction).Error
}

func (r *TransactionRepository) ListByUser(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.
		Where("user_id = ?", userID).
		Preload("FromAccount").
		Preload("ToAccount").
		Order("date DESC, created_at DESC").
		Find(&transactions).Error
	return transactions, err
}

func (r *TransactionRepository) ListRecentByUser(userID uint, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.
		Where("user_id = ?", userID).
		Preload("FromAccount").
		Preload("ToAccount").
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	return transactions, err
}

func (r *TransactionRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
