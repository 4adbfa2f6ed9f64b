package repository

import (
	"errors"

	"github.com/MikhailEmv/SmartBudget/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

func (r *AccountRepository) FindByID(id uint) (*models.Account, error) {
	var account models.Account
	err := r.db.First(&account, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByIDAndUser(id, userID uint) (*models.Account, error) {
	var account models.Account
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByIDForUpdate(tx *gorm.DB, id uint) (*models.Account, error) {
	var account models.Account
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&account, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) ListByUser(userID uint) ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.Where("user_id = ?", userID).Order("name").Find(&accounts).Error
	return accounts, err
}

func (r *AccountRepository) FindAll() ([]models.Account, error) {
	var accounts []models.Account
	err := r.db.Preload("User").Order("name").Find(&accounts).Error
	return accounts, err
}

func (r *AccountRepository) CountByUserAndName(userID uint, name string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Account{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error
	return count, err
}

func (r *AccountRepository) Update(account *models.Account) error {
	return r.db.Save(account).Error
}

func (r *AccountRepository) UpdateInTx(tx *gorm.DB, account *models.Account) error {
	return tx.Save(account).Error
}

func (r *AccountRepository) Delete(id, userID uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Account{}).Error
}
