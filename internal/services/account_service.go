package services

import (
	"errors"

	"github.com/MikhailEmv/SmartBudget/internal/models"
	"github.com/MikhailEmv/SmartBudget/internal/repository"
	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrAccountNameTaken = errors.New("account name already in use")
)

type AccountService struct {
	accountRepo *repository.AccountRepository
}

func NewAccountService(accountRepo *repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) List(userID uint) ([]models.Account, error) {
	return s.accountRepo.ListByUser(userID)
}

// ListAll returns every account in the system; transfer destinations may
// belong to other users.
func (s *AccountService) ListAll() ([]models.Account, error) {
	return s.accountRepo.FindAll()
}

func (s *AccountService) Get(userID, id uint) (*models.Account, error) {
	account, err := s.accountRepo.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *AccountService) Create(userID uint, name string, balance decimal.Decimal, icon string) (*models.Account, error) {
	count, err := s.accountRepo.CountByUserAndName(userID, name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAccountNameTaken
	}

	account := &models.Account{
		UserID:  userID,
		Name:    name,
		Balance: balance,
		Icon:    icon,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// Update edits an account directly. The balance is applied as given, with
// no sign check: a direct edit may push an account negative, unlike the
// transfer path.
func (s *AccountService) Update(userID, id uint, name string, balance decimal.Decimal, icon string) (*models.Account, error) {
	account, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	account.Name = name
	account.Balance = balance
	if icon != "" {
		account.Icon = icon
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) Delete(userID, id uint) error {
	account, err := s.accountRepo.FindByIDAndUser(id, userID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}
	return s.accountRepo.Delete(id, userID)
}
