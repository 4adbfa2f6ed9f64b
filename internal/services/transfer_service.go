package services

import (
	"errors"
	"time"

	"github.com/MikhailEmv/SmartBudget/internal/models"
	"github.com/MikhailEmv/SmartBudget/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrSameAccount       = errors.New("cannot transfer to the same account")
	ErrNotAccountOwner   = errors.New("account does not belong to user")
)

type TransferService struct {
	accountRepo     *repository.AccountRepository
	transactionRepo *repository.TransactionRepository
	db              *gorm.DB
}

func NewTransferService(accountRepo *repository.AccountRepository, transactionRepo *repository.TransactionRepository, db *gorm.DB) *TransferService {
	return &TransferService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		db:              db,
	}
}

// Transfer moves amount from one account to another and records a
// Transaction, all inside a single database transaction. The source
// account must belong to the requesting user; the destination may belong
// to anyone.
func (s *TransferService) Transfer(userID, fromID, toID uint, amount decimal.Decimal, date time.Time, comment string) (*models.Transaction, error) {
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return nil, ErrInvalidAmount
	}

	if fromID == toID {
		return nil, ErrSameAccount
	}

	if date.IsZero() {
		date = time.Now()
	}

	var transaction *models.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Lock rows in ascending id order so two opposite-direction
		// transfers cannot deadlock.
		firstID, secondID := fromID, toID
		if secondID < firstID {
			firstID, secondID = secondID, firstID
		}

		first, err := s.accountRepo.FindByIDForUpdate(tx, firstID)
		if err != nil {
			return err
		}
		second, err := s.accountRepo.FindByIDForUpdate(tx, secondID)
		if err != nil {
			return err
		}

		from, to := first, second
		if fromID != firstID {
			from, to = second, first
		}

		if from == nil || to == nil {
			return ErrAccountNotFound
		}

		if from.UserID != userID {
			return ErrNotAccountOwner
		}

		if from.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		from.Balance = from.Balance.Sub(amount)
		to.Balance = to.Balance.Add(amount)

		if err := s.accountRepo.UpdateInTx(tx, from); err != nil {
			return err
		}
		if err := s.accountRepo.UpdateInTx(tx, to); err != nil {
			return err
		}

		transaction = &models.Transaction{
			UserID:        userID,
			FromAccountID: from.ID,
			ToAccountID:   to.ID,
			Amount:        amount,
			Date:          date,
			Comment:       comment,
		}
		return s.transactionRepo.Create(tx, transaction)
	})

	if err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransferService) History(userID uint) ([]models.Transaction, error) {
	return s.transactionRepo.ListByUser(userID)
}

func (s *TransferService) RecentHistory(userID uint, limit int) ([]models.Transaction, error) {
	return s.transactionRepo.ListRecentByUser(userID, limit)
}
