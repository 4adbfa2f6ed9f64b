package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction records a completed transfer between two accounts.
// Rows are immutable once created; there is no edit or delete path.
type Transaction struct {
	gorm.Model
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	User          User            `gorm:"foreignKey:UserID" json:"-"`
	FromAccountID uint            `gorm:"not null;index" json:"from_account_id"`
	FromAccount   Account         `gorm:"foreignKey:FromAccountID" json:"from_account,omitempty"`
	ToAccountID   uint            `gorm:"not null;index" json:"to_account_id"`
	ToAccount     Account         `gorm:"foreignKey:ToAccountID" json:"to_account,omitempty"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date          time.Time       `gorm:"not null" json:"date"`
	Comment       string          `gorm:"size:200" json:"comment,omitempty"`
}
