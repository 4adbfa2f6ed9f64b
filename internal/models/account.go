package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Account struct {
	gorm.Model
	UserID  uint            `gorm:"not null;index" json:"user_id"`
	User    User            `gorm:"foreignKey:UserID" json:"-"`
	Name    string          `gorm:"size:50;not null" json:"name"`
	Balance decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"balance"`
	Icon    string          `gorm:"size:255" json:"icon,omitempty"`
}
