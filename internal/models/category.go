package models

import "gorm.io/gorm"

const (
	CategoryExpense = "expense"
	CategoryIncome  = "income"
)

type Category struct {
	gorm.Model
	UserID uint   `gorm:"not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Name   string `gorm:"size:100;not null" json:"name"`
	Kind   string `gorm:"size:16;not null;index" json:"kind"`
	Icon   string `gorm:"size:255" json:"icon,omitempty"`
}
