package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username      string     `gorm:"size:150;not null" json:"username"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string     `gorm:"size:255;not null" json:"-"`
	EmailVerified bool       `gorm:"default:false" json:"email_verified"`
	Accounts      []Account  `gorm:"foreignKey:UserID" json:"-"`
	Categories    []Category `gorm:"foreignKey:UserID" json:"-"`
}
