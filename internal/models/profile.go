package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProfile holds the optional personal data attached to a user,
// created lazily on first visit to the profile page.
type UserProfile struct {
	gorm.Model
	UserID      uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID" json:"-"`
	Name        string     `gorm:"size:100" json:"name"`
	Surname     string     `gorm:"size:100" json:"surname"`
	Patronymic  string     `gorm:"size:100" json:"patronymic"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Phone       string     `gorm:"size:20" json:"phone"`
	Sex         string     `gorm:"size:30" json:"sex"`
}
