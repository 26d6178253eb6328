package users

import "time"

type User struct {
	ID              uint   `gorm:"primaryKey"`
	Email           string `gorm:"size:100;unique;not null"`
	Username        string `gorm:"size:50;unique;not null"`
	PasswordHash    string `gorm:"not null"`
	ProfileImageURL string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
