package model

import (
	"time"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

type NewsSuggestion struct {
	ID        uint    `gorm:"primaryKey"`
	Name      *string `gorm:"size:100"`
	Email     *string `gorm:"size:255"`
	Title     string  `gorm:"size:255;not null"`
	Text      string  `gorm:"type:text;not null"`
	Link      *string `gorm:"size:512"`
	CreatedAt time.Time
}

type Order struct {
	ID              uint    `gorm:"primaryKey"`
	MovieName       string  `gorm:"size:255;not null"`
	MoviePrice      float64 `gorm:"not null"`
	Quantity        int     `gorm:"not null"`
	TotalPrice      float64 `gorm:"not null"`
	CustomerName    string  `gorm:"size:100;not null"`
	CustomerEmail   string  `gorm:"size:255;not null"`
	CustomerPhone   string  `gorm:"size:32;not null"`
	DeliveryAddress string  `gorm:"size:512;not null"`
	PaymentMethod   string  `gorm:"size:32;not null"`
	CreatedAt       time.Time
}
