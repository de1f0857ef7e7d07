package model

import (
	"time"
)

type Message struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Message    string    `gorm:"type:varchar(500);not null" json:"message"`
	Type       string    `gorm:"type:varchar(32);not null;default:'personal'" json:"type"`
	IsFavorite bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
