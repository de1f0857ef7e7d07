package model

import (
	"time"
)

type Moderator struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_email" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Moderator) TableName() string {
	return "moderators"
}
