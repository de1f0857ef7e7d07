package model

import (
	"time"
)

type Video struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	URL        string    `gorm:"type:varchar(512);not null" json:"url"`
	PublicID   string    `gorm:"type:varchar(512);not null" json:"public_id"`
	IsFavorite bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Video) TableName() string {
	return "videos"
}
