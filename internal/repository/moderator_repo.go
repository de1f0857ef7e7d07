package repository

import (
	"FarewellVault/internal/model"
	"context"

	"gorm.io/gorm"
)

type ModeratorRepo interface {
	CreateModerator(ctx context.Context, moderator *model.Moderator) error
	GetModeratorByEmail(ctx context.Context, email string) (*model.Moderator, error)
}

type ModeratorRepoImpl struct {
	db *gorm.DB
}

func NewModeratorRepo(db *gorm.DB) ModeratorRepo {
	return &ModeratorRepoImpl{db}
}

func (s *ModeratorRepoImpl) CreateModerator(ctx context.Context, moderator *model.Moderator) error {
	return s.db.WithContext(ctx).Create(moderator).Error
}

func (s *ModeratorRepoImpl) GetModeratorByEmail(ctx context.Context, email string) (*model.Moderator, error) {
	var moderator model.Moderator
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&moderator).Error
	if err != nil {
		return nil, err
	}
	return &moderator, nil
}
