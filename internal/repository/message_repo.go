package repository

import (
	"FarewellVault/internal/model"
	"context"

	"gorm.io/gorm"
)

type MessageRepo interface {
	CreateMessage(ctx context.Context, message *model.Message) error
	GetMessageByID(ctx context.Context, id uint64) (*model.Message, error)
	ListMessages(ctx context.Context) ([]*model.Message, error)
	UpdateFavorite(ctx context.Context, id uint64, isFavorite bool) (*model.Message, error)
	CountMessages(ctx context.Context) (int64, error)
}

type MessageRepoImpl struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) MessageRepo {
	return &MessageRepoImpl{db}
}

func (s *MessageRepoImpl) CreateMessage(ctx context.Context, message *model.Message) error {
	return s.db.WithContext(ctx).Create(message).Error
}

func (s *MessageRepoImpl) GetMessageByID(ctx context.Context, id uint64) (*model.Message, error) {
	var message model.Message
	err := s.db.WithContext(ctx).First(&message, id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (s *MessageRepoImpl) ListMessages(ctx context.Context) ([]*model.Message, error) {
	var messages []*model.Message
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (s *MessageRepoImpl) UpdateFavorite(ctx context.Context, id uint64, isFavorite bool) (*model.Message, error) {
	result := s.db.WithContext(ctx).Model(&model.Message{}).
		Where("id = ?", id).
		Update("is_favorite", isFavorite)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.GetMessageByID(ctx, id)
}

func (s *MessageRepoImpl) CountMessages(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Message{}).Count(&count).Error
	return count, err
}
