package repository

import (
	"FarewellVault/internal/model"
	"context"

	"gorm.io/gorm"
)

type VideoRepo interface {
	CreateVideo(ctx context.Context, video *model.Video) error
	GetVideoByID(ctx context.Context, id uint64) (*model.Video, error)
	ListVideos(ctx context.Context) ([]*model.Video, error)
	UpdateFavorite(ctx context.Context, id uint64, isFavorite bool) (*model.Video, error)
	CountVideos(ctx context.Context) (int64, error)
}

type VideoRepoImpl struct {
	db *gorm.DB
}

func NewVideoRepo(db *gorm.DB) VideoRepo {
	return &VideoRepoImpl{db}
}

func (s *VideoRepoImpl) CreateVideo(ctx context.Context, video *model.Video) error {
	return s.db.WithContext(ctx).Create(video).Error
}

func (s *VideoRepoImpl) GetVideoByID(ctx context.Context, id uint64) (*model.Video, error) {
	var video model.Video
	err := s.db.WithContext(ctx).First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *VideoRepoImpl) ListVideos(ctx context.Context) ([]*model.Video, error) {
	var videos []*model.Video
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

func (s *VideoRepoImpl) UpdateFavorite(ctx context.Context, id uint64, isFavorite bool) (*model.Video, error) {
	result := s.db.WithContext(ctx).Model(&model.Video{}).
		Where("id = ?", id).
		Update("is_favorite", isFavorite)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return s.GetVideoByID(ctx, id)
}

func (s *VideoRepoImpl) CountVideos(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Video{}).Count(&count).Error
	return count, err
}
