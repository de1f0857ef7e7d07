package dto

import "io"

// TextSubmissionDTO 文本留言提交
type TextSubmissionDTO struct {
	Name    string `json:"name" binding:"required" validate:"required,min=1,max=255"`
	Message string `json:"message" binding:"required" validate:"required,min=1,max=500"`
	Type    string `json:"type"`
}

// VideoUpload 视频提交的载荷，由 multipart 表单装配
type VideoUpload struct {
	Filename string
	Size     int64
	Reader   io.ReadSeeker
}

// FavoriteDTO 收藏状态更新
type FavoriteDTO struct {
	IsFavorite *bool `json:"isFavorite" binding:"required"`
}
