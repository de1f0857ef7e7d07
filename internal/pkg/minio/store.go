package minio

import (
	"context"
	"io"
)

// Store 将包级的 MinIO 操作收拢为可注入的实例，便于服务层以接口依赖
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	return UploadFile(ctx, objectName, reader, size, contentType)
}

func (s *Store) PublicURL(objectName string) string {
	return GetPublicURL(objectName)
}
