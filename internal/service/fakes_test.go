package service

import (
	"FarewellVault/internal/model"
	"context"
	"io"
	"sort"
	"time"

	"gorm.io/gorm"
)

// 内存版仓储与外部依赖，时间戳由测试侧时钟分配以便构造排序场景

type fakeMessageRepo struct {
	messages  []*model.Message
	nextID    uint64
	now       func() time.Time
	createErr error
	listErr   error
	updateErr error
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{nextID: 1, now: time.Now}
}

func (s *fakeMessageRepo) CreateMessage(_ context.Context, message *model.Message) error {
	if s.createErr != nil {
		return s.createErr
	}
	message.ID = s.nextID
	s.nextID++
	message.CreatedAt = s.now()
	clone := *message
	s.messages = append(s.messages, &clone)
	return nil
}

func (s *fakeMessageRepo) GetMessageByID(_ context.Context, id uint64) (*model.Message, error) {
	for _, m := range s.messages {
		if m.ID == id {
			clone := *m
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeMessageRepo) ListMessages(_ context.Context) ([]*model.Message, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]*model.Message, 0, len(s.messages))
	for _, m := range s.messages {
		clone := *m
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *fakeMessageRepo) UpdateFavorite(ctx context.Context, id uint64, isFavorite bool) (*model.Message, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	for _, m := range s.messages {
		if m.ID == id {
			m.IsFavorite = isFavorite
			return s.GetMessageByID(ctx, id)
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeMessageRepo) CountMessages(_ context.Context) (int64, error) {
	return int64(len(s.messages)), nil
}

type fakeVideoRepo struct {
	videos    []*model.Video
	nextID    uint64
	now       func() time.Time
	createErr error
	listErr   error
	updateErr error
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{nextID: 1, now: time.Now}
}

func (s *fakeVideoRepo) CreateVideo(_ context.Context, video *model.Video) error {
	if s.createErr != nil {
		return s.createErr
	}
	video.ID = s.nextID
	s.nextID++
	video.CreatedAt = s.now()
	clone := *video
	s.videos = append(s.videos, &clone)
	return nil
}

func (s *fakeVideoRepo) GetVideoByID(_ context.Context, id uint64) (*model.Video, error) {
	for _, v := range s.videos {
		if v.ID == id {
			clone := *v
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeVideoRepo) ListVideos(_ context.Context) ([]*model.Video, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]*model.Video, 0, len(s.videos))
	for _, v := range s.videos {
		clone := *v
		out = append(out, &clone)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *fakeVideoRepo) UpdateFavorite(ctx context.Context, id uint64, isFavorite bool) (*model.Video, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	for _, v := range s.videos {
		if v.ID == id {
			v.IsFavorite = isFavorite
			return s.GetVideoByID(ctx, id)
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeVideoRepo) CountVideos(_ context.Context) (int64, error) {
	return int64(len(s.videos)), nil
}

type fakeModeratorRepo struct {
	moderators []*model.Moderator
	nextID     uint64
	createErr  error
}

func newFakeModeratorRepo() *fakeModeratorRepo {
	return &fakeModeratorRepo{nextID: 1}
}

func (s *fakeModeratorRepo) CreateModerator(_ context.Context, moderator *model.Moderator) error {
	if s.createErr != nil {
		return s.createErr
	}
	moderator.ID = s.nextID
	s.nextID++
	moderator.CreatedAt = time.Now()
	clone := *moderator
	s.moderators = append(s.moderators, &clone)
	return nil
}

func (s *fakeModeratorRepo) GetModeratorByEmail(_ context.Context, email string) (*model.Moderator, error) {
	for _, m := range s.moderators {
		if m.Email == email {
			clone := *m
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeBlobStore struct {
	uploads   []string
	uploadErr error
}

func (s *fakeBlobStore) Upload(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	_, _ = io.Copy(io.Discard, reader)
	s.uploads = append(s.uploads, objectName)
	return objectName, nil
}

func (s *fakeBlobStore) PublicURL(objectName string) string {
	return "https://blob.test/" + objectName
}

type fakeFlagStore struct {
	values map[string]string
	getErr error
	setErr error
}

func newFakeFlagStore() *fakeFlagStore {
	return &fakeFlagStore{values: make(map[string]string)}
}

func (s *fakeFlagStore) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	return s.values[key], nil
}

func (s *fakeFlagStore) Set(_ context.Context, key string, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}
