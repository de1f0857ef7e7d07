package service

import (
	"FarewellVault/internal/api/dto"
	"FarewellVault/internal/model"
	"FarewellVault/internal/pkg/consts"
	"FarewellVault/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"sort"
	"strconv"
	"sync"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

const (
	FilterAll       = "all"
	FilterText      = "text"
	FilterVideo     = "video"
	FilterFavorites = "favorites"
)

type FeedService interface {
	Load(ctx context.Context) (*dto.FeedDTO, error)
	ListMessages(ctx context.Context) ([]*model.Message, error)
	ListVideos(ctx context.Context) ([]*model.Video, error)
	SetFavorite(ctx context.Context, variant string, id uint64, value bool) (*dto.FeedItemDTO, error)
	ToggleFavorite(ctx context.Context, variant string, id uint64, current bool) (*dto.FeedItemDTO, error)
	GetTextContent(ctx context.Context, id uint64) (string, error)
}

type feedServiceImpl struct {
	messageRepo repository.MessageRepo
	videoRepo   repository.VideoRepo

	// 上次加载的合并视图缓存，仅在存储确认后更新
	mu    sync.Mutex
	cache map[string]*dto.FeedItemDTO
}

func NewFeedService(messageRepo repository.MessageRepo, videoRepo repository.VideoRepo) FeedService {
	return &feedServiceImpl{
		messageRepo: messageRepo,
		videoRepo:   videoRepo,
		cache:       make(map[string]*dto.FeedItemDTO),
	}
}

// Load 并发拉取两个集合；单边失败不拖垮另一边，部分结果照常返回，
// Failed 标出失败的集合。两边都失败才算加载失败。
func (s *feedServiceImpl) Load(ctx context.Context) (*dto.FeedDTO, error) {
	var (
		wg       sync.WaitGroup
		messages []*model.Message
		videos   []*model.Video
		msgErr   error
		vidErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		messages, msgErr = s.messageRepo.ListMessages(ctx)
	}()
	go func() {
		defer wg.Done()
		videos, vidErr = s.videoRepo.ListVideos(ctx)
	}()
	wg.Wait()

	if msgErr != nil && vidErr != nil {
		log.ErrorContext(ctx, "feed load failed", "msg_err", msgErr, "vid_err", vidErr)
		return nil, UnExpectedError
	}

	var failed []string
	if msgErr != nil {
		log.WarnContext(ctx, "message collection fetch failed", "err", msgErr)
		failed = append(failed, "messages")
	}
	if vidErr != nil {
		log.WarnContext(ctx, "video collection fetch failed", "err", vidErr)
		failed = append(failed, "videos")
	}

	items := MergeFeed(messages, videos)

	s.mu.Lock()
	s.cache = make(map[string]*dto.FeedItemDTO, len(items))
	for _, item := range items {
		s.cache[cacheKey(item.Type, item.ID)] = item
	}
	s.mu.Unlock()

	return &dto.FeedDTO{Items: items, Failed: failed}, nil
}

func (s *feedServiceImpl) ListMessages(ctx context.Context) ([]*model.Message, error) {
	messages, err := s.messageRepo.ListMessages(ctx)
	if err != nil {
		log.ErrorContext(ctx, "message list failed", "err", err)
		return nil, UnExpectedError
	}
	return messages, nil
}

func (s *feedServiceImpl) ListVideos(ctx context.Context) ([]*model.Video, error) {
	videos, err := s.videoRepo.ListVideos(ctx)
	if err != nil {
		log.ErrorContext(ctx, "video list failed", "err", err)
		return nil, UnExpectedError
	}
	return videos, nil
}

// SetFavorite 先写存储，确认成功后才更新本地缓存；失败时缓存保持原样
func (s *feedServiceImpl) SetFavorite(ctx context.Context, variant string, id uint64, value bool) (*dto.FeedItemDTO, error) {
	var (
		item *dto.FeedItemDTO
		err  error
	)

	switch variant {
	case consts.VariantText:
		var message *model.Message
		message, err = s.messageRepo.UpdateFavorite(ctx, id, value)
		if err == nil {
			item = projectMessage(message)
		}
	case consts.VariantVideo:
		var video *model.Video
		video, err = s.videoRepo.UpdateFavorite(ctx, id, value)
		if err == nil {
			item = projectVideo(video)
		}
	default:
		return nil, ErrParamInvalid
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		log.ErrorContext(ctx, "favorite update failed", "variant", variant, "id", id, "err", err)
		return nil, UnExpectedError
	}

	s.mu.Lock()
	if cached, ok := s.cache[cacheKey(variant, id)]; ok {
		cached.IsFavorite = item.IsFavorite
	}
	s.mu.Unlock()

	return item, nil
}

// ToggleFavorite 向存储发送 current 的反值
func (s *feedServiceImpl) ToggleFavorite(ctx context.Context, variant string, id uint64, current bool) (*dto.FeedItemDTO, error) {
	return s.SetFavorite(ctx, variant, id, !current)
}

func (s *feedServiceImpl) GetTextContent(ctx context.Context, id uint64) (string, error) {
	message, err := s.messageRepo.GetMessageByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSubmissionNotFound
		}
		return "", UnExpectedError
	}
	return message.Message, nil
}

// MergeFeed 将两个集合投影为带变体标签的统一条目并按 created_at
// 降序稳定排序，时间相同的保持文本在前的枚举顺序。
func MergeFeed(messages []*model.Message, videos []*model.Video) []*dto.FeedItemDTO {
	items := make([]*dto.FeedItemDTO, 0, len(messages)+len(videos))
	for _, m := range messages {
		items = append(items, projectMessage(m))
	}
	for _, v := range videos {
		items = append(items, projectVideo(v))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items
}

// FilterFeed 对已合并序列做纯过滤，不改变相对顺序，绝不重排
func FilterFeed(items []*dto.FeedItemDTO, mode string) []*dto.FeedItemDTO {
	if mode == FilterAll {
		return items
	}

	filtered := make([]*dto.FeedItemDTO, 0, len(items))
	for _, item := range items {
		switch mode {
		case FilterFavorites:
			if item.IsFavorite {
				filtered = append(filtered, item)
			}
		case FilterText, FilterVideo:
			if item.Type == mode {
				filtered = append(filtered, item)
			}
		}
	}
	return filtered
}

func projectMessage(m *model.Message) *dto.FeedItemDTO {
	item := &dto.FeedItemDTO{}
	_ = copier.Copy(item, m)
	item.Type = consts.VariantText
	item.Content = m.Message
	return item
}

func projectVideo(v *model.Video) *dto.FeedItemDTO {
	item := &dto.FeedItemDTO{}
	_ = copier.Copy(item, v)
	item.Type = consts.VariantVideo
	item.Content = v.URL
	return item
}

func cacheKey(variant string, id uint64) string {
	return variant + ":" + strconv.FormatUint(id, 10)
}
