package job

import (
	"FarewellVault/internal/pkg/consts"
	"FarewellVault/internal/pkg/logger"
	"FarewellVault/internal/pkg/redis"
	"FarewellVault/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const statsExpiration = 48 * time.Hour

// FeedStatsJob 定期统计两类投稿的总量并缓存
type FeedStatsJob struct {
	messageRepo repository.MessageRepo
	videoRepo   repository.VideoRepo
}

func NewFeedStatsJob(messageRepo repository.MessageRepo, videoRepo repository.VideoRepo) *FeedStatsJob {
	return &FeedStatsJob{
		messageRepo: messageRepo,
		videoRepo:   videoRepo,
	}
}

func (s *FeedStatsJob) Run() {
	traceID := "job-feed-stats-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	messageCount, err := s.messageRepo.CountMessages(ctx)
	if err != nil {
		log.ErrorContext(ctx, "count messages failed", "err", err)
		return
	}

	videoCount, err := s.videoRepo.CountVideos(ctx)
	if err != nil {
		log.ErrorContext(ctx, "count videos failed", "err", err)
		return
	}

	_ = redis.SetWithExpiration(ctx, consts.FeedStatsMessages, messageCount, statsExpiration)
	_ = redis.SetWithExpiration(ctx, consts.FeedStatsVideos, videoCount, statsExpiration)

	log.InfoContext(ctx, "FeedStatsJob finished",
		"message_count", messageCount,
		"video_count", videoCount,
	)
}
