package handler

import (
	"FarewellVault/internal/api/dto"
	"FarewellVault/internal/pkg/consts"
	"FarewellVault/internal/pkg/response"
	"FarewellVault/internal/reveal"
	"FarewellVault/internal/service"
	"io"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// revealInterval 逐字显示的节拍
const revealInterval = 30 * time.Millisecond

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{feedSvc: feedSvc}
}

func (s *FeedHandler) ListMessages(c *gin.Context) {
	messages, err := s.feedSvc.ListMessages(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, messages)
}

func (s *FeedHandler) ListVideos(c *gin.Context) {
	videos, err := s.feedSvc.ListVideos(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, videos)
}

// GetFeed 返回合并投影，filter 参数可选
func (s *FeedHandler) GetFeed(c *gin.Context) {
	mode := c.DefaultQuery("filter", service.FilterAll)
	switch mode {
	case service.FilterAll, service.FilterText, service.FilterVideo, service.FilterFavorites:
	default:
		response.Error(c, service.ErrParamInvalid)
		return
	}

	feed, err := s.feedSvc.Load(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	feed.Items = service.FilterFeed(feed.Items, mode)
	response.Success(c, feed)
}

func (s *FeedHandler) FavoriteMessage(c *gin.Context) {
	s.setFavorite(c, consts.VariantText)
}

func (s *FeedHandler) FavoriteVideo(c *gin.Context) {
	s.setFavorite(c, consts.VariantVideo)
}

func (s *FeedHandler) setFavorite(c *gin.Context, variant string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.FavoriteDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	item, err := s.feedSvc.SetFavorite(c.Request.Context(), variant, id, *req.IsFavorite)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, item)
}

// Reveal 以 SSE 流逐字推送留言正文，连接断开即停止
func (s *FeedHandler) Reveal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	content, err := s.feedSvc.GetTextContent(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	prefixes := reveal.Stream(c.Request.Context(), content, revealInterval)
	c.Stream(func(w io.Writer) bool {
		prefix, ok := <-prefixes
		if !ok {
			return false
		}
		c.SSEvent("reveal", prefix)
		return true
	})
}
