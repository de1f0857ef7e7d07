package dto

import "time"

// FeedItemDTO 合并视图中的一条投稿，content 按变体取留言正文或视频地址
type FeedItemDTO struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Content    string    `json:"content"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
}

// FeedDTO 合并后的审核视图，Failed 标记加载失败的集合
type FeedDTO struct {
	Items  []*FeedItemDTO `json:"items"`
	Failed []string       `json:"failed,omitempty"`
}
