package consts

const (
	SubmittedFlagKey  = "submission:client:"
	FeedStatsMessages = "feed:stats:messages"
	FeedStatsVideos   = "feed:stats:videos"
)
