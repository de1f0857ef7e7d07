package consts

const (
	MimePrefixVideo = "video"
)

const (
	// MaxMessageLength 留言正文最大长度
	MaxMessageLength = 500
	// MaxVideoSize 视频文件大小上限 (200 MiB)
	MaxVideoSize int64 = 200 * 1024 * 1024
)

const (
	// BlobFolder 视频在对象存储中的命名空间
	BlobFolder = "farewell-vault/"
)

const (
	VariantText  = "text"
	VariantVideo = "video"
)

const (
	// SubmittedFlagValue 一次性提交标记的哨兵值
	SubmittedFlagValue = "true"
	DefaultMessageType = "personal"
)
