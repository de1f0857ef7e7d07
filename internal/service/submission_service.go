package service

import (
	"FarewellVault/internal/api/dto"
	"FarewellVault/internal/model"
	"FarewellVault/internal/pkg/consts"
	"FarewellVault/internal/pkg/progress"
	"FarewellVault/internal/pkg/util"
	"FarewellVault/internal/repository"
	"context"
	"io"
	log "log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BlobStore 视频字节的外部存储，上传成功后返回对象键
type BlobStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	PublicURL(objectName string) string
}

type SubmissionService interface {
	SubmitText(ctx context.Context, req *dto.TextSubmissionDTO) (*model.Message, error)
	SubmitVideo(ctx context.Context, name, uploadID string, file *dto.VideoUpload) (*model.Video, error)
	UploadProgress(uploadID string) (int, bool)
}

type submissionServiceImpl struct {
	messageRepo repository.MessageRepo
	videoRepo   repository.VideoRepo
	blob        BlobStore
	tracker     *progress.Tracker
}

func NewSubmissionService(
	messageRepo repository.MessageRepo,
	videoRepo repository.VideoRepo,
	blob BlobStore,
	tracker *progress.Tracker,
) SubmissionService {
	return &submissionServiceImpl{
		messageRepo: messageRepo,
		videoRepo:   videoRepo,
		blob:        blob,
		tracker:     tracker,
	}
}

// SubmitText 校验通过后写入留言，id 与 created_at 由存储分配
func (s *submissionServiceImpl) SubmitText(ctx context.Context, req *dto.TextSubmissionDTO) (*model.Message, error) {
	name := strings.TrimSpace(req.Name)
	body := req.Message
	if name == "" || body == "" {
		return nil, ErrParamInvalid
	}
	if len([]rune(body)) > consts.MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	msgType := req.Type
	if msgType == "" {
		msgType = consts.DefaultMessageType
	}

	message := &model.Message{
		Name:    name,
		Message: body,
		Type:    msgType,
	}
	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		log.ErrorContext(ctx, "message insert failed", "err", err)
		return nil, UnExpectedError
	}
	return message, nil
}

// SubmitVideo 先传输字节到对象存储，成功后才写关系库行。
// 行写入失败时对象成为孤儿，只记录日志，不做补偿删除。
func (s *submissionServiceImpl) SubmitVideo(ctx context.Context, name, uploadID string, file *dto.VideoUpload) (*model.Video, error) {
	name = strings.TrimSpace(name)
	if name == "" || file == nil || file.Reader == nil {
		return nil, ErrParamInvalid
	}
	if file.Size > consts.MaxVideoSize {
		return nil, ErrFileTooLarge
	}

	contentType, err := util.GetSafeContentType(file.Reader)
	if err != nil {
		return nil, ErrParamInvalid
	}
	if !strings.HasPrefix(contentType, consts.MimePrefixVideo) {
		return nil, ErrFileNotSupported
	}

	s.tracker.Start(uploadID)

	ext := path.Ext(file.Filename)
	objectName := consts.BlobFolder + time.Now().Format("2006/01/02/") + uuid.NewString() + ext

	publicID, err := s.blob.Upload(ctx, objectName, file.Reader, file.Size, contentType)
	if err != nil {
		s.tracker.Finish(uploadID, false)
		log.ErrorContext(ctx, "blob upload failed", "object", objectName, "err", err)
		return nil, UnExpectedError
	}

	video := &model.Video{
		Name:     name,
		URL:      s.blob.PublicURL(publicID),
		PublicID: publicID,
	}
	if err = s.videoRepo.CreateVideo(ctx, video); err != nil {
		s.tracker.Finish(uploadID, false)
		// 已知的不一致窗口：字节已落桶但行写入失败，对象键留作人工排查
		log.WarnContext(ctx, "video row insert failed, blob orphaned", "public_id", publicID, "err", err)
		return nil, UnExpectedError
	}

	s.tracker.Finish(uploadID, true)
	return video, nil
}

func (s *submissionServiceImpl) UploadProgress(uploadID string) (int, bool) {
	return s.tracker.Progress(uploadID)
}
