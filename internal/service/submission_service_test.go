package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"FarewellVault/internal/api/dto"
	"FarewellVault/internal/pkg/consts"
	"FarewellVault/internal/pkg/progress"
)

// webm 魔数，嗅探结果为 video/webm
var webmHeader = append([]byte{0x1A, 0x45, 0xDF, 0xA3}, bytes.Repeat([]byte{0x00}, 64)...)

func newSubmissionService(messageRepo *fakeMessageRepo, videoRepo *fakeVideoRepo, blob *fakeBlobStore) SubmissionService {
	return NewSubmissionService(messageRepo, videoRepo, blob, progress.NewTracker(time.Millisecond))
}

func TestSubmitText(t *testing.T) {
	messageRepo := newFakeMessageRepo()
	svc := newSubmissionService(messageRepo, newFakeVideoRepo(), &fakeBlobStore{})

	message, err := svc.SubmitText(context.Background(), &dto.TextSubmissionDTO{
		Name:    "Amina",
		Message: "Miss you!",
	})
	if err != nil {
		t.Fatalf("SubmitText: %v", err)
	}

	if message.Name != "Amina" || message.Message != "Miss you!" {
		t.Errorf("stored fields mismatch: %+v", message)
	}
	if message.ID == 0 {
		t.Error("id must be store-assigned")
	}
	if message.CreatedAt.IsZero() {
		t.Error("created_at must be store-assigned")
	}
	if message.IsFavorite {
		t.Error("new submissions start unfavorited")
	}
}

func TestSubmitTextValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     *dto.TextSubmissionDTO
		wantErr error
	}{
		{
			name:    "missing name",
			req:     &dto.TextSubmissionDTO{Message: "hi"},
			wantErr: ErrParamInvalid,
		},
		{
			name:    "missing message",
			req:     &dto.TextSubmissionDTO{Name: "Amina"},
			wantErr: ErrParamInvalid,
		},
		{
			name:    "blank name",
			req:     &dto.TextSubmissionDTO{Name: "   ", Message: "hi"},
			wantErr: ErrParamInvalid,
		},
		{
			name:    "message over limit",
			req:     &dto.TextSubmissionDTO{Name: "Amina", Message: strings.Repeat("x", consts.MaxMessageLength+1)},
			wantErr: ErrMessageTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messageRepo := newFakeMessageRepo()
			svc := newSubmissionService(messageRepo, newFakeVideoRepo(), &fakeBlobStore{})

			_, err := svc.SubmitText(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
			if len(messageRepo.messages) != 0 {
				t.Error("validation failure must not reach the store")
			}
		})
	}
}

func TestSubmitVideo(t *testing.T) {
	videoRepo := newFakeVideoRepo()
	blob := &fakeBlobStore{}
	svc := newSubmissionService(newFakeMessageRepo(), videoRepo, blob)

	video, err := svc.SubmitVideo(context.Background(), "Chen", "up-1", &dto.VideoUpload{
		Filename: "farewell.webm",
		Size:     int64(len(webmHeader)),
		Reader:   bytes.NewReader(webmHeader),
	})
	if err != nil {
		t.Fatalf("SubmitVideo: %v", err)
	}

	if len(blob.uploads) != 1 {
		t.Fatalf("expected one blob upload, got %d", len(blob.uploads))
	}
	if !strings.HasPrefix(video.PublicID, consts.BlobFolder) {
		t.Errorf("object key %q not namespaced under %q", video.PublicID, consts.BlobFolder)
	}
	if !strings.HasSuffix(video.PublicID, ".webm") {
		t.Errorf("object key %q lost the file extension", video.PublicID)
	}
	if video.URL != "https://blob.test/"+video.PublicID {
		t.Errorf("media url %q does not resolve to the stored object", video.URL)
	}

	// 确认成功后进度应为 100
	if value, ok := svc.UploadProgress("up-1"); !ok || value != 100 {
		t.Errorf("progress after success = %d,%v, want 100,true", value, ok)
	}
}

func TestSubmitVideoOversizeRejectedBeforeUpload(t *testing.T) {
	videoRepo := newFakeVideoRepo()
	blob := &fakeBlobStore{}
	svc := newSubmissionService(newFakeMessageRepo(), videoRepo, blob)

	_, err := svc.SubmitVideo(context.Background(), "Chen", "", &dto.VideoUpload{
		Filename: "big.webm",
		Size:     consts.MaxVideoSize + 1,
		Reader:   bytes.NewReader(webmHeader),
	})
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("got %v, want ErrFileTooLarge", err)
	}
	if len(blob.uploads) != 0 {
		t.Error("oversize file must not start an upload")
	}
	if len(videoRepo.videos) != 0 {
		t.Error("oversize file must not create a row")
	}
}

func TestSubmitVideoRejectsNonVideo(t *testing.T) {
	blob := &fakeBlobStore{}
	svc := newSubmissionService(newFakeMessageRepo(), newFakeVideoRepo(), blob)

	_, err := svc.SubmitVideo(context.Background(), "Chen", "", &dto.VideoUpload{
		Filename: "notes.txt",
		Size:     11,
		Reader:   bytes.NewReader([]byte("plain text!")),
	})
	if !errors.Is(err, ErrFileNotSupported) {
		t.Fatalf("got %v, want ErrFileNotSupported", err)
	}
	if len(blob.uploads) != 0 {
		t.Error("rejected file must not be uploaded")
	}
}

func TestSubmitVideoMissingFields(t *testing.T) {
	blob := &fakeBlobStore{}
	svc := newSubmissionService(newFakeMessageRepo(), newFakeVideoRepo(), blob)

	if _, err := svc.SubmitVideo(context.Background(), "", "", &dto.VideoUpload{
		Filename: "a.webm",
		Size:     4,
		Reader:   bytes.NewReader(webmHeader),
	}); !errors.Is(err, ErrParamInvalid) {
		t.Errorf("missing name: got %v, want ErrParamInvalid", err)
	}

	if _, err := svc.SubmitVideo(context.Background(), "Chen", "", nil); !errors.Is(err, ErrParamInvalid) {
		t.Errorf("missing file: got %v, want ErrParamInvalid", err)
	}
}

func TestSubmitVideoRowInsertFailureLeavesOrphan(t *testing.T) {
	videoRepo := newFakeVideoRepo()
	videoRepo.createErr = errors.New("insert failed")
	blob := &fakeBlobStore{}
	svc := newSubmissionService(newFakeMessageRepo(), videoRepo, blob)

	_, err := svc.SubmitVideo(context.Background(), "Chen", "up-2", &dto.VideoUpload{
		Filename: "farewell.webm",
		Size:     int64(len(webmHeader)),
		Reader:   bytes.NewReader(webmHeader),
	})
	if !errors.Is(err, UnExpectedError) {
		t.Fatalf("got %v, want UnExpectedError", err)
	}

	// 字节已落桶，行未写入：孤儿对象是已知的不一致窗口
	if len(blob.uploads) != 1 {
		t.Errorf("expected the orphaned blob upload to have happened, got %d", len(blob.uploads))
	}
	if _, ok := svc.UploadProgress("up-2"); ok {
		t.Error("failed upload must not keep reporting progress")
	}
}

func TestSubmitVideoBlobFailure(t *testing.T) {
	videoRepo := newFakeVideoRepo()
	blob := &fakeBlobStore{uploadErr: errors.New("bucket unreachable")}
	svc := newSubmissionService(newFakeMessageRepo(), videoRepo, blob)

	_, err := svc.SubmitVideo(context.Background(), "Chen", "", &dto.VideoUpload{
		Filename: "farewell.webm",
		Size:     int64(len(webmHeader)),
		Reader:   bytes.NewReader(webmHeader),
	})
	if !errors.Is(err, UnExpectedError) {
		t.Fatalf("got %v, want UnExpectedError", err)
	}
	if len(videoRepo.videos) != 0 {
		t.Error("row must never reference bytes that were not stored")
	}
}

// 端到端：提交 → 审核流可见 → 收藏 → 重新拉取可见新状态
func TestSubmitThenModerate(t *testing.T) {
	messageRepo := newFakeMessageRepo()
	videoRepo := newFakeVideoRepo()
	submissionSvc := newSubmissionService(messageRepo, videoRepo, &fakeBlobStore{})
	feedSvc := NewFeedService(messageRepo, videoRepo)
	ctx := context.Background()

	message, err := submissionSvc.SubmitText(ctx, &dto.TextSubmissionDTO{Name: "Amina", Message: "Miss you!"})
	if err != nil {
		t.Fatalf("SubmitText: %v", err)
	}

	feed, err := feedSvc.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(feed.Items) != 1 {
		t.Fatalf("got %d feed items, want 1", len(feed.Items))
	}
	item := feed.Items[0]
	if item.Type != "text" || item.Content != "Miss you!" || item.IsFavorite {
		t.Fatalf("unexpected feed item %+v", item)
	}

	if _, err = feedSvc.ToggleFavorite(ctx, "text", message.ID, item.IsFavorite); err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}

	feed, err = feedSvc.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !feed.Items[0].IsFavorite {
		t.Error("re-fetch must reflect the confirmed favorite")
	}
}
