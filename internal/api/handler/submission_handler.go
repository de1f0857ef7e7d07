package handler

import (
	"FarewellVault/internal/api/dto"
	"FarewellVault/internal/pkg/consts"
	"FarewellVault/internal/pkg/response"
	"FarewellVault/internal/pkg/util"
	"FarewellVault/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	submissionSvc service.SubmissionService
	gatewaySvc    service.GatewayService
}

func NewSubmissionHandler(submissionSvc service.SubmissionService, gatewaySvc service.GatewayService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionSvc: submissionSvc,
		gatewaySvc:    gatewaySvc,
	}
}

// GatewayStatus 查询该客户端是否仍可提交。
// 这是一个易用性引导而非安全控制，清掉客户端标识即可绕过。
func (s *SubmissionHandler) GatewayStatus(c *gin.Context) {
	clientID := c.GetHeader("X-Client-Id")
	if clientID == "" {
		response.Success(c, map[string]bool{"can_submit": true})
		return
	}

	canSubmit, err := s.gatewaySvc.CanSubmit(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, service.UnExpectedError)
		return
	}
	response.Success(c, map[string]bool{"can_submit": canSubmit})
}

func (s *SubmissionHandler) SubmitText(c *gin.Context) {
	var req dto.TextSubmissionDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	message, err := s.submissionSvc.SubmitText(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	s.markSubmitted(c)
	response.CreatedSuccess(c, message)
}

func (s *SubmissionHandler) SubmitVideo(c *gin.Context) {
	name := c.PostForm("name")
	uploadID := c.PostForm("upload_id")

	fileHeader, err := c.FormFile("video")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	// 超限文件在打开前即拒绝，不发起任何上传
	if fileHeader.Size > consts.MaxVideoSize {
		response.Error(c, service.ErrFileTooLarge)
		return
	}

	reader, err := fileHeader.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	upload := &dto.VideoUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Reader:   reader,
	}
	video, err := s.submissionSvc.SubmitVideo(c.Request.Context(), name, uploadID, upload)
	if err != nil {
		response.Error(c, err)
		return
	}

	s.markSubmitted(c)
	response.CreatedSuccess(c, video)
}

func (s *SubmissionHandler) UploadProgress(c *gin.Context) {
	uploadID := c.Param("upload_id")
	value, ok := s.submissionSvc.UploadProgress(uploadID)
	if !ok {
		response.Error(c, service.ErrSubmissionNotFound)
		return
	}
	response.Success(c, map[string]int{"progress": value})
}

// markSubmitted 仅在持久化确认后设置一次性标记，失败的提交留给访客重试
func (s *SubmissionHandler) markSubmitted(c *gin.Context) {
	clientID := c.GetHeader("X-Client-Id")
	if clientID == "" {
		return
	}
	if err := s.gatewaySvc.MarkSubmitted(c.Request.Context(), clientID); err != nil {
		log.WarnContext(c.Request.Context(), "failed to mark client as submitted", "err", err)
	}
}
