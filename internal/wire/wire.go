package wire

import (
	"FarewellVault/internal/api"
	"FarewellVault/internal/api/handler"
	"FarewellVault/internal/job"
	"FarewellVault/internal/pkg/cron"
	"FarewellVault/internal/pkg/minio"
	"FarewellVault/internal/pkg/progress"
	"FarewellVault/internal/repository"
	"FarewellVault/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// uploadHeartbeat 上传进度心跳间隔
const uploadHeartbeat = 500 * time.Millisecond

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB) (*ApplicationContainer, error) {
	messageRepo := repository.NewMessageRepo(db)
	videoRepo := repository.NewVideoRepo(db)
	moderatorRepo := repository.NewModeratorRepo(db)

	authService := service.NewAuthService(moderatorRepo)
	gatewayService := service.NewGatewayService(service.NewRedisFlagStore())
	submissionService := service.NewSubmissionService(
		messageRepo,
		videoRepo,
		minio.NewStore(),
		progress.NewTracker(uploadHeartbeat),
	)
	feedService := service.NewFeedService(messageRepo, videoRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:       handler.NewAuthHandler(authService),
		SubmissionHandler: handler.NewSubmissionHandler(submissionService, gatewayService),
		FeedHandler:       handler.NewFeedHandler(feedService),
	}

	router := api.SetupRouter(handlers)

	statsJob := job.NewFeedStatsJob(messageRepo, videoRepo)
	cronMgr := cron.NewManager(statsJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
