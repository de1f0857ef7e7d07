package api

import (
	"FarewellVault/internal/api/middleware"
	"FarewellVault/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.AuthHandler.Register)
			authGroup.POST("/login", group.AuthHandler.Login)

			protected := authGroup.Group("")
			protected.Use(middleware.AuthMiddleware())
			{
				protected.POST("/logout", group.AuthHandler.Logout)
			}
		}

		gatewayGroup := apiGroup.Group("/gateway")
		{
			gatewayGroup.GET("/status", group.SubmissionHandler.GatewayStatus)
		}

		submissionGroup := apiGroup.Group("/submissions")
		{
			// 投稿入口对访客开放
			submissionGroup.POST("/text", group.SubmissionHandler.SubmitText)
			submissionGroup.POST("/video", group.SubmissionHandler.SubmitVideo)
			submissionGroup.GET("/video/progress/:upload_id", group.SubmissionHandler.UploadProgress)

			// 审核侧读取与收藏需要登录
			protected := submissionGroup.Group("")
			protected.Use(middleware.AuthMiddleware())
			{
				protected.GET("/text", group.FeedHandler.ListMessages)
				protected.GET("/video", group.FeedHandler.ListVideos)
				protected.PATCH("/text/:id", group.FeedHandler.FavoriteMessage)
				protected.PATCH("/video/:id", group.FeedHandler.FavoriteVideo)
			}
		}

		feedGroup := apiGroup.Group("/feed")
		feedGroup.Use(middleware.AuthMiddleware())
		{
			feedGroup.GET("", group.FeedHandler.GetFeed)
			feedGroup.GET("/reveal/:id", group.FeedHandler.Reveal)
		}
	}

	return r
}
