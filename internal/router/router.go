package router

import (
	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/handler"
	"github.com/devfolio/internal/service"
	"github.com/devfolio/internal/storage"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup 配置 Gin 引擎和路由
func Setup(gdb *gorm.DB, disk *storage.Disk, notifier service.Notifier, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("devfolio_session", store))

	// 公共磁盘静态文件服务
	r.Static(cfg.StorageURLPath, disk.Root())

	api := handler.NewAPI(gdb, disk, notifier, cfg.Debug)

	group := r.Group("/api")
	{
		// 公开读取接口
		group.GET("/profile", api.GetProfile)
		group.GET("/projects", api.ListProjects)
		group.GET("/skills", api.ListSkills)
		group.GET("/experiences", api.ListExperiences)

		// 留言提交按 IP 限流
		group.POST("/contact", handler.RateLimit(cfg.ContactRatePerMin, cfg.ContactBurst), api.SubmitContact)

		group.POST("/login", api.Login)
		group.POST("/logout", api.Logout)

		// 需要认证的管理接口
		auth := group.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.POST("/profile", api.UpdateProfile)

			auth.POST("/projects", api.CreateProject)
			auth.PUT("/projects/:id", api.UpdateProject)
			auth.POST("/projects/:id", api.UpdateProject)
			auth.DELETE("/projects/:id", api.DeleteProject)

			auth.POST("/skills", api.CreateSkill)
			auth.PUT("/skills/:id", api.UpdateSkill)
			auth.DELETE("/skills/:id", api.DeleteSkill)

			auth.POST("/experiences", api.CreateExperience)
			auth.PUT("/experiences/:id", api.UpdateExperience)
			auth.DELETE("/experiences/:id", api.DeleteExperience)

			auth.GET("/messages", api.ListMessages)
			auth.DELETE("/messages/:id", api.DeleteMessage)
		}
	}

	return r
}
