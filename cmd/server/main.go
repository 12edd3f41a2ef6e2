package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/moviedb/internal/config"
	"github.com/user/moviedb/internal/handler"
	"github.com/user/moviedb/internal/logging"
	"github.com/user/moviedb/internal/repository"
	"github.com/user/moviedb/internal/router"
	"github.com/user/moviedb/internal/service"
)

func main() {
	// 加载环境变量
	envErr := godotenv.Load()

	// 加载配置
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if envErr != nil {
		logging.Info().Msg("未找到 .env 文件，使用系统环境变量")
	}
	if err := cfg.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("配置错误")
	}

	// 初始化数据库
	db, err := repository.InitDB(cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("数据库连接失败")
	}

	// 初始化仓库与服务
	repos := repository.NewRepositories(db)
	defer func() {
		if err := repos.Close(); err != nil {
			logging.Error().Err(err).Msg("关闭数据库失败")
		}
	}()
	querySvc := service.NewQueryService(repos.Movie, repos.Person, repos.Rating, service.Options{
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
	})

	// 初始化 Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := router.New(handler.NewHandler(querySvc, repos))

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// 在 goroutine 中启动服务器，这样我们就可以监听信号
	go func() {
		logging.Info().Str("addr", srv.Addr).Str("driver", cfg.DBDriver).Msg("服务器启动")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("服务器启动失败")
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Info().Msg("正在关闭服务器...")

	// 5 秒超时上下文用于关闭过程
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("服务器强制关闭")
	}

	logging.Info().Msg("服务器已退出")
}
