package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/user/moviedb/internal/handler"
	"github.com/user/moviedb/internal/middleware"
)

// New 创建带中间件的 gin 引擎并注册路由
func New(h *handler.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())

	RegisterRoutes(r, h)
	return r
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", h.Health)
	r.GET("/health/ready", h.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ==================== 电影查询 ====================
	movies := r.Group("/movies")
	{
		movies.GET("/", h.ListMovies)
		movies.GET("/cast", h.Cast)
		movies.GET("/rating", h.Rating)
		movies.GET("/top-rated", h.TopRated)

		search := movies.Group("/search")
		search.GET("/title", h.SearchByTitle)
		search.GET("/year", h.SearchByYear)
		search.GET("/director", h.SearchByDirector)
		search.GET("/actors", h.SearchByActors)
		search.GET("/cast", h.SearchByCast)
	}
}
