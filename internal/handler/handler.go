package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/moviedb/internal/logging"
	"github.com/user/moviedb/internal/model"
	"github.com/user/moviedb/internal/service"
	"github.com/user/moviedb/internal/utils"
)

// MovieQuerier 电影查询接口，参数为原始查询字符串
type MovieQuerier interface {
	ListMovies(ctx context.Context) ([]model.Movie, error)
	SearchByTitle(ctx context.Context, title string) ([]model.Movie, error)
	SearchByYear(ctx context.Context, year string) ([]model.Movie, error)
	SearchByDirector(ctx context.Context, director string) ([]model.Movie, error)
	SearchByActors(ctx context.Context, actors string) ([]model.Movie, error)
	SearchByCast(ctx context.Context, cast string) ([]model.Movie, error)
	CastOf(ctx context.Context, title string) ([]model.Person, error)
	RatingsOf(ctx context.Context, title string) ([]model.Rating, error)
	TopRated(ctx context.Context, top string, present bool) ([]model.Movie, error)
}

// Pinger 数据库探活
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler HTTP 处理器
type Handler struct {
	Query MovieQuerier
	DB    Pinger
}

// NewHandler 创建处理器
func NewHandler(query MovieQuerier, db Pinger) *Handler {
	return &Handler{Query: query, DB: db}
}

// respond 成功返回 JSON 数组，失败按错误类型映射状态码
func respond[T any](c *gin.Context, data []T, err error) {
	if err == nil {
		if data == nil {
			data = []T{}
		}
		c.JSON(http.StatusOK, data)
		return
	}

	var (
		inputErr   *service.InputError
		notFound   *service.NotFoundError
		unexpected *service.UnexpectedQueryError
	)
	switch {
	case errors.As(err, &inputErr):
		utils.BadRequest(c, inputErr.Message)
	case errors.As(err, &notFound):
		utils.NotFound(c, notFound.Message)
	case errors.As(err, &unexpected):
		logging.Warn().Str("path", c.Request.URL.Path).Msg(unexpected.Message)
		utils.InternalServerError(c, unexpected.Message)
	default:
		logging.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Msg("查询失败")
		utils.InternalServerError(c, "")
	}
}

// Health 存活检查
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready 就绪检查，数据库不可用时返回 503
func (h *Handler) Ready(c *gin.Context) {
	if err := h.DB.Ping(c.Request.Context()); err != nil {
		logging.Error().Err(err).Msg("数据库不可用")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
