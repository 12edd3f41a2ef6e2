package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/user/moviedb/internal/metrics"
	"github.com/user/moviedb/internal/model"
	"github.com/user/moviedb/internal/utils"
	"golang.org/x/sync/singleflight"
)

// MovieStore 电影查询
type MovieStore interface {
	FindAll(ctx context.Context) ([]model.Movie, error)
	FindByTitle(ctx context.Context, title string) ([]model.Movie, error)
	FindByYear(ctx context.Context, year int64) ([]model.Movie, error)
	FindByDirector(ctx context.Context, director string) ([]model.Movie, error)
	FindByAnyActor(ctx context.Context, actors []string) ([]model.Movie, error)
	FindByCast(ctx context.Context, cast []string) ([]model.Movie, error)
	FindTopRated(ctx context.Context, limit int) ([]model.Movie, error)
}

// PersonStore 演员查询
type PersonStore interface {
	FindCastByTitle(ctx context.Context, title string) ([]model.Person, error)
}

// RatingStore 评分查询
type RatingStore interface {
	FindByTitle(ctx context.Context, title string) ([]model.Rating, error)
}

// loadTimeout 合并后的共享查询的最长执行时间
const loadTimeout = 30 * time.Second

// Options 缓存配置，CacheSize 为 0 时关闭缓存
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

// QueryService 电影查询服务
// 数据集只读，查询结果可以安全缓存：
// 带参数的搜索键空间无上限，用 LRU；全量列表和高分榜用定时过期缓存
type QueryService struct {
	movies  MovieStore
	people  PersonStore
	ratings RatingStore

	movieCache  *utils.SearchCache[[]model.Movie]
	castCache   *utils.SearchCache[[]model.Person]
	ratingCache *utils.SearchCache[[]model.Rating]
	listCache   *cache.Cache

	sf singleflight.Group
}

// NewQueryService 创建查询服务
func NewQueryService(movies MovieStore, people PersonStore, ratings RatingStore, opts Options) *QueryService {
	s := &QueryService{
		movies:      movies,
		people:      people,
		ratings:     ratings,
		movieCache:  utils.NewSearchCache[[]model.Movie](opts.CacheSize, opts.CacheTTL),
		castCache:   utils.NewSearchCache[[]model.Person](opts.CacheSize, opts.CacheTTL),
		ratingCache: utils.NewSearchCache[[]model.Rating](opts.CacheSize, opts.CacheTTL),
	}
	if opts.CacheSize > 0 {
		s.listCache = utils.NewTTLCache(opts.CacheTTL)
	}
	return s
}

// ListMovies 全部电影；没有任何数据视为异常
func (s *QueryService) ListMovies(ctx context.Context) ([]model.Movie, error) {
	movies, err := s.listed(ctx, "movies:all", func(ctx context.Context) ([]model.Movie, error) {
		return s.movies.FindAll(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	if len(movies) == 0 {
		return nil, &UnexpectedQueryError{Message: msgListFailed}
	}
	return movies, nil
}

// SearchByTitle 按标题精确匹配（忽略大小写）
func (s *QueryService) SearchByTitle(ctx context.Context, rawTitle string) ([]model.Movie, error) {
	title, err := requireParam(rawTitle, msgTitleRequired)
	if err != nil {
		return nil, err
	}
	movies, err := cached(ctx, &s.sf, s.movieCache, "movies", "title:"+title, func(ctx context.Context) ([]model.Movie, error) {
		return s.movies.FindByTitle(ctx, title)
	})
	return foundMovies(movies, err, "search movies by title")
}

// SearchByYear 按年份匹配；不是整数值的年份不可能匹配任何电影
func (s *QueryService) SearchByYear(ctx context.Context, rawYear string) ([]model.Movie, error) {
	value, err := requireParam(rawYear, msgYearRequired)
	if err != nil {
		return nil, err
	}
	year, ok := parseYear(value)
	if !ok {
		return nil, &NotFoundError{Message: msgMoviesNotFound}
	}
	movies, err := cached(ctx, &s.sf, s.movieCache, "movies", "year:"+strconv.FormatInt(year, 10), func(ctx context.Context) ([]model.Movie, error) {
		return s.movies.FindByYear(ctx, year)
	})
	return foundMovies(movies, err, "search movies by year")
}

// SearchByDirector 按导演名查找
func (s *QueryService) SearchByDirector(ctx context.Context, rawDirector string) ([]model.Movie, error) {
	director, err := requireParam(rawDirector, msgDirectorRequired)
	if err != nil {
		return nil, err
	}
	movies, err := cached(ctx, &s.sf, s.movieCache, "movies", "director:"+director, func(ctx context.Context) ([]model.Movie, error) {
		return s.movies.FindByDirector(ctx, director)
	})
	return foundMovies(movies, err, "search movies by director")
}

// SearchByActors 名单中任意演员参演的电影（并集）
func (s *QueryService) SearchByActors(ctx context.Context, rawActors string) ([]model.Movie, error) {
	list, err := requireParam(rawActors, msgActorsRequired)
	if err != nil {
		return nil, err
	}
	actors := SplitNames(list)
	movies, err := cached(ctx, &s.sf, s.movieCache, "movies", listKey("actors", actors), func(ctx context.Context) ([]model.Movie, error) {
		return s.movies.FindByAnyActor(ctx, actors)
	})
	return foundMovies(movies, err, "search movies by actors")
}

// SearchByCast 名单中所有演员共同参演的电影（交集）
func (s *QueryService) SearchByCast(ctx context.Context, rawCast string) ([]model.Movie, error) {
	list, err := requireParam(rawCast, msgCastRequired)
	if err != nil {
		return nil, err
	}
	cast := SplitNames(list)
	movies, err := cached(ctx, &s.sf, s.movieCache, "movies", listKey("cast", cast), func(ctx context.Context) ([]model.Movie, error) {
		return s.movies.FindByCast(ctx, cast)
	})
	return foundMovies(movies, err, "search movies by cast")
}

// CastOf 电影的全部演员
func (s *QueryService) CastOf(ctx context.Context, rawTitle string) ([]model.Person, error) {
	title, err := requireParam(rawTitle, msgTitleRequired)
	if err != nil {
		return nil, err
	}
	people, err := cached(ctx, &s.sf, s.castCache, "cast", "cast-of:"+title, func(ctx context.Context) ([]model.Person, error) {
		return s.people.FindCastByTitle(ctx, title)
	})
	if err != nil {
		return nil, fmt.Errorf("get cast: %w", err)
	}
	if len(people) == 0 {
		return nil, &NotFoundError{Message: msgMoviesNotFound}
	}
	return people, nil
}

// RatingsOf 电影的评分记录
func (s *QueryService) RatingsOf(ctx context.Context, rawTitle string) ([]model.Rating, error) {
	title, err := requireParam(rawTitle, msgTitleRequired)
	if err != nil {
		return nil, err
	}
	ratings, err := cached(ctx, &s.sf, s.ratingCache, "ratings", "rating-of:"+title, func(ctx context.Context) ([]model.Rating, error) {
		return s.ratings.FindByTitle(ctx, title)
	})
	if err != nil {
		return nil, fmt.Errorf("get ratings: %w", err)
	}
	if len(ratings) == 0 {
		return nil, &NotFoundError{Message: msgMoviesNotFound}
	}
	return ratings, nil
}

// TopRated 高分榜，结果可以为空
func (s *QueryService) TopRated(ctx context.Context, rawTop string, present bool) ([]model.Movie, error) {
	top, err := parseTop(rawTop, present)
	if err != nil {
		return nil, err
	}
	movies, err := s.listed(ctx, "top:"+strconv.Itoa(top), func(ctx context.Context) ([]model.Movie, error) {
		return s.movies.FindTopRated(ctx, top)
	})
	if err != nil {
		return nil, fmt.Errorf("top rated: %w", err)
	}
	return movies, nil
}

// listed 定时过期缓存 + singleflight
func (s *QueryService) listed(ctx context.Context, key string, load func(context.Context) ([]model.Movie, error)) ([]model.Movie, error) {
	if s.listCache != nil {
		if v, ok := s.listCache.Get(key); ok {
			metrics.ObserveCache("list", true)
			return v.([]model.Movie), nil
		}
		metrics.ObserveCache("list", false)
	}

	movies, err := collapse(ctx, &s.sf, key, load)
	if err != nil {
		return nil, err
	}
	if s.listCache != nil {
		s.listCache.SetDefault(key, movies)
		metrics.SetCacheEntries("list", s.listCache.ItemCount())
	}
	return movies, nil
}

// cached LRU 缓存 + singleflight，相同参数的并发请求只查询一次
func cached[T any](ctx context.Context, sf *singleflight.Group, c *utils.SearchCache[T], name, key string, load func(context.Context) (T, error)) (T, error) {
	if c != nil {
		if v, ok := c.Get(key); ok {
			metrics.ObserveCache(name, true)
			return v, nil
		}
		metrics.ObserveCache(name, false)
	}

	res, err := collapse(ctx, sf, key, load)
	if err != nil {
		var zero T
		return zero, err
	}
	if c != nil {
		c.Set(key, res)
		metrics.SetCacheEntries(name, c.Len())
	}
	return res, nil
}

// collapse 合并相同 key 的并发查询。
// 共享的查询不继承任何一个调用方的取消，只受 loadTimeout 限制；
// 每个调用方只等待到自己的 ctx 结束为止。
func collapse[T any](ctx context.Context, sf *singleflight.Group, key string, load func(context.Context) (T, error)) (T, error) {
	ch := sf.DoChan(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		return load(loadCtx)
	})

	var zero T
	select {
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

func foundMovies(movies []model.Movie, err error, op string) ([]model.Movie, error) {
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(movies) == 0 {
		return nil, &NotFoundError{Message: msgMoviesNotFound}
	}
	return movies, nil
}

// listKey 名单缓存键，保留每一项的原始内容
func listKey(prefix string, names []string) string {
	return prefix + ":" + strings.Join(names, "\x00")
}
