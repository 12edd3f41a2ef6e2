package repository

import (
	"context"
	"fmt"

	"github.com/user/moviedb/internal/model"
	"gorm.io/gorm"
)

// MinTopRatedVotes 进入高分榜的最低投票数
const MinTopRatedVotes = 1000000

const (
	directedBySQL = `id IN (SELECT movie_id FROM directors WHERE person_id IN (
		SELECT id FROM people WHERE LOWER(name) = LOWER(?)))`
	starringAnySQL = `id IN (SELECT movie_id FROM stars WHERE person_id IN (
		SELECT id FROM people WHERE %s))`
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// FindAll 返回全部电影
func (r *MovieRepository) FindAll(ctx context.Context) ([]model.Movie, error) {
	movies := []model.Movie{}
	err := withConn(ctx, r.db, "movies.find_all", func(tx *gorm.DB) error {
		return tx.Order("id").Find(&movies).Error
	})
	return movies, err
}

// FindByTitle 根据标题查找电影（忽略大小写），按年份升序
func (r *MovieRepository) FindByTitle(ctx context.Context, title string) ([]model.Movie, error) {
	movies := []model.Movie{}
	err := withConn(ctx, r.db, "movies.find_by_title", func(tx *gorm.DB) error {
		return tx.Where("LOWER(title) = LOWER(?)", title).
			Order("year").Order("id").
			Find(&movies).Error
	})
	return movies, err
}

// FindByYear 根据年份查找电影
func (r *MovieRepository) FindByYear(ctx context.Context, year int64) ([]model.Movie, error) {
	movies := []model.Movie{}
	err := withConn(ctx, r.db, "movies.find_by_year", func(tx *gorm.DB) error {
		return tx.Where("year = ?", year).Order("id").Find(&movies).Error
	})
	return movies, err
}

// FindByDirector 根据导演名查找电影，按年份升序
func (r *MovieRepository) FindByDirector(ctx context.Context, director string) ([]model.Movie, error) {
	movies := []model.Movie{}
	err := withConn(ctx, r.db, "movies.find_by_director", func(tx *gorm.DB) error {
		return tx.Where(directedBySQL, director).
			Order("year").Order("id").
			Find(&movies).Error
	})
	return movies, err
}

// FindByAnyActor 查找名单中任意一位演员参演的电影（并集），按年份升序
func (r *MovieRepository) FindByAnyActor(ctx context.Context, actors []string) ([]model.Movie, error) {
	in, err := lowerInClause("name", len(actors))
	if err != nil {
		return nil, err
	}

	movies := []model.Movie{}
	err = withConn(ctx, r.db, "movies.find_by_any_actor", func(tx *gorm.DB) error {
		return tx.Where(fmt.Sprintf(starringAnySQL, in), toArgs(actors)...).
			Order("year").Order("id").
			Find(&movies).Error
	})
	return movies, err
}

// FindByCast 查找名单中所有演员共同参演的电影（交集），按年份升序
func (r *MovieRepository) FindByCast(ctx context.Context, cast []string) ([]model.Movie, error) {
	intersect, err := intersectStarredBy(len(cast))
	if err != nil {
		return nil, err
	}

	movies := []model.Movie{}
	err = withConn(ctx, r.db, "movies.find_by_cast", func(tx *gorm.DB) error {
		return tx.Where("id IN ("+intersect+")", toArgs(cast)...).
			Order("year").Order("id").
			Find(&movies).Error
	})
	return movies, err
}

// FindTopRated 投票数不低于 MinTopRatedVotes 的电影，按评分降序，最多 limit 条
func (r *MovieRepository) FindTopRated(ctx context.Context, limit int) ([]model.Movie, error) {
	movies := []model.Movie{}
	err := withConn(ctx, r.db, "movies.find_top_rated", func(tx *gorm.DB) error {
		return tx.Table("movies AS m").
			Select("m.*").
			Joins("JOIN ratings r ON m.id = r.movie_id").
			Where("r.votes >= ?", MinTopRatedVotes).
			Order("r.rating DESC").Order("r.votes DESC").Order("m.id").
			Limit(limit).
			Find(&movies).Error
	})
	return movies, err
}
