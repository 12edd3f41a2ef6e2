package repository

import (
	"context"

	"github.com/user/moviedb/internal/model"
	"gorm.io/gorm"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// FindByTitle 查找标题匹配（忽略大小写）的电影的评分记录
func (r *RatingRepository) FindByTitle(ctx context.Context, title string) ([]model.Rating, error) {
	ratings := []model.Rating{}
	err := withConn(ctx, r.db, "ratings.find_by_title", func(tx *gorm.DB) error {
		return tx.Where("movie_id IN (SELECT id FROM movies WHERE LOWER(title) = LOWER(?))", title).
			Order("movie_id").
			Find(&ratings).Error
	})
	return ratings, err
}
