package repository

import (
	"context"

	"github.com/user/moviedb/internal/model"
	"gorm.io/gorm"
)

const castOfTitleSQL = `id IN (SELECT person_id FROM stars WHERE movie_id IN (
	SELECT id FROM movies WHERE LOWER(title) = LOWER(?)))`

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// FindCastByTitle 查找某部电影（按标题，忽略大小写）的全部演员，按姓名排序
func (r *PersonRepository) FindCastByTitle(ctx context.Context, title string) ([]model.Person, error) {
	people := []model.Person{}
	err := withConn(ctx, r.db, "people.find_cast_by_title", func(tx *gorm.DB) error {
		return tx.Where(castOfTitleSQL, title).
			Order("name").Order("id").
			Find(&people).Error
	})
	return people, err
}
