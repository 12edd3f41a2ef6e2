// Package repotest 提供测试用的内存 sqlite 电影库
package repotest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/user/moviedb/internal/config"
	"github.com/user/moviedb/internal/model"
	"github.com/user/moviedb/internal/repository"
	"gorm.io/gorm"
)

const schema = `
CREATE TABLE movies (id INTEGER PRIMARY KEY, title TEXT NOT NULL, year NUMERIC);
CREATE TABLE people (id INTEGER PRIMARY KEY, name TEXT NOT NULL, birth NUMERIC);
CREATE TABLE directors (
	movie_id INTEGER NOT NULL REFERENCES movies(id),
	person_id INTEGER NOT NULL REFERENCES people(id));
CREATE TABLE stars (
	movie_id INTEGER NOT NULL REFERENCES movies(id),
	person_id INTEGER NOT NULL REFERENCES people(id));
CREATE TABLE ratings (
	movie_id INTEGER NOT NULL REFERENCES movies(id),
	rating REAL NOT NULL,
	votes INTEGER NOT NULL);
`

var seq int64

// Movies 夹具中的电影，id 即下标 + 1
var Movies = []model.Movie{
	{ID: 1, Title: "The Matrix", Year: 1999},
	{ID: 2, Title: "The Matrix Reloaded", Year: 2003},
	{ID: 3, Title: "Fight Club", Year: 1999},
	{ID: 4, Title: "Inception", Year: 2010},
	{ID: 5, Title: "The Departed", Year: 2006},
	{ID: 6, Title: "Sweeney Todd: The Demon Barber of Fleet Street", Year: 2007},
	{ID: 7, Title: "Alice in Wonderland", Year: 2010},
	{ID: 8, Title: "Toy Story", Year: 1995},
	{ID: 9, Title: "Total Recall", Year: 2012},
	{ID: 10, Title: "Total Recall", Year: 1990},
	{ID: 11, Title: "Titanic", Year: 1997},
	{ID: 12, Title: "Once Upon a Time in Hollywood", Year: 2019},
}

var people = []model.Person{
	{ID: 1, Name: "Keanu Reeves", Birth: year(1964)},
	{ID: 2, Name: "Lana Wachowski", Birth: year(1965)},
	{ID: 3, Name: "Brad Pitt", Birth: year(1963)},
	{ID: 4, Name: "Edward Norton", Birth: year(1969)},
	{ID: 5, Name: "David Fincher", Birth: year(1962)},
	{ID: 6, Name: "Leonardo DiCaprio", Birth: year(1974)},
	{ID: 7, Name: "Christopher Nolan", Birth: year(1970)},
	{ID: 8, Name: "Martin Scorsese", Birth: year(1942)},
	{ID: 9, Name: "Johnny Depp", Birth: year(1963)},
	{ID: 10, Name: "Helena Bonham Carter", Birth: year(1966)},
	{ID: 11, Name: "Tim Burton", Birth: year(1958)},
	{ID: 12, Name: "Tom Hanks", Birth: year(1956)},
	{ID: 13, Name: "Arnold Schwarzenegger", Birth: year(1947)},
	{ID: 14, Name: "Colin Farrell", Birth: year(1976)},
	{ID: 15, Name: "James Cameron", Birth: year(1954)},
	{ID: 16, Name: "Quentin Tarantino", Birth: year(1963)},
	{ID: 17, Name: "Matt Damon"},
}

var directors = []model.Director{
	{MovieID: 1, PersonID: 2}, {MovieID: 2, PersonID: 2}, {MovieID: 3, PersonID: 5},
	{MovieID: 4, PersonID: 7}, {MovieID: 5, PersonID: 8}, {MovieID: 6, PersonID: 11},
	{MovieID: 7, PersonID: 11}, {MovieID: 11, PersonID: 15}, {MovieID: 12, PersonID: 16},
}

var stars = []model.Star{
	{MovieID: 1, PersonID: 1}, {MovieID: 2, PersonID: 1},
	{MovieID: 3, PersonID: 3}, {MovieID: 3, PersonID: 4}, {MovieID: 3, PersonID: 10},
	{MovieID: 4, PersonID: 6},
	{MovieID: 5, PersonID: 6}, {MovieID: 5, PersonID: 17},
	{MovieID: 6, PersonID: 9}, {MovieID: 6, PersonID: 10},
	{MovieID: 7, PersonID: 9}, {MovieID: 7, PersonID: 10},
	{MovieID: 8, PersonID: 12},
	{MovieID: 9, PersonID: 14}, {MovieID: 10, PersonID: 13},
	{MovieID: 11, PersonID: 6},
	{MovieID: 12, PersonID: 6}, {MovieID: 12, PersonID: 3},
}

// Alice in Wonderland（id 7）没有评分
var ratings = []model.Rating{
	{MovieID: 1, Rating: 8.7, Votes: 2000000},
	{MovieID: 2, Rating: 7.2, Votes: 600000},
	{MovieID: 3, Rating: 8.8, Votes: 2300000},
	{MovieID: 4, Rating: 8.8, Votes: 2400000},
	{MovieID: 5, Rating: 8.5, Votes: 1400000},
	{MovieID: 6, Rating: 7.3, Votes: 380000},
	{MovieID: 8, Rating: 8.3, Votes: 1000000},
	{MovieID: 9, Rating: 6.2, Votes: 260000},
	{MovieID: 10, Rating: 7.5, Votes: 350000},
	{MovieID: 11, Rating: 7.9, Votes: 1250000},
	{MovieID: 12, Rating: 7.6, Votes: 800000},
}

func year(y int64) *int64 { return &y }

// OpenEmpty 打开一个只有表结构的内存库
func OpenEmpty(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		DBDriver:    config.DriverSQLite,
		DatabaseURL: fmt.Sprintf("file:moviedb_test_%d?mode=memory&cache=shared", atomic.AddInt64(&seq, 1)),
	}
	db, err := repository.InitDB(cfg)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	if err := db.Exec(schema).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

// Open 打开一个已写入夹具数据的内存库
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db := OpenEmpty(t)
	for _, rows := range []interface{}{&Movies, &people, &directors, &stars, &ratings} {
		if err := db.Create(rows).Error; err != nil {
			t.Fatalf("seed fixture: %v", err)
		}
	}
	return db
}
