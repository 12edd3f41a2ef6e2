package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/moviedb/internal/model"
)

func TestRatingRepository_FindByTitle(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	ratings, err := repos.Rating.FindByTitle(ctx, "TOY STORY")
	require.NoError(t, err)
	assert.Equal(t, []model.Rating{{MovieID: 8, Rating: 8.3, Votes: 1000000}}, ratings)

	// 同名电影各自的评分
	ratings, err = repos.Rating.FindByTitle(ctx, "Total Recall")
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	assert.Equal(t, int64(9), ratings[0].MovieID)
	assert.Equal(t, int64(10), ratings[1].MovieID)

	// 有电影但没有评分
	ratings, err = repos.Rating.FindByTitle(ctx, "Alice in Wonderland")
	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestRatingRoundTrip(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	movies, err := repos.Movie.FindByTitle(ctx, "the matrix")
	require.NoError(t, err)
	require.Len(t, movies, 1)

	ratings, err := repos.Rating.FindByTitle(ctx, "the matrix")
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, movies[0].ID, ratings[0].MovieID)
}

func TestRepositories_Ping(t *testing.T) {
	repos := newRepos(t)
	assert.NoError(t, repos.Ping(context.Background()))
}

func TestRepositories_Close(t *testing.T) {
	repos := newRepos(t)
	require.NoError(t, repos.Close())
	assert.Error(t, repos.Ping(context.Background()))
}
