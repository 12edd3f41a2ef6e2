package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonRepository_FindCastByTitle(t *testing.T) {
	repos := newRepos(t)
	ctx := context.Background()

	people, err := repos.Person.FindCastByTitle(ctx, "fight club")
	require.NoError(t, err)
	names := make([]string, len(people))
	for i, p := range people {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Brad Pitt", "Edward Norton", "Helena Bonham Carter"}, names)
	require.NotNil(t, people[0].Birth)
	assert.Equal(t, int64(1963), *people[0].Birth)

	people, err = repos.Person.FindCastByTitle(ctx, "The Departed")
	require.NoError(t, err)
	require.Len(t, people, 2)
	assert.Equal(t, "Leonardo DiCaprio", people[0].Name)
	assert.Nil(t, people[1].Birth)

	people, err = repos.Person.FindCastByTitle(ctx, "Heat")
	require.NoError(t, err)
	assert.Empty(t, people)
}
