package lookup

import (
	"RecipeSite/internal/utils/dryrun"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupQueriesOrderByID(t *testing.T) {
	db, rec := dryrun.Open(t)
	repo := NewLookupRepository(db)
	ctx := context.Background()

	categories, err := repo.GetCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
	assert.Contains(t, rec.Find("SELECT"), `FROM "categories" ORDER BY id ASC`)

	rec.Reset()
	_, err = repo.GetRegions(ctx)
	require.NoError(t, err)
	assert.Contains(t, rec.Find("SELECT"), `FROM "regions" ORDER BY id ASC`)
}
