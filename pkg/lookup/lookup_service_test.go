package lookup

import (
	"RecipeSite/entities"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepository struct {
	categoryCalls int
	regionCalls   int
	err           error
}

func (r *countingRepository) GetCategories(context.Context) ([]*entities.Category, error) {
	r.categoryCalls++
	if r.err != nil {
		return nil, r.err
	}
	return []*entities.Category{{ID: 1, Name: "Шөл"}, {ID: 2, Name: "Амттан"}}, nil
}

func (r *countingRepository) GetRegions(context.Context) ([]*entities.Region, error) {
	r.regionCalls++
	if r.err != nil {
		return nil, r.err
	}
	return []*entities.Region{{ID: 1, Name: "Монгол хоол"}}, nil
}

// mapCache stores JSON like the redis cache does.
type mapCache struct {
	items  map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newMapCache() *mapCache {
	return &mapCache{items: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *mapCache) Get(_ context.Context, key string, dst any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *mapCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.items[key] = raw
	c.ttls[key] = ttl
	return nil
}

func TestGetCategoriesIsCached(t *testing.T) {
	repo := &countingRepository{}
	c := newMapCache()
	service := NewLookupService(repo, c, time.Minute)
	ctx := context.Background()

	first, err := service.GetCategories(ctx)
	require.NoError(t, err)
	second, err := service.GetCategories(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Шөл", first[0].Name)
	assert.Equal(t, 1, repo.categoryCalls)
	assert.Equal(t, time.Minute, c.ttls[categoriesKey])
}

func TestGetRegionsIsCached(t *testing.T) {
	repo := &countingRepository{}
	service := NewLookupService(repo, newMapCache(), time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		regions, err := service.GetRegions(ctx)
		require.NoError(t, err)
		require.Len(t, regions, 1)
	}
	assert.Equal(t, 1, repo.regionCalls)
}

func TestCacheErrorFallsThrough(t *testing.T) {
	repo := &countingRepository{}
	c := newMapCache()
	c.getErr = errors.New("connection refused")
	service := NewLookupService(repo, c, time.Minute)

	categories, err := service.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, 1, repo.categoryCalls)
}

func TestNilCacheReadsThrough(t *testing.T) {
	repo := &countingRepository{}
	service := NewLookupService(repo, nil, time.Minute)
	ctx := context.Background()

	_, err := service.GetCategories(ctx)
	require.NoError(t, err)
	_, err = service.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.categoryCalls)
}

func TestRepositoryError(t *testing.T) {
	repo := &countingRepository{err: errors.New("db down")}
	service := NewLookupService(repo, newMapCache(), time.Minute)

	_, err := service.GetRegions(context.Background())
	assert.EqualError(t, err, "db down")
}
