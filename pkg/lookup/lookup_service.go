package lookup

import (
	"RecipeSite/domain"
	"RecipeSite/pkg/cache"
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

const (
	categoriesKey = "lookup:categories"
	regionsKey    = "lookup:regions"
)

type (
	LookupService interface {
		GetCategories(ctx context.Context) ([]domain.Category, error)
		GetRegions(ctx context.Context) ([]domain.Region, error)
	}

	lookupService struct {
		lookupRepository LookupRepository
		cache            cache.Cache
		ttl              time.Duration
	}
)

func NewLookupService(lookupRepository LookupRepository, c cache.Cache, ttl time.Duration) LookupService {
	if c == nil {
		c = cache.NewNoopCache()
	}
	return &lookupService{
		lookupRepository: lookupRepository,
		cache:            c,
		ttl:              ttl,
	}
}

func (s *lookupService) GetCategories(ctx context.Context) ([]domain.Category, error) {
	var result []domain.Category
	if s.fromCache(ctx, categoriesKey, &result) {
		return result, nil
	}

	categories, err := s.lookupRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	result = make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		result = append(result, domain.Category{ID: c.ID, Name: c.Name})
	}
	s.toCache(ctx, categoriesKey, result)
	return result, nil
}

func (s *lookupService) GetRegions(ctx context.Context) ([]domain.Region, error) {
	var result []domain.Region
	if s.fromCache(ctx, regionsKey, &result) {
		return result, nil
	}

	regions, err := s.lookupRepository.GetRegions(ctx)
	if err != nil {
		return nil, err
	}

	result = make([]domain.Region, 0, len(regions))
	for _, r := range regions {
		result = append(result, domain.Region{ID: r.ID, Name: r.Name})
	}
	s.toCache(ctx, regionsKey, result)
	return result, nil
}

// cache errors are logged and treated as a miss
func (s *lookupService) fromCache(ctx context.Context, key string, dst any) bool {
	hit, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		log.Warnf("cache get %s: %v", key, err)
		return false
	}
	return hit
}

func (s *lookupService) toCache(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		log.Warnf("cache set %s: %v", key, err)
	}
}
