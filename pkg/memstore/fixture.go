package memstore

import (
	"RecipeSite/domain"
	"RecipeSite/entities"
	"RecipeSite/pkg/seed"
	"RecipeSite/pkg/user"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// LoadFixture fills the store the same way seed.Run fills the database.
func (s *Store) LoadFixture(ctx context.Context, fx seed.Fixture, owner seed.Owner) (seed.Result, error) {
	var result seed.Result

	email := strings.ToLower(strings.TrimSpace(owner.Email))
	if email == "" || owner.Password == "" {
		return result, errors.New("fixture owner email and password are required")
	}

	ownerUser, err := s.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := user.HashPassword(owner.Password)
		if err != nil {
			return result, err
		}
		ownerUser = &entities.User{
			Username:     owner.Username,
			Email:        email,
			PasswordHash: hash,
			Role:         domain.RoleUser,
		}
		if ownerUser.Username == "" {
			ownerUser.Username = strings.SplitN(email, "@", 2)[0]
		}
		if err := s.CreateUser(ctx, ownerUser); err != nil {
			return result, err
		}
	} else if err != nil {
		return result, err
	}

	categoryIDs := map[string]uint{}
	for _, name := range fx.Categories {
		categoryIDs[name] = s.AddCategory(name).ID
	}
	regionIDs := map[string]uint{}
	for _, name := range fx.Regions {
		regionIDs[name] = s.AddRegion(name).ID
	}

	titles := map[string]bool{}
	s.mu.RLock()
	for _, r := range s.recipes {
		titles[r.Title] = true
	}
	s.mu.RUnlock()

	for _, fr := range fx.Recipes {
		if titles[fr.Title] {
			result.Skipped++
			continue
		}
		r := fr.Entity(ownerUser.ID, lookupID(categoryIDs, fr.Category), lookupID(regionIDs, fr.Region))
		if err := s.CreateRecipe(ctx, &r); err != nil {
			result.Failed++
			continue
		}
		titles[fr.Title] = true
		result.Inserted++
	}
	return result, nil
}

func lookupID(ids map[string]uint, name string) *uint {
	id, ok := ids[name]
	if !ok || name == "" {
		return nil
	}
	return &id
}
