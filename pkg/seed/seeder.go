package seed

import (
	"RecipeSite/domain"
	"RecipeSite/entities"
	"RecipeSite/pkg/user"
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	// Owner is the account seeded recipes are attributed to.
	Owner struct {
		Email    string
		Username string
		Password string
	}

	Result struct {
		Inserted int
		Skipped  int
		Failed   int
	}
)

// Run inserts the fixture into the database. Lookup rows are created when
// missing, the owner is created or gets its password reset, and recipes whose
// title already exists are skipped. A failing recipe does not stop the run.
func Run(ctx context.Context, db *gorm.DB, fx Fixture, owner Owner) (Result, error) {
	var result Result
	db = db.WithContext(ctx)

	ownerID, err := ensureOwner(db, owner)
	if err != nil {
		return result, err
	}

	categoryIDs := map[string]uint{}
	for _, name := range fx.Categories {
		c := entities.Category{Name: name}
		if err := db.Where(entities.Category{Name: name}).FirstOrCreate(&c).Error; err != nil {
			return result, err
		}
		categoryIDs[name] = c.ID
	}

	regionIDs := map[string]uint{}
	for _, name := range fx.Regions {
		r := entities.Region{Name: name}
		if err := db.Where(entities.Region{Name: name}).FirstOrCreate(&r).Error; err != nil {
			return result, err
		}
		regionIDs[name] = r.ID
	}

	for _, fr := range fx.Recipes {
		taken, err := titleTaken(db, fr.Title)
		if err != nil {
			log.Errorf("seed: checking %q: %v", fr.Title, err)
			result.Failed++
			continue
		}
		if taken {
			result.Skipped++
			continue
		}

		recipe := fr.Entity(ownerID, idOf(categoryIDs, fr.Category), idOf(regionIDs, fr.Region))
		if err := db.Create(&recipe).Error; err != nil {
			log.Errorf("seed: inserting %q: %v", fr.Title, err)
			result.Failed++
			continue
		}
		result.Inserted++
	}

	return result, nil
}

func titleTaken(db *gorm.DB, title string) (bool, error) {
	var count int64
	if err := db.Model(&entities.Recipe{}).Where("title = ?", title).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func ensureOwner(db *gorm.DB, owner Owner) (uint, error) {
	email := strings.ToLower(strings.TrimSpace(owner.Email))
	if email == "" || owner.Password == "" {
		return 0, errors.New("seed owner email and password are required")
	}

	hash, err := user.HashPassword(owner.Password)
	if err != nil {
		return 0, err
	}

	var existing entities.User
	err = db.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		if err := db.Model(&existing).Update("password_hash", hash).Error; err != nil {
			return 0, err
		}
		return existing.ID, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		u := entities.User{
			Username:     owner.Username,
			Email:        email,
			PasswordHash: hash,
			Role:         domain.RoleUser,
		}
		if u.Username == "" {
			u.Username = strings.SplitN(email, "@", 2)[0]
		}
		if err := db.Create(&u).Error; err != nil {
			return 0, err
		}
		return u.ID, nil
	default:
		return 0, err
	}
}

func idOf(ids map[string]uint, name string) *uint {
	id, ok := ids[name]
	if !ok || name == "" {
		return nil
	}
	return &id
}
