package config

import (
	migration "RecipeSite/cmd/database/migrate"
	"RecipeSite/internal/utils"
	"RecipeSite/pkg/lookup"
	"RecipeSite/pkg/memstore"
	"RecipeSite/pkg/recipe"
	"RecipeSite/pkg/seed"
	"RecipeSite/pkg/user"
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

const (
	DataSourceDatabase = "database"
	DataSourceFixture  = "fixture"
)

// Repositories is the storage the services run on, chosen once at startup.
type Repositories struct {
	Source string
	User   user.UserRepository
	Recipe recipe.RecipeRepository
	Lookup lookup.LookupRepository
	Close  func()
}

func NewRepositories(ctx context.Context) (Repositories, error) {
	switch source := utils.GetConfig("DATA_SOURCE"); source {
	case DataSourceDatabase, "":
		return databaseRepositories()
	case DataSourceFixture:
		return fixtureRepositories(ctx)
	default:
		return Repositories{}, fmt.Errorf("unknown DATA_SOURCE %q, want %q or %q", source, DataSourceDatabase, DataSourceFixture)
	}
}

func databaseRepositories() (Repositories, error) {
	db, err := ConnectDB()
	if err != nil {
		return Repositories{}, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return Repositories{}, err
	}
	if err := migration.Migrate(db); err != nil {
		sqlDB.Close()
		return Repositories{}, err
	}

	return Repositories{
		Source: DataSourceDatabase,
		User:   user.NewUserRepository(db),
		Recipe: recipe.NewRecipeRepository(db),
		Lookup: lookup.NewLookupRepository(db),
		Close: func() {
			if err := sqlDB.Close(); err != nil {
				log.Errorf("error closing database: %v", err)
			}
		},
	}, nil
}

func fixtureRepositories(ctx context.Context) (Repositories, error) {
	fx, err := seed.LoadFixture(utils.GetConfig("FIXTURE_INFO_PATH"), utils.GetConfig("FIXTURE_DETAILS_PATH"))
	if err != nil {
		return Repositories{}, fmt.Errorf("load fixture: %w", err)
	}

	store := memstore.New()
	for _, name := range seed.DefaultRegions {
		store.AddRegion(name)
	}

	owner := SeedOwner()
	if owner.Password == "" {
		// nobody logs in as the fixture owner unless a password is configured
		owner.Password = uuid.NewString()
	}

	result, err := store.LoadFixture(ctx, fx, owner)
	if err != nil {
		return Repositories{}, err
	}
	log.Infof("fixture loaded: %d recipes, %d skipped, %d failed", result.Inserted, result.Skipped, result.Failed)

	return Repositories{
		Source: DataSourceFixture,
		User:   store,
		Recipe: store,
		Lookup: store,
		Close:  func() {},
	}, nil
}

// SeedOwner is the account fixture recipes belong to.
func SeedOwner() seed.Owner {
	return seed.Owner{
		Email:    utils.GetConfig("SEED_USER_EMAIL"),
		Username: utils.GetConfig("SEED_USER_USERNAME"),
		Password: utils.GetConfig("SEED_USER_PASSWORD"),
	}
}
