package repository_test

import (
	"context"
	"testing"

	"github.com/Konaisya/construction-company/internal/entity"
	"github.com/Konaisya/construction-company/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.City{}, &entity.ProjectAttribute{}))
	return db
}

func TestFindAllConjunctiveFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.New[entity.City](db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &entity.City{Name: "Astana", Image: "astana.jpg"}))
	require.NoError(t, repo.Add(ctx, &entity.City{Name: "Almaty", Image: "almaty.jpg"}))
	require.NoError(t, repo.Add(ctx, &entity.City{Name: "Astana", Image: "astana2.jpg"}))

	all, err := repo.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	named, err := repo.FindAll(ctx, repository.Filter{"name": "Astana"})
	require.NoError(t, err)
	assert.Len(t, named, 2)

	both, err := repo.FindAll(ctx, repository.Filter{"name": "Astana", "image": "astana2.jpg"})
	require.NoError(t, err)
	assert.Len(t, both, 1)
}

func TestFindOneNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.New[entity.City](db)

	_, err := repo.FindOne(context.Background(), repository.Filter{"id": 42})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAddPopulatesID(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.New[entity.City](db)

	city := &entity.City{Name: "Karaganda"}
	require.NoError(t, repo.Add(context.Background(), city))
	assert.NotZero(t, city.ID)
}

func TestUpdateSparse(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.New[entity.City](db)
	ctx := context.Background()

	city := &entity.City{Name: "Astana", Image: "old.jpg"}
	require.NoError(t, repo.Add(ctx, city))

	updated, err := repo.Update(ctx, city.ID, map[string]any{"image": "new.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "new.jpg", updated.Image)
	assert.Equal(t, "Astana", updated.Name)

	_, err = repo.Update(ctx, 9999, map[string]any{"image": "x.jpg"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.New[entity.City](db)
	ctx := context.Background()

	city := &entity.City{Name: "Astana"}
	require.NoError(t, repo.Add(ctx, city))
	require.NoError(t, repo.Delete(ctx, city.ID))

	assert.ErrorIs(t, repo.Delete(ctx, city.ID), gorm.ErrRecordNotFound)
}

func TestFilterOperationsOnCompositeKey(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.New[entity.ProjectAttribute](db)
	ctx := context.Background()

	unit := uint(1)
	require.NoError(t, repo.Add(ctx, &entity.ProjectAttribute{IDProject: 1, IDAttribute: 1, Value: "120", IDUnit: &unit}))
	require.NoError(t, repo.Add(ctx, &entity.ProjectAttribute{IDProject: 1, IDAttribute: 2, Value: "3"}))
	require.NoError(t, repo.Add(ctx, &entity.ProjectAttribute{IDProject: 2, IDAttribute: 1, Value: "90"}))

	err := repo.UpdateByFilter(ctx,
		repository.Filter{"id_project": 1, "id_attribute": 1},
		map[string]any{"value": "150"})
	require.NoError(t, err)

	row, err := repo.FindOne(ctx, repository.Filter{"id_project": 1, "id_attribute": 1})
	require.NoError(t, err)
	assert.Equal(t, "150", row.Value)

	require.NoError(t, repo.DeleteByFilter(ctx, repository.Filter{"id_project": 1}))
	rest, err := repo.FindAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, uint(2), rest[0].IDProject)
}
