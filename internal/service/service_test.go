package service_test

import (
	"context"
	"testing"

	"github.com/Konaisya/construction-company/internal/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.City{},
		&entity.Category{},
		&entity.Unit{},
		&entity.Attribute{},
		&entity.User{},
		&entity.Project{},
		&entity.ProjectAttribute{},
		&entity.ProjectImage{},
		&entity.Order{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role entity.Role) *entity.User {
	user := &entity.User{
		Name:     "Test User",
		OrgName:  "Test Org",
		Role:     role,
		Email:    email,
		Phone:    "+77010000000",
		Password: "irrelevant",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProject(t *testing.T, db *gorm.DB, slug string) *entity.Project {
	city := &entity.City{Name: "Astana"}
	require.NoError(t, db.Create(city).Error)
	category := &entity.Category{Name: "Residential"}
	require.NoError(t, db.Create(category).Error)

	project := &entity.Project{
		Name:        "Project " + slug,
		Slug:        slug,
		Description: "test project",
		IDCategory:  category.ID,
		IDCity:      city.ID,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}

func seedOrder(t *testing.T, db *gorm.DB, idUser, idProject uint) *entity.Order {
	order := &entity.Order{
		IDUser:      idUser,
		IDProject:   idProject,
		Status:      entity.OrderPending,
		CreatedDate: "2024-01-01",
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func ctxBg() context.Context {
	return context.Background()
}
