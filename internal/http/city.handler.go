package http

import (
	"net/http"

	"github.com/Konaisya/construction-company/internal/appcontext"
	"github.com/Konaisya/construction-company/internal/entity"
	"github.com/Konaisya/construction-company/internal/repository"
	"github.com/Konaisya/construction-company/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func GetAllCities(ctx *appcontext.Context) gin.HandlerFunc {
	cities := service.NewCatalog[entity.City](ctx.DB)
	return func(c *gin.Context) {
		filter := repository.Filter{}
		if name := c.Query("name"); name != "" {
			filter["name"] = name
		}

		all, err := cities.GetAll(c.Request.Context(), filter)
		if err != nil {
			ctx.Logger.Error("Failed to list cities", zap.Error(err))
			fail(c, err)
			return
		}
		if len(all) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"status": statusNotFound})
			return
		}

		c.JSON(http.StatusOK, all)
	}
}

func GetCity(ctx *appcontext.Context) gin.HandlerFunc {
	cities := service.NewCatalog[entity.City](ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		city, err := cities.GetOne(c.Request.Context(), repository.Filter{"id": id})
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, city)
	}
}

func CreateCity(ctx *appcontext.Context) gin.HandlerFunc {
	cities := service.NewCatalog[entity.City](ctx.DB)
	return func(c *gin.Context) {
		var request struct {
			Name  string `json:"name" binding:"required"`
			Image string `json:"image"`
		}
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		city := entity.City{Name: request.Name, Image: request.Image}
		if err := cities.Create(c.Request.Context(), &city); err != nil {
			ctx.Logger.Error("Failed to create city", zap.Error(err))
			fail(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": statusSuccess, "id": city.ID})
	}
}

func UpdateCity(ctx *appcontext.Context) gin.HandlerFunc {
	cities := service.NewCatalog[entity.City](ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var request struct {
			Name  *string `json:"name"`
			Image *string `json:"image"`
		}
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		changes := map[string]any{}
		if request.Name != nil {
			changes["name"] = *request.Name
		}
		if request.Image != nil {
			changes["image"] = *request.Image
		}

		city, err := cities.Update(c.Request.Context(), id, changes)
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "city": city})
	}
}

func DeleteCity(ctx *appcontext.Context) gin.HandlerFunc {
	cities := service.NewCatalog[entity.City](ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		if err := cities.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess})
	}
}

// UpdateCityImage replaces the city's image with an uploaded file.
func UpdateCityImage(ctx *appcontext.Context) gin.HandlerFunc {
	cities := service.NewCatalog[entity.City](ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		city, err := cities.GetOne(c.Request.Context(), repository.Filter{"id": id})
		if err != nil {
			fail(c, err)
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}
		src, err := file.Open()
		if err != nil {
			ctx.Logger.Error("Failed to open uploaded file", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}
		defer src.Close()

		stored, err := ctx.Storage.Save(c.Request.Context(), file.Filename, src)
		if err != nil {
			ctx.Logger.Error("Failed to save city image", zap.Error(err))
			fail(c, err)
			return
		}

		if city.Image != "" {
			if err := ctx.Storage.Delete(c.Request.Context(), city.Image); err != nil {
				ctx.Logger.Warn("Failed to delete previous city image", zap.String("image", city.Image), zap.Error(err))
			}
		}

		if _, err := cities.Update(c.Request.Context(), id, map[string]any{"image": stored}); err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "image": stored})
	}
}
