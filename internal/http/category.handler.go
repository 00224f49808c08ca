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

func GetAllCategories(ctx *appcontext.Context) gin.HandlerFunc {
	categories := service.NewCatalog[entity.Category](ctx.DB)
	return func(c *gin.Context) {
		filter := repository.Filter{}
		if name := c.Query("name"); name != "" {
			filter["name"] = name
		}

		all, err := categories.GetAll(c.Request.Context(), filter)
		if err != nil {
			ctx.Logger.Error("Failed to list categories", zap.Error(err))
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

func GetCategory(ctx *appcontext.Context) gin.HandlerFunc {
	categories := service.NewCatalog[entity.Category](ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		category, err := categories.GetOne(c.Request.Context(), repository.Filter{"id": id})
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

func CreateCategory(ctx *appcontext.Context) gin.HandlerFunc {
	categories := service.NewCatalog[entity.Category](ctx.DB)
	return func(c *gin.Context) {
		var request struct {
			Name  string `json:"name" binding:"required"`
			Image string `json:"image"`
		}
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		category := entity.Category{Name: request.Name, Image: request.Image}
		if err := categories.Create(c.Request.Context(), &category); err != nil {
			ctx.Logger.Error("Failed to create category", zap.Error(err))
			fail(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": statusSuccess, "id": category.ID})
	}
}

func UpdateCategory(ctx *appcontext.Context) gin.HandlerFunc {
	categories := service.NewCatalog[entity.Category](ctx.DB)
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

		category, err := categories.Update(c.Request.Context(), id, changes)
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "category": category})
	}
}

func DeleteCategory(ctx *appcontext.Context) gin.HandlerFunc {
	categories := service.NewCatalog[entity.Category](ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		if err := categories.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess})
	}
}

func UpdateCategoryImage(ctx *appcontext.Context) gin.HandlerFunc {
	categories := service.NewCatalog[entity.Category](ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		category, err := categories.GetOne(c.Request.Context(), repository.Filter{"id": id})
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
			ctx.Logger.Error("Failed to save category image", zap.Error(err))
			fail(c, err)
			return
		}

		if category.Image != "" {
			if err := ctx.Storage.Delete(c.Request.Context(), category.Image); err != nil {
				ctx.Logger.Warn("Failed to delete previous category image", zap.String("image", category.Image), zap.Error(err))
			}
		}

		if _, err := categories.Update(c.Request.Context(), id, map[string]any{"image": stored}); err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "image": stored})
	}
}
