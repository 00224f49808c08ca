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

func GetAllAttributes(ctx *appcontext.Context) gin.HandlerFunc {
	attributes := service.NewCatalog[entity.Attribute](ctx.DB)
	return func(c *gin.Context) {
		filter := repository.Filter{}
		if name := c.Query("name"); name != "" {
			filter["name"] = name
		}

		all, err := attributes.GetAll(c.Request.Context(), filter)
		if err != nil {
			ctx.Logger.Error("Failed to list attributes", zap.Error(err))
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

func GetAttribute(ctx *appcontext.Context) gin.HandlerFunc {
	attributes := service.NewCatalog[entity.Attribute](ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		attribute, err := attributes.GetOne(c.Request.Context(), repository.Filter{"id": id})
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, attribute)
	}
}

func CreateAttribute(ctx *appcontext.Context) gin.HandlerFunc {
	attributes := service.NewCatalog[entity.Attribute](ctx.DB)
	return func(c *gin.Context) {
		var request struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		attribute := entity.Attribute{Name: request.Name}
		if err := attributes.Create(c.Request.Context(), &attribute); err != nil {
			ctx.Logger.Error("Failed to create attribute", zap.Error(err))
			fail(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": statusSuccess, "id": attribute.ID})
	}
}

func UpdateAttribute(ctx *appcontext.Context) gin.HandlerFunc {
	attributes := service.NewCatalog[entity.Attribute](ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var request struct {
			Name *string `json:"name"`
		}
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		changes := map[string]any{}
		if request.Name != nil {
			changes["name"] = *request.Name
		}

		attribute, err := attributes.Update(c.Request.Context(), id, changes)
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "attribute": attribute})
	}
}

func DeleteAttribute(ctx *appcontext.Context) gin.HandlerFunc {
	attributes := service.NewCatalog[entity.Attribute](ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		if err := attributes.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess})
	}
}
