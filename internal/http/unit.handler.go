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

func GetAllUnits(ctx *appcontext.Context) gin.HandlerFunc {
	units := service.NewCatalog[entity.Unit](ctx.DB)
	return func(c *gin.Context) {
		filter := repository.Filter{}
		if name := c.Query("name"); name != "" {
			filter["name"] = name
		}
		if fullName := c.Query("full_name"); fullName != "" {
			filter["full_name"] = fullName
		}

		all, err := units.GetAll(c.Request.Context(), filter)
		if err != nil {
			ctx.Logger.Error("Failed to list units", zap.Error(err))
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

func GetUnit(ctx *appcontext.Context) gin.HandlerFunc {
	units := service.NewCatalog[entity.Unit](ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		unit, err := units.GetOne(c.Request.Context(), repository.Filter{"id": id})
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, unit)
	}
}

func CreateUnit(ctx *appcontext.Context) gin.HandlerFunc {
	units := service.NewCatalog[entity.Unit](ctx.DB)
	return func(c *gin.Context) {
		var request struct {
			Name     string  `json:"name" binding:"required"`
			FullName *string `json:"full_name"`
		}
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		unit := entity.Unit{Name: request.Name, FullName: request.FullName}
		if err := units.Create(c.Request.Context(), &unit); err != nil {
			ctx.Logger.Error("Failed to create unit", zap.Error(err))
			fail(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": statusSuccess, "id": unit.ID})
	}
}

func UpdateUnit(ctx *appcontext.Context) gin.HandlerFunc {
	units := service.NewCatalog[entity.Unit](ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var request struct {
			Name     *string `json:"name"`
			FullName *string `json:"full_name"`
		}
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		changes := map[string]any{}
		if request.Name != nil {
			changes["name"] = *request.Name
		}
		if request.FullName != nil {
			changes["full_name"] = *request.FullName
		}

		unit, err := units.Update(c.Request.Context(), id, changes)
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "unit": unit})
	}
}

func DeleteUnit(ctx *appcontext.Context) gin.HandlerFunc {
	units := service.NewCatalog[entity.Unit](ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		if err := units.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess})
	}
}
