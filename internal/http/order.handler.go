package http

import (
	"net/http"

	"github.com/Konaisya/construction-company/internal/appcontext"
	"github.com/Konaisya/construction-company/internal/entity"
	"github.com/Konaisya/construction-company/internal/repository"
	"github.com/Konaisya/construction-company/internal/service"
	"github.com/Konaisya/construction-company/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func CreateOrder(ctx *appcontext.Context) gin.HandlerFunc {
	orders := service.NewOrderService(ctx.DB)
	return func(c *gin.Context) {
		claims, err := utils.CallerFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var request struct {
			IDProject uint `json:"id_project" binding:"required"`
		}
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		order, err := orders.Create(c.Request.Context(), claims.UserID, request.IDProject)
		if err != nil {
			ctx.Logger.Error("Failed to create order", zap.Error(err))
			fail(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": statusSuccess, "id": order.ID})
	}
}

// GetAllOrders lists orders matching the query filters. A non-admin caller's
// filters are intersected with a forced id_user constraint, overriding any
// id_user they supplied.
func GetAllOrders(ctx *appcontext.Context) gin.HandlerFunc {
	orders := service.NewOrderService(ctx.DB)
	return func(c *gin.Context) {
		claims, err := utils.CallerFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		filter := repository.Filter{}
		if idUser := queryUint(c, "id_user"); idUser != nil {
			filter["id_user"] = *idUser
		}
		if idProject := queryUint(c, "id_project"); idProject != nil {
			filter["id_project"] = *idProject
		}
		if status := queryString(c, "status"); status != nil {
			filter["status"] = *status
		}
		for _, field := range []string{"created_date", "updated_date", "payment_date", "start_date", "end_date"} {
			if value := queryString(c, field); value != nil {
				filter[field] = *value
			}
		}
		for _, field := range []string{"start_price", "final_price"} {
			if raw := c.Query(field); raw != "" {
				if price, err := decimal.NewFromString(raw); err == nil {
					filter[field] = price
				}
			}
		}

		if claims.Role != entity.RoleAdmin {
			filter["id_user"] = claims.UserID
		}

		views, err := orders.GetAll(c.Request.Context(), filter)
		if err != nil {
			ctx.Logger.Error("Failed to list orders", zap.Error(err))
			fail(c, err)
			return
		}
		if len(views) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"status": statusNotFound})
			return
		}

		c.JSON(http.StatusOK, views)
	}
}

func GetOrder(ctx *appcontext.Context) gin.HandlerFunc {
	orders := service.NewOrderService(ctx.DB)
	return func(c *gin.Context) {
		claims, err := utils.CallerFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		view, err := orders.GetView(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		if claims.Role != entity.RoleAdmin && view.IDUser != claims.UserID {
			forbidden(c)
			return
		}

		c.JSON(http.StatusOK, view)
	}
}

func UpdateOrder(ctx *appcontext.Context) gin.HandlerFunc {
	orders := service.NewOrderService(ctx.DB)
	return func(c *gin.Context) {
		claims, err := utils.CallerFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		order, err := orders.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		if claims.Role != entity.RoleAdmin && order.IDUser != claims.UserID {
			forbidden(c)
			return
		}

		var request service.UpdateOrderInput
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		if err := orders.Update(c.Request.Context(), id, request); err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess})
	}
}

func DeleteOrder(ctx *appcontext.Context) gin.HandlerFunc {
	orders := service.NewOrderService(ctx.DB)
	return func(c *gin.Context) {
		claims, err := utils.CallerFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		order, err := orders.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}
		if claims.Role != entity.RoleAdmin && order.IDUser != claims.UserID {
			forbidden(c)
			return
		}

		if err := orders.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess})
	}
}
