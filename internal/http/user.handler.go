package http

import (
	"net/http"

	"github.com/Konaisya/construction-company/internal/appcontext"
	"github.com/Konaisya/construction-company/internal/entity"
	"github.com/Konaisya/construction-company/internal/service"
	"github.com/Konaisya/construction-company/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func GetMe(ctx *appcontext.Context) gin.HandlerFunc {
	users := service.NewUserService(ctx.DB)
	return func(c *gin.Context) {
		claims, err := utils.CallerFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := users.Get(c.Request.Context(), claims.UserID)
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func GetAllUsers(ctx *appcontext.Context) gin.HandlerFunc {
	users := service.NewUserService(ctx.DB)
	return func(c *gin.Context) {
		claims, err := utils.CallerFromClaims(c)
		if err != nil || claims.Role != entity.RoleAdmin {
			forbidden(c)
			return
		}

		all, err := users.GetAll(c.Request.Context(), nil)
		if err != nil {
			ctx.Logger.Error("Failed to list users", zap.Error(err))
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, all)
	}
}

// UpdateUser updates the caller's profile, or any user's when the caller is
// an admin and supplies a user_id query parameter.
func UpdateUser(ctx *appcontext.Context) gin.HandlerFunc {
	users := service.NewUserService(ctx.DB)
	return func(c *gin.Context) {
		claims, err := utils.CallerFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		target := claims.UserID
		if id := queryUint(c, "user_id"); id != nil {
			target = *id
		}
		if target != claims.UserID && claims.Role != entity.RoleAdmin {
			forbidden(c)
			return
		}

		var request service.UpdateUserInput
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		user, err := users.Update(c.Request.Context(), target, request)
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "data": user})
	}
}

func UpdateUserName(ctx *appcontext.Context) gin.HandlerFunc {
	users := service.NewUserService(ctx.DB)
	return func(c *gin.Context) {
		claims, err := utils.CallerFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		name := c.Query("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		user, err := users.Update(c.Request.Context(), claims.UserID, service.UpdateUserInput{Name: &name})
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "data": user})
	}
}

func DeleteUser(ctx *appcontext.Context) gin.HandlerFunc {
	users := service.NewUserService(ctx.DB)
	return func(c *gin.Context) {
		claims, err := utils.CallerFromClaims(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		target := claims.UserID
		if id := queryUint(c, "user_id"); id != nil {
			target = *id
		}
		if target != claims.UserID && claims.Role != entity.RoleAdmin {
			forbidden(c)
			return
		}

		if err := users.Delete(c.Request.Context(), target); err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess})
	}
}
