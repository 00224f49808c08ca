package http

import (
	"net/http"

	"github.com/Konaisya/construction-company/internal/appcontext"
	"github.com/Konaisya/construction-company/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Register(ctx *appcontext.Context) gin.HandlerFunc {
	auth := service.NewAuthService(ctx.DB, ctx.JWTSecret, ctx.TokenTTL)
	return func(c *gin.Context) {
		var request service.RegisterInput
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		user, err := auth.Register(c.Request.Context(), request)
		if err != nil {
			ctx.Logger.Error("Failed to register user", zap.Error(err))
			fail(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": statusSuccess, "id": user.ID})
	}
}

func Login(ctx *appcontext.Context) gin.HandlerFunc {
	auth := service.NewAuthService(ctx.DB, ctx.JWTSecret, ctx.TokenTTL)
	return func(c *gin.Context) {
		var request struct {
			Email    string `json:"email" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		token, err := auth.Login(c.Request.Context(), request.Email, request.Password)
		if err != nil {
			ctx.Logger.Warn("Failed login attempt", zap.String("email", request.Email))
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
	}
}

func Logout(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie("token", "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"status": statusSuccess})
	}
}
