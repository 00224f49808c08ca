package http

import (
	"github.com/Konaisya/construction-company/internal/appcontext"
	"github.com/Konaisya/construction-company/internal/http/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type APIService struct {
	engine  *gin.Engine
	context *appcontext.Context
}

func NewHTTPService(ctx *appcontext.Context) *APIService {
	engine := gin.New()
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	engine.Use(cors.New(corsConfig))

	service := &APIService{
		engine:  engine,
		context: ctx,
	}
	service.setupRoutes()
	return service
}

func (h *APIService) Engine() *gin.Engine {
	return h.engine
}

func (h *APIService) setupRoutes() {
	api := h.engine.Group("/api")
	h.setupAuthRoutes(api)
	h.setupUserRoutes(api)
	h.setupCityRoutes(api)
	h.setupCategoryRoutes(api)
	h.setupUnitRoutes(api)
	h.setupAttributeRoutes(api)
	h.setupProjectRoutes(api)
	h.setupOrderRoutes(api)
}

func (h *APIService) setupAuthRoutes(group *gin.RouterGroup) {
	auth := group.Group("/auth")

	auth.POST("/register", Register(h.context))
	auth.POST("/login", Login(h.context))
	auth.POST("/logout", Logout(h.context))
}

func (h *APIService) setupUserRoutes(group *gin.RouterGroup) {
	users := group.Group("/users")
	users.Use(middleware.JWTAuthMiddleware(h.context.JWTSecret))

	users.GET("/me", GetMe(h.context))
	users.GET("/all", GetAllUsers(h.context))
	users.PUT("/", UpdateUser(h.context))
	users.PUT("/updatename", UpdateUserName(h.context))
	users.DELETE("/", DeleteUser(h.context))
}

func (h *APIService) setupCityRoutes(group *gin.RouterGroup) {
	cities := group.Group("/cities")
	cities.GET("/", GetAllCities(h.context))
	cities.GET("/:id", GetCity(h.context))

	admin := cities.Group("")
	admin.Use(middleware.JWTAuthMiddleware(h.context.JWTSecret), middleware.AdminOnly())
	admin.POST("/", CreateCity(h.context))
	admin.PUT("/:id", UpdateCity(h.context))
	admin.DELETE("/:id", DeleteCity(h.context))
	admin.PATCH("/:id/image", UpdateCityImage(h.context))
}

func (h *APIService) setupCategoryRoutes(group *gin.RouterGroup) {
	categories := group.Group("/categories")
	categories.GET("/", GetAllCategories(h.context))
	categories.GET("/:id", GetCategory(h.context))

	admin := categories.Group("")
	admin.Use(middleware.JWTAuthMiddleware(h.context.JWTSecret), middleware.AdminOnly())
	admin.POST("/", CreateCategory(h.context))
	admin.PUT("/:id", UpdateCategory(h.context))
	admin.DELETE("/:id", DeleteCategory(h.context))
	admin.PATCH("/:id/image", UpdateCategoryImage(h.context))
}

func (h *APIService) setupUnitRoutes(group *gin.RouterGroup) {
	units := group.Group("/units")
	units.GET("/", GetAllUnits(h.context))
	units.GET("/:id", GetUnit(h.context))

	admin := units.Group("")
	admin.Use(middleware.JWTAuthMiddleware(h.context.JWTSecret), middleware.AdminOnly())
	admin.POST("/", CreateUnit(h.context))
	admin.PUT("/:id", UpdateUnit(h.context))
	admin.DELETE("/:id", DeleteUnit(h.context))
}

func (h *APIService) setupAttributeRoutes(group *gin.RouterGroup) {
	attributes := group.Group("/attributes")
	attributes.GET("/", GetAllAttributes(h.context))
	attributes.GET("/:id", GetAttribute(h.context))

	admin := attributes.Group("")
	admin.Use(middleware.JWTAuthMiddleware(h.context.JWTSecret), middleware.AdminOnly())
	admin.POST("/", CreateAttribute(h.context))
	admin.PUT("/:id", UpdateAttribute(h.context))
	admin.DELETE("/:id", DeleteAttribute(h.context))
}

func (h *APIService) setupProjectRoutes(group *gin.RouterGroup) {
	projects := group.Group("/projects")
	projects.GET("/", GetAllProjects(h.context))
	projects.GET("/:id", GetProject(h.context))

	admin := projects.Group("")
	admin.Use(middleware.JWTAuthMiddleware(h.context.JWTSecret), middleware.AdminOnly())
	admin.POST("/", CreateProject(h.context))
	admin.PUT("/:id", UpdateProject(h.context))
	admin.DELETE("/:id", DeleteProject(h.context))
	admin.PATCH("/:id", UpdateProjectMainImage(h.context))
	admin.POST("/:id/images", AddProjectImages(h.context))
	admin.DELETE("/:id/images", DeleteProjectImages(h.context))
}

func (h *APIService) setupOrderRoutes(group *gin.RouterGroup) {
	orders := group.Group("/orders")
	orders.Use(middleware.JWTAuthMiddleware(h.context.JWTSecret))

	orders.POST("/", CreateOrder(h.context))
	orders.GET("/", GetAllOrders(h.context))
	orders.GET("/:id", GetOrder(h.context))
	orders.PUT("/:id", UpdateOrder(h.context))
	orders.DELETE("/:id", DeleteOrder(h.context))
}
