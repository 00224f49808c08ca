package http

import (
	"net/http"

	"github.com/Konaisya/construction-company/internal/appcontext"
	"github.com/Konaisya/construction-company/internal/repository"
	"github.com/Konaisya/construction-company/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func GetAllProjects(ctx *appcontext.Context) gin.HandlerFunc {
	projects := service.NewProjectService(ctx.DB)
	return func(c *gin.Context) {
		filter := repository.Filter{}
		if name := queryString(c, "name"); name != nil {
			filter["name"] = *name
		}
		if slug := queryString(c, "slug"); slug != nil {
			filter["slug"] = *slug
		}
		if isDone := queryBool(c, "is_done"); isDone != nil {
			filter["is_done"] = *isDone
		}
		if idCategory := queryUint(c, "id_category"); idCategory != nil {
			filter["id_category"] = *idCategory
		}
		if idCity := queryUint(c, "id_city"); idCity != nil {
			filter["id_city"] = *idCity
		}

		idAttribute := queryUint(c, "id_attribute")
		attributeValue := queryString(c, "attribute_value")

		all, err := projects.GetAll(c.Request.Context(), filter, idAttribute, attributeValue)
		if err != nil {
			ctx.Logger.Error("Failed to list projects", zap.Error(err))
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

func GetProject(ctx *appcontext.Context) gin.HandlerFunc {
	projects := service.NewProjectService(ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		view, err := projects.GetView(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, view)
	}
}

func CreateProject(ctx *appcontext.Context) gin.HandlerFunc {
	projects := service.NewProjectService(ctx.DB)
	return func(c *gin.Context) {
		var request service.CreateProjectInput
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		project, err := projects.Create(c.Request.Context(), request)
		if err != nil {
			ctx.Logger.Error("Failed to create project", zap.Error(err))
			fail(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"status": statusSuccess, "id": project.ID})
	}
}

func UpdateProject(ctx *appcontext.Context) gin.HandlerFunc {
	projects := service.NewProjectService(ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		var request service.UpdateProjectInput
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		if err := projects.Update(c.Request.Context(), id, request); err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess})
	}
}

// DeleteProject removes the stored image files first, then cascades the row
// deletion through attributes and images to the project itself.
func DeleteProject(ctx *appcontext.Context) gin.HandlerFunc {
	projects := service.NewProjectService(ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		project, err := projects.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}

		images, err := projects.Images(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}

		if project.MainImage != "" {
			if err := ctx.Storage.Delete(c.Request.Context(), project.MainImage); err != nil {
				ctx.Logger.Warn("Failed to delete main image", zap.String("image", project.MainImage), zap.Error(err))
			}
		}
		for _, image := range images {
			if err := ctx.Storage.Delete(c.Request.Context(), image.Image); err != nil {
				ctx.Logger.Warn("Failed to delete project image", zap.String("image", image.Image), zap.Error(err))
			}
		}

		if err := projects.Delete(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess})
	}
}

func UpdateProjectMainImage(ctx *appcontext.Context) gin.HandlerFunc {
	projects := service.NewProjectService(ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		project, err := projects.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}

		file, err := c.FormFile("main_image")
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
			ctx.Logger.Error("Failed to save main image", zap.Error(err))
			fail(c, err)
			return
		}

		if project.MainImage != "" {
			if err := ctx.Storage.Delete(c.Request.Context(), project.MainImage); err != nil {
				ctx.Logger.Warn("Failed to delete previous main image", zap.String("image", project.MainImage), zap.Error(err))
			}
		}

		if err := projects.Update(c.Request.Context(), id, service.UpdateProjectInput{MainImage: &stored}); err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess, "image": stored})
	}
}

func AddProjectImages(ctx *appcontext.Context) gin.HandlerFunc {
	projects := service.NewProjectService(ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		if _, err := projects.Get(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		for _, file := range form.File["images"] {
			src, err := file.Open()
			if err != nil {
				ctx.Logger.Error("Failed to open uploaded file", zap.Error(err))
				c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
				return
			}

			stored, err := ctx.Storage.Save(c.Request.Context(), file.Filename, src)
			src.Close()
			if err != nil {
				ctx.Logger.Error("Failed to save project image", zap.Error(err))
				fail(c, err)
				return
			}

			if _, err := projects.AddImage(c.Request.Context(), id, stored); err != nil {
				fail(c, err)
				return
			}
		}

		c.JSON(http.StatusCreated, gin.H{"status": statusSuccess})
	}
}

// DeleteProjectImages removes gallery images by id, skipping ids that do not
// belong to the project.
func DeleteProjectImages(ctx *appcontext.Context) gin.HandlerFunc {
	projects := service.NewProjectService(ctx.DB)
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			return
		}

		if _, err := projects.Get(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}

		var request struct {
			IDsImages []uint `json:"ids_images" binding:"required"`
		}
		if err := c.BindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
			return
		}

		for _, idImage := range request.IDsImages {
			image, err := projects.Image(c.Request.Context(), idImage)
			if err != nil || image.IDProject != id {
				continue
			}
			if err := projects.DeleteImage(c.Request.Context(), idImage); err != nil {
				fail(c, err)
				return
			}
			if err := ctx.Storage.Delete(c.Request.Context(), image.Image); err != nil {
				ctx.Logger.Warn("Failed to delete project image", zap.String("image", image.Image), zap.Error(err))
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": statusSuccess})
	}
}
