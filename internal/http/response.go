package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Konaisya/construction-company/internal/service"
	"github.com/gin-gonic/gin"
)

// Response envelope statuses.
const (
	statusSuccess   = "SUCCESS"
	statusFailed    = "FAILED"
	statusNotFound  = "NOT_FOUND"
	statusForbidden = "FORBIDDEN"
)

// fail maps a service error onto the HTTP status envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": statusNotFound})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"status": statusForbidden})
	default:
		// Validation rejections and persistence failures both surface
		// as a 400 with the FAILED envelope.
		c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
	}
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"status": statusForbidden})
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": statusFailed})
		return 0, false
	}
	return uint(id), true
}

func queryUint(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

func queryString(c *gin.Context, name string) *string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}

func queryBool(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
