package handlers

import (
	"errors"
	"net/http"

	"github.com/campuslink/campuslink/backend/go-services/internal/apperror"
	"github.com/campuslink/campuslink/backend/go-services/pkg/logger"
	"github.com/campuslink/campuslink/backend/go-services/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// writeError maps err onto a status code and the JSON error body.
func writeError(c *gin.Context, err error) {
	kind := apperror.Kind(err)
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperror.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}

	body := gin.H{"error": kind, "message": "internal error"}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		body["message"] = appErr.Message
		if len(appErr.Fields) > 0 {
			body["fields"] = appErr.Fields
		}
	}

	reqID := c.GetString(middleware.RequestIDKey)
	if status >= http.StatusInternalServerError {
		logger.Errorf("[%s] %s %s: %v", reqID, c.Request.Method, c.Request.URL.Path, err)
	} else {
		logger.Debugf("[%s] %s %s rejected: %v", reqID, c.Request.Method, c.Request.URL.Path, err)
	}
	c.AbortWithStatusJSON(status, body)
}
