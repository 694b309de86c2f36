package handlers

import (
	"errors"
	"net/http"

	"github.com/oyasr/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Resource not found"`
}

// Fixed error bodies, one per status code the API can return.
var errorBodies = map[int]ErrorResponse{
	http.StatusBadRequest:          {Error: http.StatusBadRequest, Message: "Bad request error"},
	http.StatusNotFound:            {Error: http.StatusNotFound, Message: "Resource not found"},
	http.StatusUnprocessableEntity: {Error: http.StatusUnprocessableEntity, Message: "Unprocessable entity"},
	http.StatusInternalServerError: {Error: http.StatusInternalServerError, Message: "An error has occured, please try again"},
}

func abortWithError(c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, errorBodies[code])
}

// handleServiceError maps service error kinds to status codes. Anything
// outside the known kinds is a data-layer fault: the cause is logged and the
// client gets the generic 422 body.
func handleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		abortWithError(c, http.StatusNotFound)
	case errors.Is(err, services.ErrBadRequest):
		abortWithError(c, http.StatusBadRequest)
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		abortWithError(c, http.StatusUnprocessableEntity)
	}
}
