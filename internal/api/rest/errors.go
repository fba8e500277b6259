package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rEtSaMfF/ffrk-bottle/internal/api/shared/dto"
	apierrors "github.com/rEtSaMfF/ffrk-bottle/internal/api/shared/errors"
	"github.com/rEtSaMfF/ffrk-bottle/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(message))
}

// respondError responds with the status of an executor error; anything unstructured is internal
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		logger.ErrorCtx(c.Request.Context(), err)
		apiErr = apierrors.NewInternalError(message)
	}
	c.JSON(apiErr.Status(), apiErr)
}

// respondPostError replies to /post with its flat failure shape
func respondPostError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		logger.ErrorCtx(c.Request.Context(), err)
		apiErr = apierrors.NewInternalError("Failed to import payload")
	}
	c.JSON(apiErr.Status(), dto.PostResponse{Success: false, Error: apiErr.Code})
}
