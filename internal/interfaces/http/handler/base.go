package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hourbill/backend/internal/domain/shared"
	"github.com/hourbill/backend/internal/infrastructure/logger"
	"github.com/hourbill/backend/internal/interfaces/http/dto"
	"github.com/hourbill/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// currentUserID extracts the authenticated user's ID from the context.
// Requests reach handlers only through the session middleware, so a
// missing user means the route was wired without it.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return uuid.Nil, false
	}
	return user.ID, true
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// OK sends a 200 response
func (h *BaseHandler) OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Created sends a 201 response
func (h *BaseHandler) Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

// BadRequest sends a 400 error response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(message))
}

// NotFound sends a 404 error response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(message))
}

// Unauthorized sends a 401 error response
func (h *BaseHandler) Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
}

// InternalError sends a 500 error response with a generic body
func (h *BaseHandler) InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
}

// HandleDomainError converts domain errors to HTTP responses. Domain
// error codes map to statuses through the dto table; anything else is
// logged and surfaced as a generic 500.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		if status != http.StatusInternalServerError {
			c.JSON(status, dto.NewErrorResponse(domainErr.Message))
			return
		}
	}

	logger.GetGinLogger(c).Error("request failed", zap.Error(err))
	h.InternalError(c)
}
