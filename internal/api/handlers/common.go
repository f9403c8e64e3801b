package handlers

import (
	"strconv"

	"agrimanager-backend/internal/api/response"
	"agrimanager-backend/internal/auth"
	apperrors "agrimanager-backend/internal/errors"
	"agrimanager-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// callerFrom returns the authenticated identity or answers 401
func callerFrom(c *gin.Context) (auth.Identity, bool) {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		response.Unauthorized(c, apperrors.ErrUnauthenticated.Error())
	}
	return identity, ok
}

// parseID reads the :id path parameter or answers 400
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// bindJSON decodes the request body or answers 400
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// respondError maps a service error onto the envelope status codes
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		response.NotFound(c, err.Error())
	case apperrors.IsValidation(err):
		response.BadRequest(c, apperrors.ValidationMessage(err))
	case apperrors.IsConflict(err), apperrors.IsAlreadyExists(err):
		response.Conflict(c, err.Error())
	case apperrors.IsAuthentication(err):
		response.Unauthorized(c, err.Error())
	default:
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.FullPath()).
			Error("Request failed")
		response.InternalServerError(c, err.Error())
	}
}
