package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the body shape of every JSON API response
type Envelope struct {
	Status  bool        `json:"status" example:"true"`
	Message string      `json:"message" example:"Farm created successfully"`
	Data    interface{} `json:"data"`
}

// Success sends a successful envelope
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// Error sends a failed envelope with null data
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		Status:  false,
		Message: message,
	})
}

// OK sends a 200 OK envelope
func OK(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusOK, message, data)
}

// Created sends a 201 Created envelope
func Created(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusCreated, message, data)
}

// BadRequest sends a 400 Bad Request envelope
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized envelope and stops the handler chain
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
	c.Abort()
}

// NotFound sends a 404 Not Found envelope
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict sends a 409 Conflict envelope
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// InternalServerError sends a 500 Internal Server Error envelope
func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
