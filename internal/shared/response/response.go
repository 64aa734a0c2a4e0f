package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope wraps every HTTP response. Code 0 means success; non-zero codes
// mirror the HTTP status of the failure.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Paginated is the payload shape for list endpoints.
type Paginated struct {
	List  interface{} `json:"list"`
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// Success responses
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Code: 0, Data: data})
}

func SuccessWithMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Code: 0, Message: message})
}

func Created(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, Envelope{Code: 0, Message: message})
}

// Error responses
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{Code: statusCode, Message: message})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
