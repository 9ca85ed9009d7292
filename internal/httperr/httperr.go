package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromError maps a domain error to its HTTP status; anything that is not
// a DomainError surfaces as a 500.
func FromError(c *gin.Context, err error) {
	switch {
	case IsNotFound(err):
		NotFound(c, "not_found", err.Error())
	case IsValidation(err):
		BadRequest(c, "validation_error", err.Error())
	case IsConflict(err):
		Conflict(c, "conflict", err.Error())
	case IsForbidden(err):
		Forbidden(c, "forbidden", err.Error())
	default:
		Internal(c, "internal_error", "Internal server error.")
	}
}
