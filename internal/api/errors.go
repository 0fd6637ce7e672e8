package api

import (
	"errors"
	"miniblog/internal/authz"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ErrCodeInvalidRequest = "ERR_INVALID_REQUEST"
	ErrCodeUnauthorized   = "ERR_UNAUTHORIZED"
	ErrCodeForbidden      = "ERR_FORBIDDEN"
	ErrCodeNotFound       = "ERR_NOT_FOUND"
	ErrCodeInternalError  = "ERR_INTERNAL_ERROR"

	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeUsernameExists     = "ERR_USERNAME_EXISTS"
	ErrCodePasswordMismatch   = "ERR_PASSWORD_MISMATCH"
	ErrCodeSessionExpired     = "ERR_SESSION_EXPIRED"

	ErrCodePostNotFound = "ERR_POST_NOT_FOUND"
	ErrCodeUserNotFound = "ERR_USER_NOT_FOUND"

	// ErrCodePostPrivate is the soft denial of a private read: the client is
	// expected to return to the feed, not to treat this as a hard failure.
	ErrCodePostPrivate      = "ERR_POST_PRIVATE"
	ErrCodeCannotDeleteSelf = "ERR_CANNOT_DELETE_SELF"
	ErrCodeMissingField     = "ERR_MISSING_FIELD"
)

// APIError is the uniform error response body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse writes a uniform error response.
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails writes an error response with extra details.
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// BadRequest 400
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, ErrCodeForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

// InternalError 500
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// MissingField reports a missing required field.
func MissingField(c *gin.Context, field string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField, field+" is required", gin.H{"field": field})
}

// InvalidPayload reports an unparseable request body.
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}

// DenialResponse maps an authorization denial to its HTTP shape. Each denial
// kind keeps its own code so clients cannot conflate severities.
func DenialResponse(c *gin.Context, err error) {
	var denial *authz.Denial
	if !errors.As(err, &denial) {
		InternalError(c, "authorization failure")
		return
	}
	switch denial.Kind {
	case authz.DenyUnauthenticated:
		Unauthorized(c, denial.Error())
	case authz.DenyNotFound:
		NotFound(c, ErrCodeNotFound, denial.Error())
	case authz.DenyPrivatePost:
		ErrorResponse(c, http.StatusForbidden, ErrCodePostPrivate, denial.Error())
	case authz.DenySelfDelete:
		BadRequest(c, ErrCodeCannotDeleteSelf, denial.Error())
	default:
		Forbidden(c, denial.Error())
	}
}
