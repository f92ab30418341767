package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/melynxis/solace/internal/apperr"
	"github.com/melynxis/solace/internal/observability"
)

// Envelope is the uniform response wrapper. Data is present on success,
// Error on failure, never both. Meta always carries the correlation id.
type Envelope struct {
	OK    bool       `json:"ok"`
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
	Meta  Meta       `json:"meta"`
}

// ErrorBody is the wire form of one taxonomy error.
type ErrorBody struct {
	Code    apperr.Code `json:"code"`
	Message string      `json:"message"`
}

// Meta carries per-response tracing info.
type Meta struct {
	RequestID string `json:"requestId"`
}

func respond(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{
		OK:   true,
		Data: data,
		Meta: Meta{RequestID: observability.RequestID(c)},
	})
}

// respondError maps the taxonomy code to an HTTP status and wraps the
// diagnostic message. Unclassified errors surface as INTERNAL_ERROR.
func respondError(c *gin.Context, err error) {
	code := apperr.CodeOf(err)
	c.JSON(apperr.HTTPStatus(code), Envelope{
		OK: false,
		Error: &ErrorBody{
			Code:    code,
			Message: apperr.MessageOf(err),
		},
		Meta: Meta{RequestID: observability.RequestID(c)},
	})
}

func respondValidation(c *gin.Context, format string, args ...any) {
	respondError(c, apperr.New(apperr.CodeValidationFailed, format, args...))
}
