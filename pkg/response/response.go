package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error payload shape shared with the legacy Python
// implementation: a single human readable detail string.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// JSON writes a success payload as-is, without an envelope.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Error writes an error response with the standard detail body.
func Error(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorBody{Detail: detail})
}

// ErrorWithLog writes an error response and logs the underlying error via slog.
func ErrorWithLog(logger *slog.Logger, c *gin.Context, status int, detail string, err error) {
	if logger != nil && err != nil {
		logger.ErrorContext(c.Request.Context(), detail,
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
	}

	Error(c, status, detail)
}
