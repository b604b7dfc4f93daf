package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire envelope for every failed request: success is
// always false, error is the user-facing message, details carries per-field
// validation messages when present.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// HandleError converts any error into the JSON error envelope. Non-AppErrors
// become 500s with their message surfaced; nothing here panics or re-throws,
// so route handlers can always terminate with it.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		if err != nil && err.Error() != "" {
			appErr.Message = err.Error()
		}
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Success: false,
		Error:   appErr.Message,
		Details: appErr.Details,
	})
}
