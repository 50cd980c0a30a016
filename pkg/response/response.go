package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform JSON shape every endpoint responds with:
// {success, message?, ...payload}. Payload keys are merged at the top
// level so clients read response.token, response.user, etc.
type Envelope map[string]any

// Success writes a success envelope with the payload keys flattened in.
func Success(c *gin.Context, status int, message string, payload gin.H) {
	if status == 0 {
		status = http.StatusOK
	}
	body := Envelope{
		"success":    true,
		"timestamp":  time.Now().UTC(),
		"request_id": c.GetString("request_id"),
	}
	if message != "" {
		body["message"] = message
	}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes a failure envelope. details carries optional structured
// information such as per-field validation messages.
func Error(c *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	body := Envelope{
		"success":    false,
		"timestamp":  time.Now().UTC(),
		"request_id": c.GetString("request_id"),
		"message":    message,
	}
	if details != nil {
		body["errors"] = details
	}
	c.JSON(status, body)
}

// AbortError writes a failure envelope and aborts the handler chain.
// Used by middleware.
func AbortError(c *gin.Context, status int, message string, details any) {
	Error(c, status, message, details)
	c.Abort()
}
