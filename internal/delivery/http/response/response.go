package response

import (
	"github.com/gin-gonic/gin"
)

// ContextKeyRequestID is where the request id middleware stores the id the
// envelope echoes back.
const ContextKeyRequestID = "RequestID"

// Response is the uniform JSON envelope every endpoint replies with.
// Data carries the payload on success; Error is reserved for field-level
// validation detail and stays empty for plain failures.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success writes a success envelope with the given payload.
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error writes a failure envelope.
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	id, _ := c.Get(ContextKeyRequestID)
	idStr, _ := id.(string)
	return idStr
}
