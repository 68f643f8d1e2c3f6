package response

import "github.com/gin-gonic/gin"

// ErrorBody is the generic error payload: {"status": 404, "error": "author not found"}.
type ErrorBody struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// JSON writes a success body. Entities are rendered as-is, without an envelope.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Error writes the generic error body with the matching HTTP status.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{
		Status: statusCode,
		Error:  message,
	})
}

// Common error responses

func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 409, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}
