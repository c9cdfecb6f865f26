package response

import "github.com/gin-gonic/gin"

// Response is the envelope every endpoint returns.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message any    `json:"message"`
}

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// CustomError writes the error envelope. Message may be a string, an
// error or a field->tag validation map.
func CustomError(c *gin.Context, statusCode int, code string, message any) {
	if err, ok := message.(error); ok {
		message = err.Error()
	}
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
