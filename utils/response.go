package utils

import "github.com/gin-gonic/gin"

// Every handler answers with the same envelope: a success flag plus either
// a data payload or an error message, never both.

// JSONSuccess writes the envelope with the payload under "data".
func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONError writes the envelope with the message under "error".
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
