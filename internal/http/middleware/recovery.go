// README: Panic recovery middleware; converts panics to the error record.
package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery turns any downstream panic into a 500 error record so no failure
// escapes the JSON contract.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}
