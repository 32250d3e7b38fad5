// README: HTTP request counting middleware.
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Santhosh-R2/smart-travel/internal/metrics"
)

func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		collector.HTTPRequests.
			WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}
