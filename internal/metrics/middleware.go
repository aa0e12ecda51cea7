package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware records request duration per route. The per-method request
// counters are incremented inside the handlers themselves, where the
// logical method is known.
func Middleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		m.RequestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}
