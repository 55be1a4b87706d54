package httpx

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/jm_orders/internal/ports"
)

// RequestLogger — middleware для логирования HTTP-запросов.
// request_id и trace/span попадают в запись через контекст запроса.
func RequestLogger(log ports.Logger, skip ...string) gin.HandlerFunc {
	skipped := map[string]struct{}{"/metrics": {}, "/ping": {}}
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if _, ok := skipped[path]; ok {
			return
		}
		if path == "" {
			path = c.Request.URL.Path
		}

		log.Infof(
			c.Request.Context(),
			"request method=%s path=%s status=%d ip=%s duration=%s size=%d",
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
