package endpoint

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// Metrics returns a handler that reports process-level runtime stats.
// Pipeline metrics proper go out through the OTLP exporter; this endpoint
// is a quick operator view of memory and goroutine counts.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.JSON(http.StatusOK, gin.H{
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"goroutines": runtime.NumGoroutine(),
			"uptime":     time.Since(startTime).String(),
			"memory": gin.H{
				"alloc_mb":       toMB(m.Alloc),
				"total_alloc_mb": toMB(m.TotalAlloc),
				"sys_mb":         toMB(m.Sys),
				"gc_runs":        m.NumGC,
			},
		})
	}
}

func toMB(b uint64) uint64 {
	return b / 1024 / 1024
}
