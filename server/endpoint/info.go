package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/scribekit/version"
)

// startTime records when the process started for uptime calculation.
var startTime = time.Now()

// Info returns a handler that reports service version and build information.
func Info(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		b := version.Build()
		c.JSON(http.StatusOK, gin.H{
			"service":    serviceName,
			"version":    b.Version,
			"commit":     b.Commit,
			"branch":     b.Branch,
			"go_version": b.GoVersion,
			"built_at":   b.BuiltAt.Format(time.RFC3339),
			"release":    b.Release,
			"dirty":      b.Dirty,
			"uptime":     time.Since(startTime).String(),
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
		})
	}
}
