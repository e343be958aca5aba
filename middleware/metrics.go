package middleware

import (
	"context"
	"fmt"
	"time"

	awspkg "agrodoc/pkg/aws"

	"github.com/gin-gonic/gin"
)

// Metrics tracks HTTP request counts, latency and error rates in CloudWatch.
// A nil or disabled client makes this a no-op.
func Metrics(metricsClient *awspkg.MetricsClient, appName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsClient == nil || !metricsClient.IsEnabled() {
			c.Next()
			return
		}

		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		dimensions := map[string]string{
			"App":    appName,
			"Method": method,
			"Path":   path,
			"Status": statusCodeToRange(statusCode),
		}

		// Recorded off the request path so a slow CloudWatch call never
		// delays the response.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			_ = metricsClient.RecordCount(ctx, awspkg.MetricHTTPRequests, dimensions)
			_ = metricsClient.RecordLatency(ctx, awspkg.MetricHTTPLatency, duration, dimensions)

			if statusCode >= 400 {
				_ = metricsClient.RecordCount(ctx, awspkg.MetricHTTPErrors, dimensions)
				if statusCode < 500 {
					_ = metricsClient.RecordCount(ctx, awspkg.MetricHTTP4xx, dimensions)
				} else {
					_ = metricsClient.RecordCount(ctx, awspkg.MetricHTTP5xx, dimensions)
				}
			}
		}()
	}
}

func statusCodeToRange(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
