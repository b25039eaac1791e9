package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"

	ctxRequestID = "request_id"
	ctxLogger    = "logger"
)

// requestID assigns each request an ID and a logger entry tagged with it.
func requestID(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Set(ctxLogger, log.WithField("request_id", id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// accessLog writes one line per request after it completes.
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()

		entry := loggerFrom(c).WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(began).String(),
			"client":  c.ClientIP(),
		})
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("request failed")
		case status >= 400:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}

func loggerFrom(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get(ctxLogger); ok {
		if e, ok := v.(*logrus.Entry); ok {
			return e
		}
	}

	return logrus.NewEntry(logrus.StandardLogger())
}
