package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"foodgram/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RequestLogger writes one log line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		}

		userID, _ := UserID(c)
		event.
			Str("request_id", requestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Int64("user_id", userID).
			Msg("http request")
	}
}

// ErrorLogger logs detailed error information and recovers from panics.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequestError(c, start, log.Error().Bytes("stack", debug.Stack()), "panic", err)

				response.Abort(c, http.StatusInternalServerError, response.CodeInternal, "Internal server error")
				return
			}

			if len(c.Errors) == 0 {
				if c.Writer.Status() >= http.StatusInternalServerError {
					logRequestError(c, start, log.Error(), "http_error", fmt.Errorf("status=%d", c.Writer.Status()))
				}
				return
			}

			for _, ginErr := range c.Errors {
				event := log.Error()
				if ginErr.Meta != nil {
					event = event.Interface("meta", ginErr.Meta)
				}
				logRequestError(c, start, event, fmt.Sprintf("%v", ginErr.Type), ginErr.Err)
			}
		}()

		c.Next()
	}
}

func logRequestError(c *gin.Context, start time.Time, event *zerolog.Event, errType string, err error) {
	userID, _ := UserID(c)
	event.
		Err(err).
		Str("type", errType).
		Int("status", c.Writer.Status()).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("query", c.Request.URL.RawQuery).
		Str("client_ip", c.ClientIP()).
		Int64("user_id", userID).
		Str("request_id", requestID(c)).
		Dur("latency", time.Since(start)).
		Msg("request error")
}

func requestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = c.GetHeader("X-Request-Id")
	}
	return requestID
}
