package logger

import (
	"bytes"
	"encoding/json"
	"io"

	"openpay-gateway/pkg/correlation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Bodies are truncated before logging so a large payload cannot bloat
// the log stream.
const maxLoggedBody = 8 * 1024

func truncate(b []byte) []byte {
	if len(b) > maxLoggedBody {
		return b[:maxLoggedBody]
	}
	return b
}

type captureWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// CorrelationMiddleware takes the correlation id from the request header,
// minting one when absent, and puts it on the request context and the
// response header.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(correlation.HeaderName)
		if id == "" {
			id = correlation.NewID()
		}

		c.Request = c.Request.WithContext(correlation.WithID(c.Request.Context(), id))
		c.Header(correlation.HeaderName, id)

		c.Next()
	}
}

// GinBodyLogger emits one structured record per request, carrying the
// truncated request and response bodies and the correlation id.
func (l *Logger) GinBodyLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody []byte
		if c.Request.Body != nil {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(reqBody))
		}

		capture := &captureWriter{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = capture

		c.Next()

		event := l.logger.Info()
		if id := correlation.FromContext(c.Request.Context()); id != "" {
			event = event.Str("correlation_id", id)
		}
		event = event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", c.Writer.Status())

		event = attachBody(event, "request_body", truncate(reqBody))
		event = attachBody(event, "response_body", truncate(capture.buf.Bytes()))

		event.Msg("HTTP Request")
	}
}

// attachBody embeds valid JSON raw; anything else goes in as a string so
// the record itself stays parseable.
func attachBody(e *zerolog.Event, key string, b []byte) *zerolog.Event {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return e
	}
	if json.Valid(b) {
		return e.RawJSON(key, b)
	}
	return e.Str(key, string(b))
}
