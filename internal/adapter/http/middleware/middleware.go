package middleware

import (
	"errors"
	"net/http"
	"time"

	"telco-billing/internal/adapter/http/dto"
	"telco-billing/pkg/apperror"
	"telco-billing/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderActorID   = "X-Actor-ID"

	// Context keys
	CtxRequestID  = "request_id"
	CtxActor      = "actor"
	CtxResourceID = "resource_id"

	anonymousActor = "anonymous"
)

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// Actor records the operator identity forwarded by the upstream gateway.
// Authentication happens before requests reach this service.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := dto.Sanitize(c.GetHeader(HeaderActorID))
		if actor == "" {
			actor = anonymousActor
		}
		c.Set(CtxActor, actor)
		c.Next()
	}
}

// ActorFrom returns the actor set by Actor, or "anonymous".
func ActorFrom(c *gin.Context) string {
	if v, ok := c.Get(CtxActor); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return anonymousActor
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		if len(c.Errors) > 0 {
			event = event.Err(c.Errors.Last().Err)
		}

		event.
			Str("request_id", c.GetString(CtxRequestID)).
			Str("actor", c.GetString(CtxActor)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("request_id", c.GetString(CtxRequestID)).
					Str("path", c.Request.URL.Path).
					Msg("panic recovered")
				response.Error(c, apperror.InternalError(errors.New("panic")))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// MaxBodySize rejects requests whose declared length exceeds maxBytes and
// caps the body reader for the rest.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.Error(c, apperror.ErrPayloadTooLarge())
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
