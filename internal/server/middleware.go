package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/atriumhq/atrium/internal/identity"
)

const contextUserIDKey = "user_id"

// AuthRequired resolves the session cookie into an authenticated identity
// and stores it on the request context.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		session, err := s.authSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		actor := identity.Authenticated(session.UserID)
		c.Set(contextUserIDKey, session.UserID.String())
		c.Request = c.Request.WithContext(identity.WithIdentity(c.Request.Context(), actor))
		c.Next()
	}
}

func (s *Server) actor(c *gin.Context) identity.Identity {
	return identity.FromContext(c.Request.Context())
}

func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
