package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

const (
	bearerPrefix = "Bearer "
	identityKey  = "identity"
)

// authenticate verifies the bearer token and attaches the resolved identity
// to the request before any ledger handler runs. Invalid and expired tokens
// get the same rejection so the two cases cannot be told apart from outside.
func (s *Server) authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, bearerPrefix)
	if !found || strings.TrimSpace(token) == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	identity, err := s.verifier.Verify(strings.TrimSpace(token))
	if err != nil {
		if errors.Is(err, customerr.ErrMissingCredential) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	c.Set(identityKey, identity)
	c.Next()
}

func identityFromContext(c *gin.Context) string {
	return c.GetString(identityKey)
}

func (s *Server) observe(c *gin.Context) {
	start := time.Now()
	c.Next()
	observeResponse(time.Since(start), c.Writer.Status(), c.Request.Method)
}

func (s *Server) trace(c *gin.Context) {
	span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), c.FullPath())
	defer span.Finish()

	c.Request = c.Request.WithContext(ctx)
	c.Next()

	if c.Writer.Status() >= http.StatusInternalServerError {
		ext.Error.Set(span, true)
	}
}
