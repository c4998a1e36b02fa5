// middleware/sentry.go
package middleware

import (
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// Sentry binds a per-request hub onto the request context, reports any
// panic before handing it back to gin's recovery, and captures errors the
// handlers attached to the context.
func Sentry() gin.HandlerFunc {
	return func(c *gin.Context) {
		hub := sentry.CurrentHub().Clone()
		hub.Scope().SetRequest(c.Request)
		c.Request = c.Request.WithContext(sentry.SetHubOnContext(c.Request.Context(), hub))

		defer func() {
			if r := recover(); r != nil {
				hub.RecoverWithContext(c.Request.Context(), r)
				panic(r)
			}
		}()

		c.Next()

		for _, ginErr := range c.Errors {
			hub.CaptureException(ginErr.Err)
		}
	}
}
