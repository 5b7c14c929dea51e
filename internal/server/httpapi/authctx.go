// Package httpapi exposes the repositories over an HTTP JSON API. This is
// the outermost boundary: every failure collapses here to "not found" for
// reads and ok=false for writes, so clients cannot tell a missing document
// from a forbidden one or from a remote failure.
package httpapi

import "github.com/gin-gonic/gin"

const ownerIDKey = "mapmo.ownerID"

// WithOwnerID stores the authenticated owner id on the request context.
func WithOwnerID(c *gin.Context, id string) {
	c.Set(ownerIDKey, id)
}

// OwnerIDFromCtx fetches the authenticated owner id from the request context.
func OwnerIDFromCtx(c *gin.Context) (string, bool) {
	v, ok := c.Get(ownerIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
