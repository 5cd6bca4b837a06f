// Package orgcontext scopes requests to the organization the designer tab
// belongs to. Authentication itself happens upstream; this only carries the
// resolved organization through the request context.
package orgcontext

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

type contextKey string

const orgIDKey contextKey = "org_id"

// Header carrying the organization, set by the upstream gateway.
const Header = "X-Org-Id"

// WithOrgID attaches the organization ID to the context.
func WithOrgID(ctx context.Context, orgID snowflake.ID) context.Context {
	return context.WithValue(ctx, orgIDKey, orgID)
}

// OrgID reads the organization ID from the context.
func OrgID(ctx context.Context) (snowflake.ID, bool) {
	value, ok := ctx.Value(orgIDKey).(snowflake.ID)
	return value, ok
}

// GinMiddleware resolves the organization header into the request context.
// Requests without a parseable organization pass through unscoped; handlers
// that require one reject them.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(Header))
		if raw != "" {
			if id, err := snowflake.ParseString(raw); err == nil {
				c.Request = c.Request.WithContext(WithOrgID(c.Request.Context(), id))
			}
		}
		c.Next()
	}
}
