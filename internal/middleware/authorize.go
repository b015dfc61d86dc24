package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/policy"
)

// DenialRecorder is notified about every rejected request (metrics).
type DenialRecorder interface {
	PolicyDenied(resource, action, decision string)
}

// Authorize evaluates table for (resource, action) before the handler runs.
func Authorize(table policy.Table, resource policy.Resource, action policy.Action, rec DenialRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := table.Decide(SubjectFrom(c), resource, action)
		if decision == policy.Allow {
			c.Next()
			return
		}

		if rec != nil {
			rec.PolicyDenied(string(resource), string(action), decision.String())
		}

		if decision == policy.Unauthenticated {
			httperr.Unauthorized(c, "authentication_required", "authentication credentials were not provided")
			return
		}
		httperr.Forbidden(c, "forbidden", "you do not have permission to perform this action")
	}
}
