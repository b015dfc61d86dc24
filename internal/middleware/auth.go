package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-backoffice/internal/auth"
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/logger"
	"github.com/BruksfildServices01/salon-backoffice/internal/policy"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextSubject  = "subject"
	ContextClaims   = "claims"
)

// AccountLookup reports the stored role and active flag of a user.
type AccountLookup interface {
	Account(ctx context.Context, userID uint) (role string, active bool, err error)
}

// Authenticate resolves the caller from an optional bearer token. Requests without
// an Authorization header continue as anonymous; a header that is present but
// unusable is rejected. With accounts set, role and active flag come from storage
// instead of the token, so demotions and deactivations apply immediately.
func Authenticate(issuer *auth.Issuer, blacklist auth.Blacklist, accounts AccountLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(ContextSubject, policy.Anonymous())
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			httperr.Unauthorized(c, "invalid_token", "invalid authorization header")
			return
		}

		claims, err := issuer.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "invalid or expired token")
			return
		}

		revoked, err := blacklist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			httperr.Respond(c, logger.FromGin(c), err)
			return
		}
		if revoked {
			httperr.Unauthorized(c, "token_revoked", "token has been revoked")
			return
		}

		userID, _ := claims.UserID()
		role := claims.Role

		if accounts != nil {
			current, active, err := accounts.Account(c.Request.Context(), userID)
			switch {
			case errors.Is(err, auth.ErrUnknownAccount):
				httperr.Unauthorized(c, "invalid_token", "user no longer exists")
				return
			case err != nil:
				httperr.Respond(c, logger.FromGin(c), err)
				return
			case !active:
				httperr.Respond(c, logger.FromGin(c), httperr.ErrInactiveUser)
				return
			}
			role = current
		}

		subject := policy.Subject{UserID: userID, Role: policy.Role(role)}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserRole, role)
		c.Set(ContextSubject, subject)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// SubjectFrom returns the caller resolved by Authenticate, anonymous if none.
func SubjectFrom(c *gin.Context) policy.Subject {
	if v, ok := c.Get(ContextSubject); ok {
		if s, ok := v.(policy.Subject); ok {
			return s
		}
	}
	return policy.Anonymous()
}

func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}

// RequireAuth rejects anonymous callers on routes outside the resource policy.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SubjectFrom(c).Authenticated() {
			httperr.Unauthorized(c, "authentication_required", "authentication credentials were not provided")
			return
		}
		c.Next()
	}
}
