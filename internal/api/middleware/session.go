// Package middleware provides HTTP middleware for the Gin router.
//
// Authentication here is session-backed: the backend persists at most one
// session at a time, and the middleware resolves it on every request. There
// are no tokens — the reference environment has exactly one caller.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boleia/internal/domain/entities"
	"boleia/internal/services"
)

// AccountKey is the gin context key under which the session holder is
// stored for downstream handlers.
const AccountKey = "account"

// RequireSession resolves the persisted session and aborts with 401 when
// nobody is logged in.
func RequireSession(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, err := auth.Session(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		if account == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
			c.Abort()
			return
		}
		c.Set(AccountKey, account)
		c.Next()
	}
}

// RequireRole ensures the session holder has one of the allowed roles.
// Must be used after RequireSession in the chain.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := GetAccount(c)
		for _, role := range roles {
			if account.Role == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		c.Abort()
	}
}

// GetAccount retrieves the session holder set by RequireSession. Calling it
// outside a RequireSession chain is a programming error.
func GetAccount(c *gin.Context) *entities.Account {
	account, _ := c.Get(AccountKey)
	return account.(*entities.Account)
}
