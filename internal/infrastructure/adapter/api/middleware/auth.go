package middleware

import (
	"net/http"

	domainerr "github.com/cardworks/cashcard-service/internal/domain/error"
	coreport "github.com/cardworks/cashcard-service/internal/domain/port/core"
	"github.com/cardworks/cashcard-service/internal/domain/port/usecase"
	"github.com/cardworks/cashcard-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ownerContextKey is where the resolved owner identity lives in the gin context
const ownerContextKey = "auth.owner"

// SetOwner stores the resolved owner identity on the request context
func SetOwner(c *gin.Context, owner string) {
	c.Set(ownerContextKey, owner)
}

// OwnerFromContext returns the authenticated owner identity set by BasicAuth
func OwnerFromContext(c *gin.Context) (string, bool) {
	owner, ok := c.Get(ownerContextKey)
	if !ok {
		return "", false
	}
	name, ok := owner.(string)
	return name, ok && name != ""
}

// BasicAuth authenticates requests with HTTP Basic credentials and stores
// the resolved owner in the request context. Requests are rejected here,
// before any card operation runs.
func BasicAuth(resolver usecase.IdentityResolver, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			rejectUnauthenticated(c)
			return
		}

		owner, err := resolver.Resolve(c.Request.Context(), username, password)
		if err != nil {
			if domainerr.IsStorageError(err) {
				logger.Error("Credential lookup failed", map[string]any{
					"error": err.Error(),
				})
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(err),
					Message: "Internal server error",
				})
				return
			}
			rejectUnauthenticated(c)
			return
		}

		SetOwner(c, owner)
		c.Next()
	}
}

func rejectUnauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="cashcards"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.CodeUnauthenticated,
		Message: "Authentication required",
	})
}
