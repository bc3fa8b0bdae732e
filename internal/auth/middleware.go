package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/celestine-lau/enactus-app/internal/database/models"
	apperrors "github.com/celestine-lau/enactus-app/internal/errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserResolver looks up the registered user behind a token's email
type UserResolver interface {
	GetByEmail(email string) (*models.User, error)
}

// Middleware provides JWT authentication middleware
type Middleware struct {
	service  *Service
	resolver UserResolver
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service, resolver UserResolver) *Middleware {
	return &Middleware{service: service, resolver: resolver}
}

// RequireAuth validates the bearer token and resolves the caller against the
// user table. Privilege always comes from the current database row, not from
// the token, so a demotion takes effect on the caller's next request.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, apperrors.ErrMissingAuthorization)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abortUnauthorized(c, apperrors.ErrMissingAuthorization)
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			abortUnauthorized(c, apperrors.ErrInvalidOrExpiredToken)
			return
		}

		user, err := m.resolver.GetByEmail(claims.Email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortUnauthorized(c, apperrors.ErrNotRegistered)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"code":    apperrors.CodeInternal,
				"data":    "internal server error",
			})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("email", user.Email)
		c.Set("privilege", user.Privilege)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequirePrivilege rejects callers below the given privilege level. It must
// run after RequireAuth.
func (m *Middleware) RequirePrivilege(minimum int) gin.HandlerFunc {
	return func(c *gin.Context) {
		privilege, ok := GetPrivilege(c)
		if !ok {
			abortUnauthorized(c, apperrors.ErrMissingAuthorization)
			return
		}
		if privilege < minimum {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"code":    apperrors.CodeInsufficientPrivilege,
				"data":    apperrors.ErrInsufficientPrivilege.Error(),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"code":    apperrors.Code(err),
		"data":    err.Error(),
	})
	c.Abort()
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := userID.(uint)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetPrivilege is a helper function to extract the caller's privilege from
// context
func GetPrivilege(c *gin.Context) (int, bool) {
	privilege, exists := c.Get("privilege")
	if !exists {
		return models.PrivilegeNone, false
	}
	level, ok := privilege.(int)
	return level, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*Claims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}
	authClaims, ok := claims.(*Claims)
	return authClaims, ok
}
