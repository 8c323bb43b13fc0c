package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Slawuu/Company-manager/internal/authz"
	identityerrors "github.com/Slawuu/Company-manager/internal/identity/errors"
	"github.com/Slawuu/Company-manager/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const principalKey = "principal"

// AuthMiddleware validates the JWT and resolves the Principal once per
// request. Handlers read it back with Principal(c) and pass it explicitly
// into services; nothing downstream touches the token again.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := identityerrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = identityerrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		accountIDStr, ok := claims["account_id"].(string)
		if !ok || accountIDStr == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Account ID not found in token", nil)
			c.Abort()
			return
		}
		accountID, err := uuid.Parse(accountIDStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid account ID in token", nil)
			c.Abort()
			return
		}

		roleStr, _ := claims["role"].(string)
		role, err := authz.ParseRole(roleStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid role in token", nil)
			c.Abort()
			return
		}

		p := authz.Principal{
			AccountID: accountID,
			Role:      role,
		}
		if employeeIDStr, ok := claims["employee_id"].(string); ok && employeeIDStr != "" {
			if employeeID, err := uuid.Parse(employeeIDStr); err == nil {
				p.EmployeeID = &employeeID
			}
		}

		c.Set("account_id", accountIDStr)
		c.Set(principalKey, p)
		c.Next()
	}
}

// Principal returns the principal resolved by AuthMiddleware.
func Principal(c *gin.Context) (authz.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return authz.Principal{}, false
	}
	p, ok := v.(authz.Principal)
	return p, ok
}

// SetPrincipal is exported for handler tests.
func SetPrincipal(c *gin.Context, p authz.Principal) {
	c.Set(principalKey, p)
	c.Set("account_id", p.AccountID.String())
}
