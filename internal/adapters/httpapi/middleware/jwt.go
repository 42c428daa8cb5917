package middleware

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

type viewerKey struct{}

// WithViewer stores the authenticated user ID on a request context.
func WithViewer(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, viewerKey{}, userID)
}

// ViewerFromCtx returns the authenticated user ID, if any.
func ViewerFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(viewerKey{}).(string)
	return id, ok && id != ""
}

// JWTAuthMiddleware rejects requests without a valid Bearer token and puts the
// token subject on the gin context as "userID".
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}

		c.Set("userID", claims.Subject)
		c.Request = c.Request.WithContext(WithViewer(c.Request.Context(), claims.Subject))
		c.Next()
	}
}

// ViewerMiddleware decodes a Bearer token when one is present and continues
// either way. Resolvers that need a viewer enforce it themselves, so public
// operations (register, login, profile reads) share the endpoint.
func ViewerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := parseToken(c.GetHeader("Authorization")); err == nil {
			c.Set("userID", claims.Subject)
			c.Request = c.Request.WithContext(WithViewer(c.Request.Context(), claims.Subject))
		}
		c.Next()
	}
}

func parseToken(header string) (*jwt.StandardClaims, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, jwt.NewValidationError("missing bearer token", jwt.ValidationErrorMalformed)
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.NewValidationError("unexpected signing method", jwt.ValidationErrorSignatureInvalid)
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.NewValidationError("invalid token", jwt.ValidationErrorClaimsInvalid)
	}

	return claims, nil
}
