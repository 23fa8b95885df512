package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const (
	userAccountIDKey = "userAccountID"
	sessionDuration  = 24 * time.Hour
)

type sessionClaims struct {
	UserAccountID string `json:"userAccountID"`
	Email         string `json:"email"`
	jwt.StandardClaims
}

func issueSessionToken(secret string, userAccountID uuid.UUID, email string) (string, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		UserAccountID: userAccountID.String(),
		Email:         email,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(sessionDuration).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func parseSessionToken(secret string, tokenStr string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if time.Now().UTC().Unix() > claims.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return claims, nil
}

// authMiddleware rejects requests without a valid bearer token and stores
// the caller's account id in the gin context for resolvers.
func authMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, 401)
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims, err := parseSessionToken(secret, tokenStr)
		if err != nil {
			returnErrorJsonCode(err, c, 401)
			return
		}

		userAccountID, err := uuid.Parse(claims.UserAccountID)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid subject in token: %w", err), c, 401)
			return
		}

		c.Set(userAccountIDKey, userAccountID)
		c.Next()
	}
}
