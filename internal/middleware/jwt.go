package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUsername = "username"
	CtxName     = "name"

	renewWithin = 24 * time.Hour
)

// Tokens signs and checks manager bearer tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed HS256 token for the manager.
func (t *Tokens) Issue(username, name string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"name": name,
		"exp":  t.now().Add(t.ttl).Unix(),
	}).SignedString(t.secret)
}

// JWTAuth rejects requests without a valid bearer token. A token with less
// than a day left is renewed through the X-New-Token response header.
func (t *Tokens) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		token, err := jwt.Parse(auth[7:], func(*jwt.Token) (any, error) {
			return t.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		claims := token.Claims.(jwt.MapClaims)
		username, _ := claims["sub"].(string)
		name, _ := claims["name"].(string)
		c.Set(CtxUsername, username)
		c.Set(CtxName, name)

		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			if exp.Sub(t.now()) < renewWithin {
				if renewed, err := t.Issue(username, name); err == nil {
					c.Header("X-New-Token", renewed)
				}
			}
		}

		c.Next()
	}
}
