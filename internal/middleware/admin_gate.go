package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// CredentialChecker decides whether a basic-auth pair may enter the admin
// area. It is injected so deployments can swap the policy without touching
// the gate itself.
type CredentialChecker func(username, password string) bool

// BcryptChecker compares against a configured username and bcrypt hash.
func BcryptChecker(username, passwordHash string) CredentialChecker {
	return func(user, pass string) bool {
		if subtle.ConstantTimeCompare([]byte(user), []byte(username)) != 1 {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(pass)) == nil
	}
}

// PlainChecker compares against a plain credential pair. Dev-only fallback
// for when no hash is configured.
func PlainChecker(username, password string) CredentialChecker {
	return func(user, pass string) bool {
		userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
		return userOK && passOK
	}
}

// AdminGate guards the admin route group with HTTP basic auth.
func AdminGate(check CredentialChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := parseBasicAuth(c.GetHeader("Authorization"))
		if !ok || !check(username, password) {
			c.Header("WWW-Authenticate", `Basic realm="Admin Area"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func parseBasicAuth(header string) (username, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false
	}
	return username, password, true
}
