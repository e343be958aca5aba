package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// publicRoutes are the auth-flow pages reachable without a session.
var publicRoutes = map[string]bool{
	"/login":           true,
	"/signup":          true,
	"/forgot-password": true,
	"/reset-password":  true,
	"/confirm-email":   true,
}

// SessionGuard resolves the caller's identity from cookies before every page
// request. Anonymous callers on protected routes are sent to the login page;
// callers with unconfirmed emails get their session terminated. bypass skips
// everything for local/preview environments.
func SessionGuard(bypass bool, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if bypass {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		claims := resolveSession(c, logger)

		if claims == nil {
			if publicRoutes[path] {
				c.Next()
				return
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if !claims.EmailConfirmed {
			if publicRoutes[path] {
				c.Next()
				return
			}
			clearSessionCookies(c)
			c.Redirect(http.StatusFound, "/login?message=confirm-email")
			c.Abort()
			return
		}

		if path == "/login" {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}

// resolveSession parses the access cookie; on failure it tries the refresh
// cookie, minting and setting a fresh pair so the renewed session propagates
// with the response.
func resolveSession(c *gin.Context, logger *zap.Logger) *SessionClaims {
	if access, err := c.Cookie(SessionCookie); err == nil {
		if claims, err := ParseSessionToken(access); err == nil {
			return claims
		}
	}

	refresh, err := c.Cookie(RefreshCookie)
	if err != nil {
		return nil
	}
	claims, err := ParseSessionToken(refresh)
	if err != nil {
		return nil
	}

	pair, err := GenerateTokenPair(claims.UserID, claims.Email, claims.EmailConfirmed)
	if err != nil {
		logger.Warn("Failed to refresh session", zap.Error(err))
		return nil
	}
	SetSessionCookies(c, pair)

	return claims
}

// SetSessionCookies attaches a token pair to the response.
func SetSessionCookies(c *gin.Context, pair *TokenPair) {
	c.SetCookie(SessionCookie, pair.AccessToken, SessionCookieMaxAge, "/", "", false, true)
	c.SetCookie(RefreshCookie, pair.RefreshToken, RefreshCookieMaxAge, "/", "", false, true)
}

func clearSessionCookies(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.SetCookie(RefreshCookie, "", -1, "/", "", false, true)
}

// ClearSessionCookies removes both session cookies (logout).
func ClearSessionCookies(c *gin.Context) {
	clearSessionCookies(c)
}
