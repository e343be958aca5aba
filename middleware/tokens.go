package middleware

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Session cookie names.
const (
	SessionCookie = "agrodoc_session"
	RefreshCookie = "agrodoc_refresh"
)

// Cookie lifetimes in seconds.
const (
	SessionCookieMaxAge = 900    // 15 minutes
	RefreshCookieMaxAge = 604800 // 7 days
)

// TokenPair holds a freshly minted access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SessionClaims is the identity carried in a session token.
type SessionClaims struct {
	UserID         string
	Email          string
	EmailConfirmed bool
}

// GenerateTokenPair creates a new access and refresh token pair.
func GenerateTokenPair(userID, email string, confirmed bool) (*TokenPair, error) {
	accessToken, err := generateToken(userID, email, confirmed, 15*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := generateToken(userID, email, confirmed, 7*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{accessToken, refreshToken}, nil
}

func generateToken(userID, email string, confirmed bool, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   userID,
		"email":     email,
		"confirmed": confirmed,
		"exp":       time.Now().Add(duration).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// ParseSessionToken verifies a token and extracts the session claims.
func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	confirmed, _ := claims["confirmed"].(bool)
	if userID == "" {
		return nil, fmt.Errorf("token missing user_id")
	}

	return &SessionClaims{UserID: userID, Email: email, EmailConfirmed: confirmed}, nil
}
