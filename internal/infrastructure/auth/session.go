package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/NoahAndreani/NBA-Projet-compensatoire/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Common errors
var (
	ErrInvalidSession = errors.New("invalid session token")
	ErrExpiredSession = errors.New("session has expired")
)

// SessionClaims represents the claims carried by a session cookie token
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// SessionService issues and validates the signed tokens backing browser
// sessions. A session exists only as a cookie on the client; nothing is
// persisted server-side, so logout simply clears the cookie.
type SessionService struct {
	secret     []byte
	ttl        time.Duration
	issuer     string
	cookieName string
	secure     bool
}

// NewSessionService creates a new session service
func NewSessionService(cfg config.SessionConfig, issuer string) *SessionService {
	return &SessionService{
		secret:     []byte(cfg.Secret),
		ttl:        cfg.TTL,
		issuer:     issuer,
		cookieName: cfg.CookieName,
		secure:     cfg.Secure,
	}
}

// Issue creates a signed session token for the given user
func (s *SessionService) Issue(userID uint, username string) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   userID,
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and validates a session token
func (s *SessionService) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredSession
		}
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}
	if claims.UserID == 0 {
		return nil, ErrInvalidSession
	}

	return claims, nil
}

// CookieName returns the name of the session cookie
func (s *SessionService) CookieName() string {
	return s.cookieName
}

// WriteCookie attaches the session token to the response
func (s *SessionService) WriteCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, token, int(s.ttl.Seconds()), "/", "", s.secure, true)
}

// ClearCookie removes the session cookie, ending the session
func (s *SessionService) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, "", -1, "/", "", s.secure, true)
}

// ReadCookie extracts the raw session token from the request, if present
func (s *SessionService) ReadCookie(c *gin.Context) (string, bool) {
	token, err := c.Cookie(s.cookieName)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}
