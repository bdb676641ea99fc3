// Package csrf выдаёт и проверяет токены форм создания.
// Токен это HS256 JWT, привязанный к идентификатору сессии.
package csrf

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	FieldName  = "csrf_token"
	HeaderName = "X-CSRF-Token"
)

var ErrInvalidToken = errors.New("csrf token is missing or invalid")

type claims struct {
	Session string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager подписывает и проверяет токены. Нулевой TTL означает час.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue возвращает токен для сессии sessionID.
func (m *Manager) Issue(sessionID string) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Session: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign csrf token: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись, срок действия и совпадение сессии.
func (m *Manager) Verify(sessionID, raw string) error {
	if raw == "" || sessionID == "" {
		return ErrInvalidToken
	}
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.Session != sessionID {
		return ErrInvalidToken
	}
	return nil
}

// Middleware отклоняет POST без корректного токена. Токен берётся из поля формы
// csrf_token или заголовка X-CSRF-Token. sessionID извлекает сессию запроса,
// reject отвечает клиенту при ошибке.
func (m *Manager) Middleware(sessionID func(*gin.Context) string, reject func(*gin.Context, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		raw := c.GetHeader(HeaderName)
		if raw == "" {
			raw = c.PostForm(FieldName)
		}
		if err := m.Verify(sessionID(c), raw); err != nil {
			reject(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
