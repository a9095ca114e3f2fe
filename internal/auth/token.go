package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/campuspulse/config"
	"github.com/lshigami/campuspulse/internal/model"
	"github.com/rs/zerolog/log"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UID          string     `json:"uid"`
	Username     string     `json:"username"`
	Role         model.Role `json:"role"`
	DepartmentID string     `json:"departmentId,omitempty"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		log.Warn().Msg("No JWT secret configured, falling back to the development secret")
		secret = config.DevJWTSecret
	}
	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *TokenManager) Sign(user *model.User) (string, error) {
	now := m.now()
	claims := Claims{
		UID:      user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	if user.DepartmentID != nil {
		claims.DepartmentID = *user.DepartmentID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) Parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if claims, ok := parsed.Claims.(*Claims); ok && parsed.Valid && claims.UID != "" {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
