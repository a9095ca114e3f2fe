package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/lshigami/campuspulse/config"
	"github.com/lshigami/campuspulse/internal/model"
)

func newManager(secret string, ttl time.Duration) *TokenManager {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = secret
	cfg.Auth.TokenTTL = ttl
	return NewTokenManager(cfg)
}

func TestSignAndParse(t *testing.T) {
	m := newManager("s3cret", time.Hour)
	dept := "cs"
	tok, err := m.Sign(&model.User{ID: "u1", Username: "R001", Role: model.RoleStudent, DepartmentID: &dept})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	c, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.UID != "u1" || c.Role != model.RoleStudent || c.DepartmentID != "cs" || c.Username != "R001" {
		t.Fatalf("claims = %+v", c)
	}
}

func TestParseRejectsForeignSecret(t *testing.T) {
	tok, _ := newManager("a", time.Hour).Sign(&model.User{ID: "u1", Role: model.RoleAdmin})
	if _, err := newManager("b", time.Hour).Parse(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParseRejectsExpired(t *testing.T) {
	m := newManager("a", time.Minute)
	issued := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issued }
	tok, err := m.Sign(&model.User{ID: "u1", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	m.now = time.Now
	if _, err := m.Parse(tok); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expiry to be rejected, got %v", err)
	}
}
