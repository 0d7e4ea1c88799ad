package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"quizdesk/config"
)

// AuthService issues and verifies admin session tokens. Sessions are
// HS256-signed JWTs with an expiry, never a decodable credential blob.
type AuthService interface {
	Login(userID, password string) (token string, err error)
	Verify(token string) (bool, error)
}

type authService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) AuthService {
	if cfg.Admin.JWTSecret == "" {
		log.Warn().Msg("ADMIN_JWT_SECRET is not set; admin login will fail until it is configured")
	}
	return &authService{cfg: cfg}
}

func (s *authService) Login(userID, password string) (string, error) {
	if s.cfg.Admin.JWTSecret == "" {
		return "", fmt.Errorf("admin auth not configured")
	}
	if userID != s.cfg.Admin.UserID || password != s.cfg.Admin.Password {
		return "", ErrUnauthorized
	}

	ttl := time.Duration(s.cfg.Admin.TokenTTLHours) * time.Hour
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Admin.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	log.Info().Str("admin", userID).Msg("Admin logged in")
	return signed, nil
}

func (s *authService) Verify(tokenString string) (bool, error) {
	if s.cfg.Admin.JWTSecret == "" {
		return false, nil
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.Admin.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return false, nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false, nil
	}
	sub, _ := claims["sub"].(string)
	return sub == s.cfg.Admin.UserID, nil
}
