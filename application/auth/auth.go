package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/inventory-service/cmd/config"
	redisrepo "github.com/muhammadheryan/inventory-service/repository/redis"
)

// AuthApp validates bearer tokens issued by the identity service. The actor recorded on
// movements is the token subject.
type AuthApp interface {
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}

type authAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.RedisRepository
}

func NewAuthApp(config *config.Config, redisRepo redisrepo.RedisRepository) AuthApp {
	return &authAppImpl{
		config:    config,
		redisRepo: redisRepo,
	}
}

func (s *authAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	// Parse token
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}

	subject := claims.Subject
	if subject == "" {
		return "", fmt.Errorf("token missing subject")
	}

	jti := claims.ID
	if jti == "" {
		return "", fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	sessionSubject, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return "", fmt.Errorf("session lookup failed: %w", err)
	}
	if sessionSubject != subject {
		return "", fmt.Errorf("token does not match session")
	}

	return subject, nil
}
