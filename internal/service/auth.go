package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"praxis/config"
	"praxis/internal/domain"
	"praxis/internal/repository"
	"praxis/pkg/auth"
)

type adminClaims struct {
	jwt.RegisteredClaims
	AdminID string `json:"admin_id"`
}

type AuthServiceImpl struct {
	adminRepo repository.AdminRepository
	jwtConfig config.JWTConfig
	logger    *zap.Logger
	now       func() time.Time
}

func NewAuthService(adminRepo repository.AdminRepository, jwtConfig config.JWTConfig, logger *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		adminRepo: adminRepo,
		jwtConfig: jwtConfig,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, dto domain.LoginRequest) (*domain.LoginResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("login attempt for unknown admin", zap.String("email", dto.Email))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("loading admin: %w", err)
	}

	ok, err := auth.VerifyPassword(dto.Password, admin.PasswordHash)
	if err != nil {
		s.logger.Error("password verification failed", zap.Error(err))
		return nil, domain.ErrInvalidCredentials
	}
	if !ok {
		s.logger.Warn("wrong password for admin", zap.String("email", dto.Email))
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	claims := adminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.AccessTokenTTL)),
		},
		AdminID: admin.ID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.SigningKey))
	if err != nil {
		s.logger.Error("failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("signing token: %w", err)
	}

	s.logger.Info("admin logged in", zap.String("adminID", admin.ID))

	return &domain.LoginResponse{
		AccessToken: signed,
		ExpiresIn:   int64(s.jwtConfig.AccessTokenTTL.Seconds()),
	}, nil
}

// ParseToken validates an access token and returns the admin id.
func (s *AuthServiceImpl) ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &adminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.SigningKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*adminClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}

	return claims.AdminID, nil
}
