package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/bisplatform/bisbackend/internal/app/models"
	"github.com/bisplatform/bisbackend/internal/app/models/dto"
	"github.com/bisplatform/bisbackend/internal/app/repositories"
	"github.com/bisplatform/bisbackend/internal/pkg/apperrors"
	"github.com/bisplatform/bisbackend/internal/pkg/auth"
	"github.com/bisplatform/bisbackend/internal/pkg/logger"
	"github.com/bisplatform/bisbackend/internal/pkg/validation"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.AuthData, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthData, error)
	Logout(ctx context.Context, refreshToken string) error
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Login authenticates a user by email and password and issues a token pair.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.AuthData, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !validation.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: malformed email", apperrors.ErrValidationFailed)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the account exists
		logger.Debug().Str("email", email).Msg("Login attempt for unknown email")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		logger.Debug().Int64("userID", user.ID).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken exchanges a valid refresh token for a new token pair. The
// used token is revoked so each refresh token works exactly once.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthData, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, _, err := s.tokenRepo.GetByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the refresh token.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return apperrors.ErrTokenInvalid
	}
	return s.tokenRepo.Revoke(ctx, refreshToken)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.AuthData, error) {
	role := models.RoleName(user.Role.Name)

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	expiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.Create(ctx, refreshToken, user.ID, expiry); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("role", string(role)).Msg("User authenticated")

	return &dto.AuthData{
		Token:            accessToken,
		RefreshToken:     refreshToken,
		FullName:         user.Name,
		Role:             string(role),
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}
