package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/nimbushr/nimbus-backend-go/internal/domain/auth"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/user"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/credentials"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/jwt"
)

// The code space is small, so a generated employee code can hit an
// existing row; the unique constraint reports it and we draw again.
const employeeCodeAttempts = 5

type authServiceImpl struct {
	userRepo         user.UserRepository
	refreshTokenRepo auth.RefreshTokenRepository
	jwtService       jwt.Service
}

func NewAuthService(
	userRepo user.UserRepository,
	refreshTokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &authServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
	}
}

// Login implements auth.AuthService. The identifier may be an email or
// an employee code. An unknown identifier is reported as not found; a
// wrong password for a known user as invalid credentials.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	u, err := s.userRepo.GetByIdentifier(ctx, req.Identifier)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

// RegisterAdmin implements auth.AuthService. Only admin accounts are
// created here; employees arrive through join-request approval.
func (s *authServiceImpl) RegisterAdmin(ctx context.Context, req auth.RegisterAdminRequest) (auth.TokenResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if exists {
		return auth.TokenResponse{}, auth.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	var created user.User
	for attempt := 0; attempt < employeeCodeAttempts; attempt++ {
		code, err := credentials.NewEmployeeCode()
		if err != nil {
			return auth.TokenResponse{}, err
		}

		created, err = s.userRepo.Create(ctx, user.User{
			EmployeeCode: code,
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         user.RoleAdmin,
			Name:         req.Name,
		})
		if err == nil {
			break
		}
		if errors.Is(err, user.ErrEmployeeCodeExists) {
			continue
		}
		if errors.Is(err, user.ErrEmailExists) {
			return auth.TokenResponse{}, auth.ErrEmailAlreadyExists
		}
		return auth.TokenResponse{}, err
	}
	if created.ID == "" {
		return auth.TokenResponse{}, user.ErrEmployeeCodeExists
	}

	slog.Info("admin registered", "user_id", created.ID, "email", created.Email)

	return s.issueTokens(ctx, created)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role, u.IsTempPassword)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	if err := s.refreshTokenRepo.Create(ctx, u.ID, refreshToken, refreshExp); err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExp,
		User:                  user.ToResponse(u),
		MustChangePassword:    u.IsTempPassword,
	}, nil
}

// RefreshToken implements auth.AuthService. The token must carry the
// refresh type, verify against the signing key, and not be revoked.
func (s *authServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	token, err := jwtauth.VerifyToken(s.jwtService.JWTAuth(), req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	userID, revoked, err := s.refreshTokenRepo.IsRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}
	if revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role, u.IsTempPassword)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: accessExp,
	}, nil
}

// Logout implements auth.AuthService.
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.refreshTokenRepo.Revoke(ctx, refreshToken)
}

// ChangePassword implements auth.AuthService.
func (s *authServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, actor.UserID, string(hash)); err != nil {
		return err
	}

	slog.Info("password changed", "user_id", actor.UserID)
	return nil
}
