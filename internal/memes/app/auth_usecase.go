package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"memhub/internal/memes/domain/entities"
	"memhub/internal/memes/domain/services"
	"memhub/internal/memes/domain/values"
	"memhub/internal/memes/ports/api"
	"memhub/internal/memes/ports/repositories"
	svc "memhub/internal/memes/ports/services"
	"memhub/pkg/logger"
)

const (
	methodRegister      = "Register"
	methodLogin         = "Login"
	methodRefreshTokens = "RefreshTokens"
	methodLogout        = "Logout"
	methodAuthenticate  = "Authenticate"

	msgUserRegistered      = "user registered"
	msgLoginNonExistent    = "login attempt with non-existent login"
	msgInvalidPasswordAuth = "invalid password provided"
	msgUserLoggedIn        = "user logged in"
	msgInvalidToken        = "invalid token"
	msgRevokedTokenAttempt = "attempt to use revoked token"
	msgTokensRefreshed     = "tokens refreshed"
	msgUserLoggedOut       = "user logged out"

	msgErrVerifyingPassword   = "error verifying password"
	msgErrCheckingRevocation  = "failed to check token revocation"
	msgErrRevokingToken       = "failed to revoke token"
	msgErrGenerateAccessToken = "failed to generate access token"
	msgErrGenerateRefresh     = "failed to generate refresh token"

	errCtxInvalidCredentials     = "invalid credentials"
	errCtxVerifyingPassword      = "verifying password"
	errCtxParsingToken           = "parsing token"
	errCtxCheckingRevocation     = "checking token revocation"
	errCtxRevokingToken          = "revoking token"
	errCtxGeneratingAccessToken  = "generating access token"
	errCtxGeneratingRefreshToken = "generating refresh token"
)

// AuthUseCaseImpl реализует api.AuthUseCase.
type AuthUseCaseImpl struct {
	builder     *userBuilder
	userRepo    repositories.UserRepository
	denylist    repositories.TokenDenylist
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает сервис аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	denylist repositories.TokenDenylist,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	ids svc.IDGenerator,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		builder:     &userBuilder{userRepo: userRepo, passwordSvc: passwordSvc, ids: ids},
		userRepo:    userRepo,
		denylist:    denylist,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Register создает пользователя с ролью USER и выдает ему пару токенов.
func (a *AuthUseCaseImpl) Register(ctx context.Context, input services.UserCreate) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("login", input.Login))

	user, err := a.builder.create(ctx, log, input, values.RoleUser)
	if err != nil {
		return nil, err
	}
	log.Info(ctx, msgUserRegistered, zap.String("id", user.ID().String()))

	return a.generateTokenPair(ctx, log, user)
}

// Login проверяет пароль и выдает пару токенов.
func (a *AuthUseCaseImpl) Login(ctx context.Context, login, password string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("login", login))

	userLogin, err := values.NewLogin(login)
	if err != nil {
		return nil, err
	}

	user, err := a.userRepo.GetByLogin(ctx, userLogin)
	if err != nil {
		log.Error(ctx, msgErrFindUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	if user == nil {
		log.Debug(ctx, msgLoginNonExistent)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrUserNotFound)
	}

	ok, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash().Value())
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !ok {
		log.Debug(ctx, msgInvalidPasswordAuth)
		return nil, fmt.Errorf("%s: %w", errCtxInvalidCredentials, services.ErrWrongPassword)
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("id", user.ID().String()))
	return a.generateTokenPair(ctx, log, user)
}

// RefreshTokens отзывает переданный refresh токен и выдает новую пару
// с актуальной ролью пользователя.
func (a *AuthUseCaseImpl) RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	log := logger.Log(ctx).With(zap.String("method", methodRefreshTokens))

	claims, err := a.activeRefreshClaims(ctx, log, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := findUserByID(ctx, log, a.userRepo, claims.UserID)
	if err != nil {
		return nil, err
	}

	if err := a.revoke(ctx, log, claims); err != nil {
		return nil, err
	}

	pair, err := a.generateTokenPair(ctx, log, user)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgTokensRefreshed, zap.String("user_id", claims.UserID.String()))
	return pair, nil
}

// Logout отзывает refresh токен до истечения его срока.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, refreshToken string) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout))

	claims, err := a.activeRefreshClaims(ctx, log, refreshToken)
	if err != nil {
		return err
	}

	if err := a.revoke(ctx, log, claims); err != nil {
		return err
	}

	log.Info(ctx, msgUserLoggedOut, zap.String("user_id", claims.UserID.String()))
	return nil
}

// Authenticate проверяет access токен и возвращает его содержимое.
func (a *AuthUseCaseImpl) Authenticate(ctx context.Context, accessToken string) (*services.TokenClaims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))

	claims, err := a.tokenSvc.ParseAccessToken(ctx, accessToken)
	if err != nil {
		log.Debug(ctx, msgInvalidToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, err)
	}
	return claims, nil
}

func (a *AuthUseCaseImpl) activeRefreshClaims(ctx context.Context, log *logger.Logger, token string) (*services.TokenClaims, error) {
	claims, err := a.tokenSvc.ParseRefreshToken(ctx, token)
	if err != nil {
		log.Debug(ctx, msgInvalidToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, err)
	}

	revoked, err := a.denylist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		log.Error(ctx, msgErrCheckingRevocation, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingRevocation, err)
	}
	if revoked {
		log.Warn(ctx, msgRevokedTokenAttempt, zap.String("token_id", claims.TokenID))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingRevocation, services.ErrTokenRevoked)
	}
	return claims, nil
}

// revoke забирает токен себе. Если другой запрос уже отозвал его, возвращается ErrTokenRevoked.
func (a *AuthUseCaseImpl) revoke(ctx context.Context, log *logger.Logger, claims *services.TokenClaims) error {
	claimed, err := a.denylist.Revoke(ctx, claims.TokenID, claims.ExpiresAt)
	if err != nil {
		log.Error(ctx, msgErrRevokingToken, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxRevokingToken, err)
	}
	if !claimed {
		log.Warn(ctx, msgRevokedTokenAttempt, zap.String("token_id", claims.TokenID))
		return fmt.Errorf("%s: %w", errCtxRevokingToken, services.ErrTokenRevoked)
	}
	return nil
}

func (a *AuthUseCaseImpl) generateTokenPair(ctx context.Context, log *logger.Logger, user *entities.User) (*services.TokenPair, error) {
	subject := services.TokenSubject{UserID: user.ID().Value(), Role: user.Role()}

	access, err := a.tokenSvc.GenerateAccessToken(ctx, subject)
	if err != nil {
		log.Error(ctx, msgErrGenerateAccessToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingAccessToken, err)
	}

	refresh, err := a.tokenSvc.GenerateRefreshToken(ctx, subject)
	if err != nil {
		log.Error(ctx, msgErrGenerateRefresh, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingRefreshToken, err)
	}

	return &services.TokenPair{
		AccessToken:      access.Token,
		RefreshToken:     refresh.Token,
		TokenType:        services.TokenTypeBearer,
		AccessExpiresAt:  access.ExpiresAt,
		RefreshExpiresAt: refresh.ExpiresAt,
	}, nil
}
