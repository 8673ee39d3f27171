package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"memhub/internal/memes/domain/services"
	"memhub/internal/memes/domain/values"
	svc "memhub/internal/memes/ports/services"
	"memhub/pkg/logger"
)

const (
	methodGenerateAccessToken  = "GenerateAccessToken"
	methodGenerateRefreshToken = "GenerateRefreshToken"
	methodParseAccessToken     = "ParseAccessToken"
	methodParseRefreshToken    = "ParseRefreshToken"

	msgGeneratingToken = "generating token"
	msgTokenGenerated  = "token generated successfully"
	msgTokenExpired    = "token has expired"
	msgTokenCorrupted  = "token rejected"

	//nolint:gosec
	errSigningToken       = "error signing token"
	errCtxGeneratingToken = "generating token"
	errCtxParsingToken    = "parsing token"
)

// Ошибки конфигурации подписи.
var (
	ErrEmptySecret      = errors.New("empty signing secret")
	ErrInvalidAlgorithm = errors.New("invalid signing algorithm")
)

// TokenKey - секрет и время жизни одного вида токенов.
type TokenKey struct {
	Secret []byte
	TTL    time.Duration
}

// Claims - содержимое JWT. Subject - идентификатор пользователя, ID - идентификатор токена.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService выдает и проверяет токены HS256 с отдельными ключами для access и refresh.
type JWTService struct {
	access  TokenKey
	refresh TokenKey
	now     func() time.Time
}

// NewJWT создает сервис токенов.
func NewJWT(access, refresh TokenKey) *JWTService {
	return &JWTService{access: access, refresh: refresh, now: time.Now}
}

// GenerateAccessToken выдает access токен.
func (s *JWTService) GenerateAccessToken(ctx context.Context, subject services.TokenSubject) (*services.IssuedToken, error) {
	return s.generate(ctx, methodGenerateAccessToken, s.access, subject)
}

// GenerateRefreshToken выдает refresh токен.
func (s *JWTService) GenerateRefreshToken(ctx context.Context, subject services.TokenSubject) (*services.IssuedToken, error) {
	return s.generate(ctx, methodGenerateRefreshToken, s.refresh, subject)
}

// ParseAccessToken проверяет access токен.
func (s *JWTService) ParseAccessToken(ctx context.Context, token string) (*services.TokenClaims, error) {
	return s.parse(ctx, methodParseAccessToken, s.access, token)
}

// ParseRefreshToken проверяет refresh токен.
func (s *JWTService) ParseRefreshToken(ctx context.Context, token string) (*services.TokenClaims, error) {
	return s.parse(ctx, methodParseRefreshToken, s.refresh, token)
}

func (s *JWTService) generate(ctx context.Context, method string, key TokenKey, subject services.TokenSubject) (*services.IssuedToken, error) {
	log := logger.Log(ctx).With(zap.String("method", method), zap.String("user_id", subject.UserID.String()))
	log.Debug(ctx, msgGeneratingToken)

	if len(key.Secret) == 0 {
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingToken, ErrEmptySecret)
	}

	now := s.now()
	expiresAt := now.Add(key.TTL)
	tokenID := uuid.NewString()

	claims := Claims{
		Role: string(subject.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.UserID.String(),
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key.Secret)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGeneratingToken, err)
	}

	log.Debug(ctx, msgTokenGenerated, zap.Time("expires_at", expiresAt))
	return &services.IssuedToken{Token: signed, TokenID: tokenID, ExpiresAt: expiresAt}, nil
}

func (s *JWTService) parse(ctx context.Context, method string, key TokenKey, tokenString string) (*services.TokenClaims, error) {
	log := logger.Log(ctx).With(zap.String("method", method))

	var claims Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return key.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxParsingToken, services.ErrTokenExpired)
		}
		log.Debug(ctx, msgTokenCorrupted, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, services.ErrTokenCorrupted)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		log.Debug(ctx, msgTokenCorrupted, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, services.ErrTokenCorrupted)
	}
	role, err := values.ParseRole(claims.Role)
	if err != nil || claims.ID == "" {
		log.Debug(ctx, msgTokenCorrupted)
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, services.ErrTokenCorrupted)
	}

	return &services.TokenClaims{
		UserID:    userID,
		Role:      role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

var _ svc.TokenService = (*JWTService)(nil)
