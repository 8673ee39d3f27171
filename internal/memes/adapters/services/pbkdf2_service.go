package services

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/pbkdf2"

	svc "memhub/internal/memes/ports/services"
	"memhub/pkg/logger"
)

const (
	methodHash   = "Hash"
	methodVerify = "Verify"

	msgHashingPassword   = "hashing password"
	msgVerifyingPassword = "verifying password"
)

// Ошибки настройки хеширования.
var (
	ErrUnknownHashAlgorithm = errors.New("unknown hash algorithm")
	ErrEmptySalt            = errors.New("empty salt")
	ErrInvalidIterations    = errors.New("iterations must be positive")
	ErrEmptyPassword        = errors.New("empty password")
)

// PBKDF2Service хеширует пароли PBKDF2-HMAC с общей солью и числом итераций.
// Результат детерминирован и кодируется в hex.
type PBKDF2Service struct {
	hashFn     func() hash.Hash
	keyLen     int
	salt       []byte
	iterations int
}

// NewPBKDF2 создает сервис для алгоритма sha256 или sha512.
func NewPBKDF2(algorithm, salt string, iterations int) (*PBKDF2Service, error) {
	var (
		hashFn func() hash.Hash
		keyLen int
	)
	switch strings.ToLower(algorithm) {
	case "sha256":
		hashFn, keyLen = sha256.New, sha256.Size
	case "sha512":
		hashFn, keyLen = sha512.New, sha512.Size
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHashAlgorithm, algorithm)
	}
	if salt == "" {
		return nil, ErrEmptySalt
	}
	if iterations < 1 {
		return nil, ErrInvalidIterations
	}
	return &PBKDF2Service{hashFn: hashFn, keyLen: keyLen, salt: []byte(salt), iterations: iterations}, nil
}

// Hash возвращает hex-представление ключа PBKDF2.
func (s *PBKDF2Service) Hash(ctx context.Context, password string) (string, error) {
	logger.Log(ctx).With(zap.String("method", methodHash)).Debug(ctx, msgHashingPassword)

	if password == "" {
		return "", ErrEmptyPassword
	}
	return s.derive(password), nil
}

// Verify сравнивает хеш пароля с сохраненным за постоянное время.
func (s *PBKDF2Service) Verify(ctx context.Context, password, hashed string) (bool, error) {
	logger.Log(ctx).With(zap.String("method", methodVerify)).Debug(ctx, msgVerifyingPassword)

	computed := s.derive(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashed)) == 1, nil
}

func (s *PBKDF2Service) derive(password string) string {
	key := pbkdf2.Key([]byte(password), s.salt, s.iterations, s.keyLen, s.hashFn)
	return hex.EncodeToString(key)
}

var _ svc.PasswordService = (*PBKDF2Service)(nil)
