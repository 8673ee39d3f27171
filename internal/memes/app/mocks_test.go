package app_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"memhub/internal/memes/domain/entities"
	"memhub/internal/memes/domain/services"
	"memhub/internal/memes/domain/values"
)

type mockMemRepository struct {
	mock.Mock
}

func (m *mockMemRepository) Add(ctx context.Context, mem *entities.Mem) (*entities.Mem, error) {
	args := m.Called(ctx, mem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Mem), args.Error(1)
}

func (m *mockMemRepository) Update(ctx context.Context, mem *entities.Mem) (*entities.Mem, error) {
	args := m.Called(ctx, mem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Mem), args.Error(1)
}

func (m *mockMemRepository) GetByID(ctx context.Context, id values.Identifier) (*entities.Mem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Mem), args.Error(1)
}

func (m *mockMemRepository) GetAll(ctx context.Context) ([]*entities.Mem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Mem), args.Error(1)
}

func (m *mockMemRepository) DeleteByID(ctx context.Context, id values.Identifier) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMemRepository) List(ctx context.Context, page values.Page) ([]*entities.Mem, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Mem), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Add(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id values.Identifier) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) GetAll(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *mockUserRepository) DeleteByID(ctx context.Context, id values.Identifier) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepository) GetByLogin(ctx context.Context, login values.Login) (*entities.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) GetByRole(ctx context.Context, role values.Role) ([]*entities.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

type mockImageRepository struct {
	mock.Mock
}

func (m *mockImageRepository) Save(ctx context.Context, path string, data []byte) error {
	return m.Called(ctx, path, data).Error(0)
}

func (m *mockImageRepository) Get(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockImageRepository) Delete(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

type mockTokenDenylist struct {
	mock.Mock
}

func (m *mockTokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) (bool, error) {
	args := m.Called(ctx, tokenID, expiresAt)
	return args.Bool(0), args.Error(1)
}

func (m *mockTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateAccessToken(ctx context.Context, subject services.TokenSubject) (*services.IssuedToken, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.IssuedToken), args.Error(1)
}

func (m *mockTokenService) GenerateRefreshToken(ctx context.Context, subject services.TokenSubject) (*services.IssuedToken, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.IssuedToken), args.Error(1)
}

func (m *mockTokenService) ParseAccessToken(ctx context.Context, token string) (*services.TokenClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenClaims), args.Error(1)
}

func (m *mockTokenService) ParseRefreshToken(ctx context.Context, token string) (*services.TokenClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenClaims), args.Error(1)
}

// sequenceIDs выдает заранее заданные идентификаторы по порядку, затем случайные.
type sequenceIDs struct {
	mu  sync.Mutex
	ids []uuid.UUID
}

func newSequenceIDs(ids ...uuid.UUID) *sequenceIDs {
	return &sequenceIDs{ids: ids}
}

func (s *sequenceIDs) New() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ids) == 0 {
		return uuid.New()
	}
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}
