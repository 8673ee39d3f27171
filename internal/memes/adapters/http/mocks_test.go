package http_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"memhub/internal/memes/domain/services"
	"memhub/internal/memes/domain/values"
)

type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Register(ctx context.Context, input services.UserCreate) (*services.TokenPair, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenPair), args.Error(1)
}

func (m *mockAuthUseCase) Login(ctx context.Context, login, password string) (*services.TokenPair, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenPair), args.Error(1)
}

func (m *mockAuthUseCase) RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenPair), args.Error(1)
}

func (m *mockAuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *mockAuthUseCase) Authenticate(ctx context.Context, accessToken string) (*services.TokenClaims, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenClaims), args.Error(1)
}

type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) CreateUser(ctx context.Context, input services.UserCreate) (*services.UserRead, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.UserRead), args.Error(1)
}

func (m *mockUserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*services.UserRead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.UserRead), args.Error(1)
}

func (m *mockUserUseCase) GetUserByLogin(ctx context.Context, login string) (*services.UserRead, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.UserRead), args.Error(1)
}

func (m *mockUserUseCase) GetAllUsers(ctx context.Context) ([]*services.UserRead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*services.UserRead), args.Error(1)
}

func (m *mockUserUseCase) GetUsersByRole(ctx context.Context, role values.Role) ([]*services.UserRead, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*services.UserRead), args.Error(1)
}

func (m *mockUserUseCase) UpdateUser(ctx context.Context, input services.UserUpdate) (*services.UserRead, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.UserRead), args.Error(1)
}

func (m *mockUserUseCase) DeleteUserByID(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockMemUseCase struct {
	mock.Mock
}

func (m *mockMemUseCase) AddMem(ctx context.Context, text string, image []byte) (*services.MemRead, error) {
	args := m.Called(ctx, text, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.MemRead), args.Error(1)
}

func (m *mockMemUseCase) GetMemByID(ctx context.Context, id uuid.UUID) (*services.MemRead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.MemRead), args.Error(1)
}

func (m *mockMemUseCase) GetMemImage(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockMemUseCase) GetAllMemes(ctx context.Context, page, perPage int) ([]*services.MemRead, error) {
	args := m.Called(ctx, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*services.MemRead), args.Error(1)
}

func (m *mockMemUseCase) UpdateMem(ctx context.Context, id uuid.UUID, text string, image []byte) (*services.MemRead, error) {
	args := m.Called(ctx, id, text, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.MemRead), args.Error(1)
}

func (m *mockMemUseCase) DeleteMemByID(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

var errDatabaseDown = errors.New("database is down")
