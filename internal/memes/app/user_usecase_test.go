package app_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"memhub/internal/memes/app"
	"memhub/internal/memes/domain/entities"
	"memhub/internal/memes/domain/services"
	"memhub/internal/memes/domain/values"
	"memhub/internal/memes/ports/repositories"
)

func userCreate(login string, role values.Role) services.UserCreate {
	second := "Петров"
	return services.UserCreate{
		Login:      login,
		Password:   "secret-password",
		Email:      login + "@example.com",
		FirstName:  "Иван",
		SecondName: &second,
		Role:       role,
	}
}

func TestUserUseCase_CreateUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("администратор задает роль", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		passwordSvc.On("Hash", mock.Anything, "secret-password").Return("hashed", nil).Once()
		userRepo.On("Add", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			second, ok := u.Name().Second()
			return u.ID().Value() == userID && u.Role() == values.RoleAdmin &&
				u.PasswordHash().Value() == "hashed" && ok && second == "Петров"
		})).Return(newUser(t, userID, "moderator", "hashed", values.RoleAdmin), nil).Once()

		uc := app.NewUserUseCase(userRepo, passwordSvc, newSequenceIDs(userID))
		read, err := uc.CreateUser(ctx, userCreate("moderator", values.RoleAdmin))

		require.NoError(t, err)
		assert.Equal(t, userID, read.ID)
		assert.Equal(t, values.RoleAdmin, read.Role)
		userRepo.AssertExpectations(t)
	})

	t.Run("неизвестная роль", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)

		uc := app.NewUserUseCase(userRepo, passwordSvc, newSequenceIDs(userID))
		_, err := uc.CreateUser(ctx, userCreate("moderator", values.Role("ROOT")))

		require.ErrorIs(t, err, values.ErrInvalidFormat)
		passwordSvc.AssertNotCalled(t, "Hash", mock.Anything, mock.Anything)
	})

	t.Run("короткий логин", func(t *testing.T) {
		uc := app.NewUserUseCase(new(mockUserRepository), new(mockPasswordService), newSequenceIDs(userID))
		_, err := uc.CreateUser(ctx, userCreate("short", values.RoleUser))
		require.ErrorIs(t, err, values.ErrTooShort)
	})

	t.Run("пустой пароль", func(t *testing.T) {
		passwordSvc := new(mockPasswordService)
		input := userCreate("moderator", values.RoleUser)
		input.Password = ""

		uc := app.NewUserUseCase(new(mockUserRepository), passwordSvc, newSequenceIDs(userID))
		_, err := uc.CreateUser(ctx, input)

		require.ErrorIs(t, err, values.ErrValidation)
		passwordSvc.AssertNotCalled(t, "Hash", mock.Anything, mock.Anything)
	})

	t.Run("конфликт", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		passwordSvc.On("Hash", mock.Anything, "secret-password").Return("hashed", nil).Once()
		userRepo.On("Add", mock.Anything, mock.Anything).Return(nil, repositories.ErrEntityExists).Once()

		uc := app.NewUserUseCase(userRepo, passwordSvc, newSequenceIDs(userID))
		_, err := uc.CreateUser(ctx, userCreate("moderator", values.RoleUser))

		require.ErrorIs(t, err, services.ErrUserExists)
	})
}

func TestUserUseCase_Getters(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	user := newUser(t, userID, "moderator", "hashed", values.RoleUser)

	userRepo := new(mockUserRepository)
	uc := app.NewUserUseCase(userRepo, new(mockPasswordService), newSequenceIDs())

	userRepo.On("GetByID", mock.Anything, identifier(t, userID)).Return(user, nil).Once()
	read, err := uc.GetUserByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "moderator", read.Login)

	missing := uuid.New()
	userRepo.On("GetByID", mock.Anything, identifier(t, missing)).Return(nil, nil).Once()
	_, err = uc.GetUserByID(ctx, missing)
	require.ErrorIs(t, err, services.ErrUserNotFound)

	login, err := values.NewLogin("moderator")
	require.NoError(t, err)
	userRepo.On("GetByLogin", mock.Anything, login).Return(user, nil).Once()
	read, err = uc.GetUserByLogin(ctx, "moderator")
	require.NoError(t, err)
	assert.Equal(t, userID, read.ID)

	unknown, err := values.NewLogin("stranger")
	require.NoError(t, err)
	userRepo.On("GetByLogin", mock.Anything, unknown).Return(nil, nil).Once()
	_, err = uc.GetUserByLogin(ctx, "stranger")
	require.ErrorIs(t, err, services.ErrUserNotFound)

	userRepo.On("GetAll", mock.Anything).Return([]*entities.User{user}, nil).Once()
	all, err := uc.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	userRepo.On("GetByRole", mock.Anything, values.RoleAdmin).Return([]*entities.User{}, nil).Once()
	admins, err := uc.GetUsersByRole(ctx, values.RoleAdmin)
	require.NoError(t, err)
	assert.NotNil(t, admins)
	assert.Empty(t, admins)

	_, err = uc.GetUsersByRole(ctx, values.Role("ROOT"))
	require.ErrorIs(t, err, values.ErrInvalidFormat)
}

func TestUserUseCase_UpdateUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	existing := newUser(t, userID, "moderator", "old-hash", values.RoleAdmin)

	update := services.UserUpdate{
		ID:        userID,
		Login:     "moderator2",
		Email:     "moderator2@example.com",
		FirstName: "Пётр",
	}

	t.Run("роль и хеш сохраняются", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		userRepo.On("GetByID", mock.Anything, identifier(t, userID)).Return(existing, nil).Once()
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			_, hasSecond := u.Name().Second()
			return u.Role() == values.RoleAdmin && u.PasswordHash().Value() == "old-hash" &&
				u.Login().Value() == "moderator2" && !hasSecond
		})).Return(newUser(t, userID, "moderator2", "old-hash", values.RoleAdmin), nil).Once()

		uc := app.NewUserUseCase(userRepo, passwordSvc, newSequenceIDs())
		read, err := uc.UpdateUser(ctx, update)

		require.NoError(t, err)
		assert.Equal(t, values.RoleAdmin, read.Role)
		passwordSvc.AssertNotCalled(t, "Hash", mock.Anything, mock.Anything)
		userRepo.AssertExpectations(t)
	})

	t.Run("новый пароль хешируется", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		passwordSvc := new(mockPasswordService)
		withPassword := update
		withPassword.Password = "new-password"
		userRepo.On("GetByID", mock.Anything, identifier(t, userID)).Return(existing, nil).Once()
		passwordSvc.On("Hash", mock.Anything, "new-password").Return("new-hash", nil).Once()
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return u.PasswordHash().Value() == "new-hash"
		})).Return(newUser(t, userID, "moderator2", "new-hash", values.RoleAdmin), nil).Once()

		uc := app.NewUserUseCase(userRepo, passwordSvc, newSequenceIDs())
		_, err := uc.UpdateUser(ctx, withPassword)

		require.NoError(t, err)
		userRepo.AssertExpectations(t)
		passwordSvc.AssertExpectations(t)
	})

	t.Run("пользователь не найден", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("GetByID", mock.Anything, identifier(t, userID)).Return(nil, nil).Once()

		uc := app.NewUserUseCase(userRepo, new(mockPasswordService), newSequenceIDs())
		_, err := uc.UpdateUser(ctx, update)

		require.ErrorIs(t, err, services.ErrUserNotFound)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("конфликт и исчезнувшая запись", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("GetByID", mock.Anything, identifier(t, userID)).Return(existing, nil).Twice()
		userRepo.On("Update", mock.Anything, mock.Anything).Return(nil, repositories.ErrEntityExists).Once()
		userRepo.On("Update", mock.Anything, mock.Anything).Return(nil, repositories.ErrEntityNotFound).Once()

		uc := app.NewUserUseCase(userRepo, new(mockPasswordService), newSequenceIDs())

		_, err := uc.UpdateUser(ctx, update)
		require.ErrorIs(t, err, services.ErrUserExists)

		_, err = uc.UpdateUser(ctx, update)
		require.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("некорректная почта", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		userRepo.On("GetByID", mock.Anything, identifier(t, userID)).Return(existing, nil).Once()
		bad := update
		bad.Email = "not-an-email"

		uc := app.NewUserUseCase(userRepo, new(mockPasswordService), newSequenceIDs())
		_, err := uc.UpdateUser(ctx, bad)

		require.ErrorIs(t, err, values.ErrInvalidFormat)
	})
}

func TestUserUseCase_DeleteUserByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	userRepo := new(mockUserRepository)
	userRepo.On("DeleteByID", mock.Anything, identifier(t, userID)).Return(nil).Once()
	userRepo.On("DeleteByID", mock.Anything, identifier(t, userID)).Return(repositories.ErrEntityNotFound).Once()

	uc := app.NewUserUseCase(userRepo, new(mockPasswordService), newSequenceIDs())

	require.NoError(t, uc.DeleteUserByID(ctx, userID))
	require.ErrorIs(t, uc.DeleteUserByID(ctx, userID), services.ErrUserNotFound)
}
