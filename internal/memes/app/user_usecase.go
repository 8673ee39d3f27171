package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
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
	methodCreateUser     = "CreateUser"
	methodGetUserByID    = "GetUserByID"
	methodGetUserByLogin = "GetUserByLogin"
	methodGetAllUsers    = "GetAllUsers"
	methodGetUsersByRole = "GetUsersByRole"
	methodUpdateUser     = "UpdateUser"
	methodDeleteUserByID = "DeleteUserByID"

	msgUserCreated  = "user created"
	msgUserNotFound = "user not found"
	msgUserUpdated  = "user updated"
	msgUserDeleted  = "user deleted"

	msgErrFindUser   = "failed to find user"
	msgErrListUsers  = "failed to list users"
	msgErrUpdateUser = "failed to update user"
	msgErrDeleteUser = "failed to delete user"

	errCtxFindingUser  = "finding user"
	errCtxListingUsers = "listing users"
	errCtxUpdatingUser = "updating user"
	errCtxDeletingUser = "deleting user"
)

// UserUseCaseImpl реализует api.UserUseCase.
type UserUseCaseImpl struct {
	builder  *userBuilder
	userRepo repositories.UserRepository
}

// NewUserUseCase создает сервис пользователей.
func NewUserUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	ids svc.IDGenerator,
) api.UserUseCase {
	return &UserUseCaseImpl{
		builder:  &userBuilder{userRepo: userRepo, passwordSvc: passwordSvc, ids: ids},
		userRepo: userRepo,
	}
}

// CreateUser создает пользователя с ролью из input.Role.
func (u *UserUseCaseImpl) CreateUser(ctx context.Context, input services.UserCreate) (*services.UserRead, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateUser), zap.String("login", input.Login))

	user, err := u.builder.create(ctx, log, input, input.Role)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgUserCreated, zap.String("id", user.ID().String()), zap.String("role", user.Role().String()))
	return services.NewUserRead(user), nil
}

// GetUserByID возвращает пользователя или services.ErrUserNotFound.
func (u *UserUseCaseImpl) GetUserByID(ctx context.Context, id uuid.UUID) (*services.UserRead, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUserByID), zap.String("id", id.String()))

	user, err := u.findUser(ctx, log, id)
	if err != nil {
		return nil, err
	}
	return services.NewUserRead(user), nil
}

// GetUserByLogin возвращает пользователя по логину или services.ErrUserNotFound.
func (u *UserUseCaseImpl) GetUserByLogin(ctx context.Context, login string) (*services.UserRead, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUserByLogin), zap.String("login", login))

	userLogin, err := values.NewLogin(login)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByLogin(ctx, userLogin)
	if err != nil {
		log.Error(ctx, msgErrFindUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	if user == nil {
		log.Debug(ctx, msgUserNotFound)
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, services.ErrUserNotFound)
	}
	return services.NewUserRead(user), nil
}

// GetAllUsers возвращает всех пользователей.
func (u *UserUseCaseImpl) GetAllUsers(ctx context.Context) ([]*services.UserRead, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetAllUsers))

	users, err := u.userRepo.GetAll(ctx)
	if err != nil {
		log.Error(ctx, msgErrListUsers, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}
	return toUserReads(users), nil
}

// GetUsersByRole возвращает пользователей с ролью; пустой срез, если таких нет.
func (u *UserUseCaseImpl) GetUsersByRole(ctx context.Context, role values.Role) ([]*services.UserRead, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUsersByRole), zap.String("role", string(role)))

	role, err := values.ParseRole(string(role))
	if err != nil {
		return nil, err
	}

	users, err := u.userRepo.GetByRole(ctx, role)
	if err != nil {
		log.Error(ctx, msgErrListUsers, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}
	return toUserReads(users), nil
}

// UpdateUser полностью заменяет данные пользователя. Роль не меняется,
// пустой пароль оставляет прежний хеш.
func (u *UserUseCaseImpl) UpdateUser(ctx context.Context, input services.UserUpdate) (*services.UserRead, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateUser), zap.String("id", input.ID.String()))

	existing, err := u.findUser(ctx, log, input.ID)
	if err != nil {
		return nil, err
	}

	login, email, name, err := userFields{
		login:      input.Login,
		email:      input.Email,
		firstName:  input.FirstName,
		secondName: input.SecondName,
	}.validate()
	if err != nil {
		log.Debug(ctx, msgInvalidUserData, zap.Error(err))
		return nil, err
	}

	hash := existing.PasswordHash()
	if input.Password != "" {
		if hash, err = u.builder.hash(ctx, log, input.Password); err != nil {
			return nil, err
		}
	}

	user, err := entities.NewUser(entities.UserParams{
		ID:           existing.ID(),
		Login:        login,
		PasswordHash: hash,
		Email:        email,
		Name:         name,
		Role:         existing.Role(),
	})
	if err != nil {
		return nil, err
	}

	updated, err := u.userRepo.Update(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrEntityNotFound):
			log.Debug(ctx, msgUserNotFound)
			return nil, fmt.Errorf("%s: %w", errCtxUpdatingUser, services.ErrUserNotFound)
		case errors.Is(err, repositories.ErrEntityExists):
			log.Debug(ctx, msgUserExists)
			return nil, fmt.Errorf("%s: %w", errCtxUpdatingUser, services.ErrUserExists)
		}
		log.Error(ctx, msgErrUpdateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingUser, err)
	}

	log.Info(ctx, msgUserUpdated)
	return services.NewUserRead(updated), nil
}

// DeleteUserByID удаляет пользователя или возвращает services.ErrUserNotFound.
func (u *UserUseCaseImpl) DeleteUserByID(ctx context.Context, id uuid.UUID) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteUserByID), zap.String("id", id.String()))

	userID, err := values.NewIdentifier(id)
	if err != nil {
		return err
	}

	if err := u.userRepo.DeleteByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrEntityNotFound) {
			log.Debug(ctx, msgUserNotFound)
			return fmt.Errorf("%s: %w", errCtxDeletingUser, services.ErrUserNotFound)
		}
		log.Error(ctx, msgErrDeleteUser, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingUser, err)
	}

	log.Info(ctx, msgUserDeleted)
	return nil
}

func (u *UserUseCaseImpl) findUser(ctx context.Context, log *logger.Logger, id uuid.UUID) (*entities.User, error) {
	return findUserByID(ctx, log, u.userRepo, id)
}

func findUserByID(ctx context.Context, log *logger.Logger, repo repositories.UserRepository, id uuid.UUID) (*entities.User, error) {
	userID, err := values.NewIdentifier(id)
	if err != nil {
		return nil, err
	}

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFindUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}
	if user == nil {
		log.Debug(ctx, msgUserNotFound)
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, services.ErrUserNotFound)
	}
	return user, nil
}

func toUserReads(users []*entities.User) []*services.UserRead {
	result := make([]*services.UserRead, 0, len(users))
	for _, user := range users {
		result = append(result, services.NewUserRead(user))
	}
	return result
}
