package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"memhub/internal/memes/domain/entities"
	"memhub/internal/memes/domain/services"
	"memhub/internal/memes/domain/values"
	"memhub/internal/memes/ports/repositories"
	svc "memhub/internal/memes/ports/services"
	"memhub/pkg/logger"
)

const (
	msgUserExists      = "user already exists"
	msgInvalidUserData = "invalid user data"

	msgErrHashPassword = "failed to hash password"
	msgErrAddUser      = "failed to add user"

	errCtxHashingPassword = "hashing password"
	errCtxAddingUser      = "adding user"
)

// userBuilder проверяет данные пользователя, хеширует пароль и сохраняет запись.
// Используется регистрацией, административным созданием и созданием базового администратора.
type userBuilder struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	ids         svc.IDGenerator
}

type userFields struct {
	login      string
	email      string
	firstName  string
	secondName *string
}

// validate собирает значения полей, общих для создания и обновления.
func (f userFields) validate() (values.Login, values.Email, values.PersonName, error) {
	login, err := values.NewLogin(f.login)
	if err != nil {
		return values.Login{}, values.Email{}, values.PersonName{}, err
	}
	email, err := values.NewEmail(f.email)
	if err != nil {
		return values.Login{}, values.Email{}, values.PersonName{}, err
	}
	name, err := values.NewPersonName(f.firstName, f.secondName)
	if err != nil {
		return values.Login{}, values.Email{}, values.PersonName{}, err
	}
	return login, email, name, nil
}

func (b *userBuilder) hash(ctx context.Context, log *logger.Logger, password string) (values.PasswordHash, error) {
	if err := values.CheckPassword(password); err != nil {
		log.Debug(ctx, msgInvalidUserData, zap.Error(err))
		return values.PasswordHash{}, err
	}
	hashed, err := b.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return values.PasswordHash{}, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}
	hash, err := values.NewPasswordHash(hashed)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return values.PasswordHash{}, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}
	return hash, nil
}

func (b *userBuilder) create(ctx context.Context, log *logger.Logger, input services.UserCreate, role values.Role) (*entities.User, error) {
	role, err := values.ParseRole(string(role))
	if err != nil {
		log.Debug(ctx, msgInvalidUserData, zap.Error(err))
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

	hash, err := b.hash(ctx, log, input.Password)
	if err != nil {
		return nil, err
	}

	id, err := values.NewIdentifier(b.ids.New())
	if err != nil {
		return nil, err
	}

	user, err := entities.NewUser(entities.UserParams{
		ID:           id,
		Login:        login,
		PasswordHash: hash,
		Email:        email,
		Name:         name,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	added, err := b.userRepo.Add(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrEntityExists) {
			log.Debug(ctx, msgUserExists, zap.String("login", login.Value()))
			return nil, fmt.Errorf("%s: %w", errCtxAddingUser, services.ErrUserExists)
		}
		log.Error(ctx, msgErrAddUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxAddingUser, err)
	}
	return added, nil
}
