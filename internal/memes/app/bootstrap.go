package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"memhub/internal/memes/domain/services"
	"memhub/internal/memes/domain/values"
	"memhub/internal/memes/ports/repositories"
	svc "memhub/internal/memes/ports/services"
	"memhub/pkg/logger"
)

const (
	methodEnsureBaseAdmin = "EnsureBaseAdmin"

	msgAdminPresent       = "admin user already present"
	msgAdminNotConfigured = "base admin is not configured, skipping"
	msgAdminCreated       = "base admin created"
	msgAdminLoginTaken    = "base admin login or email is taken by another user"

	errCtxCheckingAdmins = "checking admin users"
	errCtxCreatingAdmin  = "creating base admin"
)

// BaseAdmin - учетные данные администратора, создаваемого при первом запуске.
type BaseAdmin struct {
	Login     string
	Password  string
	Email     string
	FirstName string
}

// EnsureBaseAdmin создает администратора, если в системе нет ни одного пользователя с ролью ADMIN.
func EnsureBaseAdmin(
	ctx context.Context,
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	ids svc.IDGenerator,
	admin BaseAdmin,
) error {
	log := logger.Log(ctx).With(zap.String("method", methodEnsureBaseAdmin))

	if admin.Login == "" {
		log.Info(ctx, msgAdminNotConfigured)
		return nil
	}

	admins, err := userRepo.GetByRole(ctx, values.RoleAdmin)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxCheckingAdmins, err)
	}
	if len(admins) > 0 {
		log.Debug(ctx, msgAdminPresent, zap.Int("count", len(admins)))
		return nil
	}

	builder := &userBuilder{userRepo: userRepo, passwordSvc: passwordSvc, ids: ids}
	user, err := builder.create(ctx, log, services.UserCreate{
		Login:     admin.Login,
		Password:  admin.Password,
		Email:     admin.Email,
		FirstName: admin.FirstName,
	}, values.RoleAdmin)
	if err != nil {
		if errors.Is(err, services.ErrUserExists) {
			log.Warn(ctx, msgAdminLoginTaken, zap.String("login", admin.Login))
			return nil
		}
		return fmt.Errorf("%s: %w", errCtxCreatingAdmin, err)
	}

	log.Info(ctx, msgAdminCreated, zap.String("id", user.ID().String()), zap.String("login", admin.Login))
	return nil
}
