package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"memhub/internal/memes/domain/entities"
	"memhub/internal/memes/domain/values"
	"memhub/internal/memes/ports/repositories"
)

const usersTable = "users"

// userDao - строка таблицы users.
type userDao struct {
	ID           uuid.UUID
	Login        string
	PasswordHash string
	Email        string
	FirstName    string
	SecondName   *string
	Role         string
}

func userFromEntity(u *entities.User) dao[*entities.User] {
	return &userDao{
		ID:           u.ID().Value(),
		Login:        u.Login().Value(),
		PasswordHash: u.PasswordHash().Value(),
		Email:        u.Email().Value(),
		FirstName:    u.Name().First(),
		SecondName:   u.Name().SecondPtr(),
		Role:         string(u.Role()),
	}
}

func (d *userDao) values() []any {
	return []any{d.ID, d.Login, d.PasswordHash, d.Email, d.FirstName, d.SecondName, d.Role}
}

func (d *userDao) targets() []any {
	return []any{&d.ID, &d.Login, &d.PasswordHash, &d.Email, &d.FirstName, &d.SecondName, &d.Role}
}

func (d *userDao) toEntity() (*entities.User, error) {
	id, err := values.NewIdentifier(d.ID)
	if err != nil {
		return nil, err
	}
	login, err := values.NewLogin(d.Login)
	if err != nil {
		return nil, err
	}
	hash, err := values.NewPasswordHash(d.PasswordHash)
	if err != nil {
		return nil, err
	}
	email, err := values.NewEmail(d.Email)
	if err != nil {
		return nil, err
	}
	name, err := values.NewPersonName(d.FirstName, d.SecondName)
	if err != nil {
		return nil, err
	}
	role, err := values.ParseRole(d.Role)
	if err != nil {
		return nil, err
	}
	return entities.NewUser(entities.UserParams{
		ID:           id,
		Login:        login,
		PasswordHash: hash,
		Email:        email,
		Name:         name,
		Role:         role,
	})
}

// UserRepository хранит пользователей в таблице users.
type UserRepository struct {
	*Repository[*entities.User]
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(pool PgxPoolInterface) *UserRepository {
	return &UserRepository{
		Repository: newRepository(pool, table[*entities.User]{
			name:       usersTable,
			columns:    []string{"id", "login", "password_hash", "email", "first_name", "second_name", "role"},
			orderBy:    "login",
			newDao:     func() dao[*entities.User] { return &userDao{} },
			fromEntity: userFromEntity,
		}),
	}
}

// GetByLogin возвращает nil, если пользователя нет.
func (r *UserRepository) GetByLogin(ctx context.Context, login values.Login) (*entities.User, error) {
	return r.findOne(ctx, "GetByLogin", squirrel.Eq{"login": login.Value()})
}

// GetByRole возвращает пользователей с ролью role.
func (r *UserRepository) GetByRole(ctx context.Context, role values.Role) ([]*entities.User, error) {
	return r.findMany(ctx, "GetByRole", squirrel.Eq{"role": string(role)}, nil)
}

var _ repositories.UserRepository = (*UserRepository)(nil)
