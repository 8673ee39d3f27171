package entities

import "memhub/internal/memes/domain/values"

// User представляет учетную запись.
type User struct {
	id           values.Identifier
	login        values.Login
	passwordHash values.PasswordHash
	email        values.Email
	name         values.PersonName
	role         values.Role
}

// UserParams - проверенные значения для сборки пользователя.
type UserParams struct {
	ID           values.Identifier
	Login        values.Login
	PasswordHash values.PasswordHash
	Email        values.Email
	Name         values.PersonName
	Role         values.Role
}

// NewUser собирает пользователя. Каждое значение должно быть создано своим конструктором.
func NewUser(p UserParams) (*User, error) {
	switch {
	case p.ID.IsZero():
		return nil, unvalidated("user", "id")
	case p.Login.IsZero():
		return nil, unvalidated("user", "login")
	case p.PasswordHash.IsZero():
		return nil, unvalidated("user", "password_hash")
	case p.Email.IsZero():
		return nil, unvalidated("user", "email")
	case p.Name.IsZero():
		return nil, unvalidated("user", "name")
	case !p.Role.Valid():
		return nil, unvalidated("user", "role")
	}

	return &User{
		id:           p.ID,
		login:        p.Login,
		passwordHash: p.PasswordHash,
		email:        p.Email,
		name:         p.Name,
		role:         p.Role,
	}, nil
}

// ID возвращает идентификатор.
func (u *User) ID() values.Identifier { return u.id }

// Login возвращает логин.
func (u *User) Login() values.Login { return u.login }

// PasswordHash возвращает хеш пароля.
func (u *User) PasswordHash() values.PasswordHash { return u.passwordHash }

// Email возвращает почту.
func (u *User) Email() values.Email { return u.email }

// Name возвращает имя.
func (u *User) Name() values.PersonName { return u.name }

// Role возвращает роль.
func (u *User) Role() values.Role { return u.role }

// IsAdmin сообщает, что пользователь администратор.
func (u *User) IsAdmin() bool { return u.role == values.RoleAdmin }

// Equal сравнивает пользователей по идентификатору.
func (u *User) Equal(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.id == other.id
}
