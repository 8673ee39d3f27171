package values

// Role - роль пользователя.
type Role string

// Роли.
const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole принимает только ADMIN или USER.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleUser:
		return Role(raw), nil
	default:
		return "", newValidationError("role", ErrInvalidFormat, 0)
	}
}

// Valid сообщает, что роль - ADMIN или USER.
func (r Role) Valid() bool { return r == RoleAdmin || r == RoleUser }

func (r Role) String() string { return string(r) }
