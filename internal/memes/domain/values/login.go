package values

// Login - логин пользователя.
type Login struct {
	value string
}

// NewLogin создает Login длиной от 8 до 50 символов.
func NewLogin(raw string) (Login, error) {
	if err := checkLength("login", raw, LoginMinLength, LoginMaxLength); err != nil {
		return Login{}, err
	}
	return Login{value: raw}, nil
}

// Value возвращает логин.
func (l Login) Value() string { return l.value }

func (l Login) String() string { return l.value }

// IsZero сообщает, что логин не был создан конструктором.
func (l Login) IsZero() bool { return l.value == "" }
