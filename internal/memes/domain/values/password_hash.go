package values

// PasswordHash - хеш пароля. Исходный пароль здесь никогда не хранится.
type PasswordHash struct {
	value string
}

// NewPasswordHash принимает непустой хеш.
func NewPasswordHash(raw string) (PasswordHash, error) {
	if raw == "" {
		return PasswordHash{}, newValidationError("password_hash", ErrTooShort, 1)
	}
	return PasswordHash{value: raw}, nil
}

// Value возвращает хеш.
func (h PasswordHash) Value() string { return h.value }

// IsZero сообщает, что хеш не был создан конструктором.
func (h PasswordHash) IsZero() bool { return h.value == "" }

// String скрывает значение.
func (h PasswordHash) String() string { return "********" }

// PasswordMaxLength ограничивает длину исходного пароля в символах.
const PasswordMaxLength = 128

// CheckPassword проверяет исходный пароль перед хешированием: непустой и не длиннее PasswordMaxLength.
func CheckPassword(raw string) error {
	return checkLength("password", raw, 1, PasswordMaxLength)
}
