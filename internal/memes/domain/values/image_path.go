package values

// ImagePath - ключ изображения в хранилище.
type ImagePath struct {
	value string
}

// NewImagePath требует непустую строку.
func NewImagePath(raw string) (ImagePath, error) {
	if raw == "" {
		return ImagePath{}, newValidationError("image_path", ErrTooShort, 1)
	}
	return ImagePath{value: raw}, nil
}

// Value возвращает ключ.
func (p ImagePath) Value() string { return p.value }

func (p ImagePath) String() string { return p.value }

// IsZero сообщает, что путь не был создан конструктором.
func (p ImagePath) IsZero() bool { return p.value == "" }
