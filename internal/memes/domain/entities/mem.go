package entities

import "memhub/internal/memes/domain/values"

// Mem представляет мем: текст и необязательное изображение.
type Mem struct {
	id        values.Identifier
	text      values.Text
	imagePath *values.ImagePath
}

// NewMem собирает мем из проверенных значений. imagePath может быть nil.
func NewMem(id values.Identifier, text values.Text, imagePath *values.ImagePath) (*Mem, error) {
	switch {
	case id.IsZero():
		return nil, unvalidated("mem", "id")
	case text.IsZero():
		return nil, unvalidated("mem", "text")
	case imagePath != nil && imagePath.IsZero():
		return nil, unvalidated("mem", "image_path")
	}

	m := &Mem{id: id, text: text}
	if imagePath != nil {
		p := *imagePath
		m.imagePath = &p
	}
	return m, nil
}

// ID возвращает идентификатор.
func (m *Mem) ID() values.Identifier { return m.id }

// Text возвращает текст.
func (m *Mem) Text() values.Text { return m.text }

// ImagePath возвращает путь к изображению и признак его наличия.
func (m *Mem) ImagePath() (values.ImagePath, bool) {
	if m.imagePath == nil {
		return values.ImagePath{}, false
	}
	return *m.imagePath, true
}

// Equal сравнивает мемы по идентификатору.
func (m *Mem) Equal(other *Mem) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.id == other.id
}
