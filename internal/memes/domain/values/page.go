package values

// Page - параметры постраничной выборки.
type Page struct {
	number int
	size   int
}

// NewPage требует number > 0 и size > 0.
func NewPage(number, size int) (Page, error) {
	if number < 1 {
		return Page{}, newValidationError("page", ErrTooShort, 1)
	}
	if size < 1 {
		return Page{}, newValidationError("per_page", ErrTooShort, 1)
	}
	return Page{number: number, size: size}, nil
}

// Number возвращает номер страницы, начиная с 1.
func (p Page) Number() int { return p.number }

// Size возвращает размер страницы.
func (p Page) Size() int { return p.size }

// Offset возвращает (number-1)*size.
func (p Page) Offset() int { return (p.number - 1) * p.size }

// Limit возвращает size.
func (p Page) Limit() int { return p.size }
