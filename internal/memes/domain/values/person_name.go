package values

// PersonName - имя и необязательная фамилия.
type PersonName struct {
	first     string
	second    string
	hasSecond bool
}

// NewPersonName проверяет имя всегда, фамилию - только если она передана.
func NewPersonName(first string, second *string) (PersonName, error) {
	if err := checkLength("first_name", first, NameMinLength, NameMaxLength); err != nil {
		return PersonName{}, err
	}
	name := PersonName{first: first}
	if second != nil {
		if err := checkLength("second_name", *second, NameMinLength, NameMaxLength); err != nil {
			return PersonName{}, err
		}
		name.second = *second
		name.hasSecond = true
	}
	return name, nil
}

// First возвращает имя.
func (n PersonName) First() string { return n.first }

// Second возвращает фамилию и признак ее наличия.
func (n PersonName) Second() (string, bool) { return n.second, n.hasSecond }

// SecondPtr возвращает фамилию или nil.
func (n PersonName) SecondPtr() *string {
	if !n.hasSecond {
		return nil
	}
	s := n.second
	return &s
}

// IsZero сообщает, что имя не было создано конструктором.
func (n PersonName) IsZero() bool { return n.first == "" }
