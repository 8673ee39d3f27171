package dto

// MemRequest - текст мема в JSON. Изображение передается только через multipart.
type MemRequest struct {
	Text string `json:"text" validate:"required"`
}
