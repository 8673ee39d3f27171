// Package memes содержит HTTP обработчики мемов.
package memes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"memhub/internal/memes/adapters/http/dto"
	"memhub/internal/memes/adapters/http/response"
	"memhub/internal/memes/domain/services"
	"memhub/internal/memes/ports/api"
)

const (
	defaultPage    = 1
	defaultPerPage = 20

	formText  = "text"
	formImage = "image"
)

// ErrInvalidMemID - параметр пути не является UUID.
var ErrInvalidMemID = errors.New("invalid mem id")

// Handler содержит HTTP обработчики мемов.
type Handler struct {
	memes api.MemUseCase
}

// NewHandler создает обработчик мемов.
func NewHandler(memes api.MemUseCase) *Handler {
	return &Handler{memes: memes}
}

// List возвращает страницу мемов по параметрам page и per_page.
func (h *Handler) List(c fiber.Ctx) error {
	page := fiber.Query(c, "page", defaultPage)
	perPage := fiber.Query(c, "per_page", defaultPerPage)

	memes, err := h.memes.GetAllMemes(c.Context(), page, perPage)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, memes)
}

// Get возвращает мем.
func (h *Handler) Get(c fiber.Ctx) error {
	id, err := memID(c)
	if err != nil {
		return response.Error(c, err)
	}

	mem, err := h.memes.GetMemByID(c.Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, mem)
}

// Image отдает изображение мема.
func (h *Handler) Image(c fiber.Ctx) error {
	id, err := memID(c)
	if err != nil {
		return response.Error(c, err)
	}

	mem, err := h.memes.GetMemByID(c.Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	if mem.ImagePath == nil {
		return response.Error(c, fmt.Errorf("mem %s has no image: %w", id, services.ErrImageNotFound))
	}

	data, err := h.memes.GetMemImage(c.Context(), *mem.ImagePath)
	if err != nil {
		return response.Error(c, err)
	}

	c.Set(fiber.HeaderContentType, http.DetectContentType(data))
	return c.Send(data)
}

// Create создает мем из JSON {text} или multipart text + image.
func (h *Handler) Create(c fiber.Ctx) error {
	text, image, err := readMem(c)
	if err != nil {
		return response.Error(c, err)
	}

	mem, err := h.memes.AddMem(c.Context(), text, image)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, mem)
}

// Update заменяет текст и, если передано, изображение мема.
func (h *Handler) Update(c fiber.Ctx) error {
	id, err := memID(c)
	if err != nil {
		return response.Error(c, err)
	}

	text, image, err := readMem(c)
	if err != nil {
		return response.Error(c, err)
	}

	mem, err := h.memes.UpdateMem(c.Context(), id, text, image)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, mem)
}

// Delete удаляет мем вместе с изображением.
func (h *Handler) Delete(c fiber.Ctx) error {
	id, err := memID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.memes.DeleteMemByID(c.Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.NoContent(c)
}

func memID(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, ErrInvalidMemID.Error())
	}
	return id, nil
}

// readMem читает текст и необязательное изображение. Пустой файл считается отсутствием изображения.
func readMem(c fiber.Ctx) (string, []byte, error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		var req dto.MemRequest
		if err := c.Bind().JSON(&req); err != nil {
			return "", nil, response.BindError(err)
		}
		return req.Text, nil, nil
	}

	text := strings.Clone(c.FormValue(formText))

	header, err := c.FormFile(formImage)
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) {
			return text, nil, nil
		}
		return "", nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return "", nil, fmt.Errorf("opening uploaded image: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", nil, fmt.Errorf("reading uploaded image: %w", err)
	}
	if buf.Len() == 0 {
		return text, nil, nil
	}
	return text, buf.Bytes(), nil
}
