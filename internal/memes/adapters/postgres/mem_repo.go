package postgres

import (
	"context"

	"github.com/google/uuid"

	"memhub/internal/memes/domain/entities"
	"memhub/internal/memes/domain/values"
	"memhub/internal/memes/ports/repositories"
)

const memesTable = "memes"

// memDao - строка таблицы memes.
type memDao struct {
	ID        uuid.UUID
	Text      string
	ImagePath *string
}

func memFromEntity(m *entities.Mem) dao[*entities.Mem] {
	d := &memDao{ID: m.ID().Value(), Text: m.Text().Value()}
	if path, ok := m.ImagePath(); ok {
		p := path.Value()
		d.ImagePath = &p
	}
	return d
}

func (d *memDao) values() []any {
	return []any{d.ID, d.Text, d.ImagePath}
}

func (d *memDao) targets() []any {
	return []any{&d.ID, &d.Text, &d.ImagePath}
}

func (d *memDao) toEntity() (*entities.Mem, error) {
	id, err := values.NewIdentifier(d.ID)
	if err != nil {
		return nil, err
	}
	text, err := values.NewText(d.Text)
	if err != nil {
		return nil, err
	}
	var imagePath *values.ImagePath
	if d.ImagePath != nil {
		p, err := values.NewImagePath(*d.ImagePath)
		if err != nil {
			return nil, err
		}
		imagePath = &p
	}
	return entities.NewMem(id, text, imagePath)
}

// MemRepository хранит мемы в таблице memes.
type MemRepository struct {
	*Repository[*entities.Mem]
}

// NewMemRepository создает репозиторий мемов.
func NewMemRepository(pool PgxPoolInterface) *MemRepository {
	return &MemRepository{
		Repository: newRepository(pool, table[*entities.Mem]{
			name:       memesTable,
			columns:    []string{"id", "text", "image_path"},
			orderBy:    "id",
			newDao:     func() dao[*entities.Mem] { return &memDao{} },
			fromEntity: memFromEntity,
		}),
	}
}

// List возвращает страницу мемов.
func (r *MemRepository) List(ctx context.Context, page values.Page) ([]*entities.Mem, error) {
	return r.findMany(ctx, "List", nil, &page)
}

var _ repositories.MemRepository = (*MemRepository)(nil)
