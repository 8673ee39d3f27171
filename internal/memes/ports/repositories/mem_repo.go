package repositories

import (
	"context"

	"memhub/internal/memes/domain/entities"
	"memhub/internal/memes/domain/values"
)

// MemRepository хранит мемы.
type MemRepository interface {
	Repository[*entities.Mem]

	List(ctx context.Context, page values.Page) ([]*entities.Mem, error)
}
