// Package postgres реализует порты хранения поверх Postgres (pgx + squirrel).
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"memhub/internal/memes/domain/entities"
	"memhub/internal/memes/domain/values"
	"memhub/internal/memes/ports/repositories"
	"memhub/pkg/logger"
)

// PgxPoolInterface - часть pgxpool.Pool, нужная репозиториям. Позволяет подставлять pgxmock.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

const (
	msgEntityExists   = "unique constraint violated"
	msgEntityNotFound = "entity not found"
	msgQueryFailed    = "query failed"

	errCtxBuildQuery = "building query"
	errCtxInsert     = "inserting row"
	errCtxUpdate     = "updating row"
	errCtxSelect     = "selecting rows"
	errCtxDelete     = "deleting row"
	errCtxMapRow     = "mapping row to entity"
)

// dao - плоская запись таблицы для сущности E.
type dao[E entities.Entity] interface {
	// values возвращает значения в порядке table.columns.
	values() []any
	// targets возвращает указатели для Scan в порядке table.columns.
	targets() []any
	toEntity() (E, error)
}

// table описывает отображение сущности на таблицу. Первая колонка - первичный ключ.
type table[E entities.Entity] struct {
	name       string
	columns    []string
	orderBy    string
	newDao     func() dao[E]
	fromEntity func(E) dao[E]
}

// Repository - общий CRUD поверх таблицы.
type Repository[E entities.Entity] struct {
	pool  PgxPoolInterface
	table table[E]
	sb    squirrel.StatementBuilderType
}

func newRepository[E entities.Entity](pool PgxPoolInterface, t table[E]) *Repository[E] {
	return &Repository[E]{
		pool:  pool,
		table: t,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *Repository[E]) log(ctx context.Context, method string) *logger.Logger {
	return logger.Log(ctx).With(zap.String("repository", r.table.name), zap.String("method", method))
}

func (r *Repository[E]) returning() string {
	return "RETURNING " + strings.Join(r.table.columns, ", ")
}

// Add вставляет новую запись.
func (r *Repository[E]) Add(ctx context.Context, entity E) (E, error) {
	var zero E
	log := r.log(ctx, "Add")

	query, args, err := r.sb.Insert(r.table.name).
		Columns(r.table.columns...).
		Values(r.table.fromEntity(entity).values()...).
		Suffix(r.returning()).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%s: %w", errCtxBuildQuery, err)
	}

	saved, err := r.scanOne(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, msgEntityExists, zap.String("constraint", constraintName(err)))
			return zero, fmt.Errorf("%s: %w", errCtxInsert, repositories.ErrEntityExists)
		}
		log.Error(ctx, msgQueryFailed, zap.Error(err))
		return zero, fmt.Errorf("%s: %w", errCtxInsert, err)
	}
	return saved, nil
}

// Update заменяет все поля записи с идентификатором сущности.
func (r *Repository[E]) Update(ctx context.Context, entity E) (E, error) {
	var zero E
	log := r.log(ctx, "Update")

	vals := r.table.fromEntity(entity).values()
	builder := r.sb.Update(r.table.name)
	for i, col := range r.table.columns[1:] {
		builder = builder.Set(col, vals[i+1])
	}
	query, args, err := builder.
		Where(squirrel.Eq{r.table.columns[0]: vals[0]}).
		Suffix(r.returning()).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%s: %w", errCtxBuildQuery, err)
	}

	saved, err := r.scanOne(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			log.Debug(ctx, msgEntityNotFound, zap.String("id", entity.ID().String()))
			return zero, fmt.Errorf("%s: %w", errCtxUpdate, repositories.ErrEntityNotFound)
		case isUniqueViolation(err):
			log.Debug(ctx, msgEntityExists, zap.String("constraint", constraintName(err)))
			return zero, fmt.Errorf("%s: %w", errCtxUpdate, repositories.ErrEntityExists)
		default:
			log.Error(ctx, msgQueryFailed, zap.Error(err))
			return zero, fmt.Errorf("%s: %w", errCtxUpdate, err)
		}
	}
	return saved, nil
}

// GetByID возвращает нулевое значение E, если записи нет.
func (r *Repository[E]) GetByID(ctx context.Context, id values.Identifier) (E, error) {
	return r.findOne(ctx, "GetByID", squirrel.Eq{r.table.columns[0]: id.String()})
}

// GetAll возвращает все записи.
func (r *Repository[E]) GetAll(ctx context.Context) ([]E, error) {
	return r.findMany(ctx, "GetAll", nil, nil)
}

// DeleteByID удаляет запись; если ее нет - ErrEntityNotFound.
func (r *Repository[E]) DeleteByID(ctx context.Context, id values.Identifier) error {
	log := r.log(ctx, "DeleteByID")

	query, args, err := r.sb.Delete(r.table.name).
		Where(squirrel.Eq{r.table.columns[0]: id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxBuildQuery, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		log.Error(ctx, msgQueryFailed, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDelete, err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug(ctx, msgEntityNotFound, zap.String("id", id.String()))
		return fmt.Errorf("%s: %w", errCtxDelete, repositories.ErrEntityNotFound)
	}
	return nil
}

func (r *Repository[E]) selectBuilder() squirrel.SelectBuilder {
	return r.sb.Select(r.table.columns...).From(r.table.name)
}

func (r *Repository[E]) findOne(ctx context.Context, method string, where squirrel.Sqlizer) (E, error) {
	var zero E
	log := r.log(ctx, method)

	query, args, err := r.selectBuilder().Where(where).ToSql()
	if err != nil {
		return zero, fmt.Errorf("%s: %w", errCtxBuildQuery, err)
	}

	found, err := r.scanOne(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, msgEntityNotFound)
			return zero, nil
		}
		log.Error(ctx, msgQueryFailed, zap.Error(err))
		return zero, fmt.Errorf("%s: %w", errCtxSelect, err)
	}
	return found, nil
}

func (r *Repository[E]) findMany(ctx context.Context, method string, where squirrel.Sqlizer, page *values.Page) ([]E, error) {
	log := r.log(ctx, method)

	builder := r.selectBuilder()
	if where != nil {
		builder = builder.Where(where)
	}
	if r.table.orderBy != "" {
		builder = builder.OrderBy(r.table.orderBy)
	}
	if page != nil {
		builder = builder.
			Limit(uint64(page.Limit())).   // #nosec G115 - page values are positive
			Offset(uint64(page.Offset())) // #nosec G115 - page values are positive
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxBuildQuery, err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, msgQueryFailed, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxSelect, err)
	}
	defer rows.Close()

	result := make([]E, 0)
	for rows.Next() {
		entity, err := r.scanOne(rows)
		if err != nil {
			log.Error(ctx, msgQueryFailed, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxSelect, err)
		}
		result = append(result, entity)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, msgQueryFailed, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxSelect, err)
	}
	return result, nil
}

func (r *Repository[E]) scanOne(row pgx.Row) (E, error) {
	var zero E
	d := r.table.newDao()
	if err := row.Scan(d.targets()...); err != nil {
		return zero, err
	}
	entity, err := d.toEntity()
	if err != nil {
		return zero, fmt.Errorf("%s: %w", errCtxMapRow, err)
	}
	return entity, nil
}
