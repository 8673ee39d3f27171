package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memhub/internal/memes/adapters/postgres"
	"memhub/internal/memes/domain/entities"
	"memhub/internal/memes/domain/values"
	"memhub/internal/memes/ports/repositories"
	"memhub/pkg/logger"
)

var memColumns = []string{"id", "text", "image_path"}

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func newMem(t *testing.T, raw uuid.UUID, text string, path *string) *entities.Mem {
	t.Helper()
	id, err := values.NewIdentifier(raw)
	require.NoError(t, err)
	txt, err := values.NewText(text)
	require.NoError(t, err)
	var imagePath *values.ImagePath
	if path != nil {
		p, err := values.NewImagePath(*path)
		require.NoError(t, err)
		imagePath = &p
	}
	mem, err := entities.NewMem(id, txt, imagePath)
	require.NoError(t, err)
	return mem
}

func identifier(t *testing.T, raw uuid.UUID) values.Identifier {
	t.Helper()
	id, err := values.NewIdentifier(raw)
	require.NoError(t, err)
	return id
}

func TestMemRepository_Add(t *testing.T) {
	ctx := testContext(t)
	raw := uuid.New()
	path := "mem_" + raw.String()

	t.Run("Успешное добавление мема с изображением", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`INSERT INTO memes \(id,text,image_path\) VALUES \(\$1,\$2,\$3\) RETURNING id, text, image_path`).
			WithArgs(raw, "Колобок повесился.", &path).
			WillReturnRows(pgxmock.NewRows(memColumns).AddRow(raw, "Колобок повесился.", &path))

		repo := postgres.NewMemRepository(mock)
		saved, err := repo.Add(ctx, newMem(t, raw, "Колобок повесился.", &path))

		require.NoError(t, err)
		assert.Equal(t, raw, saved.ID().Value())
		assert.Equal(t, "Колобок повесился.", saved.Text().Value())
		got, ok := saved.ImagePath()
		require.True(t, ok)
		assert.Equal(t, path, got.Value())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Добавление мема без изображения", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO memes").
			WithArgs(raw, "Колобок повесился.", (*string)(nil)).
			WillReturnRows(pgxmock.NewRows(memColumns).AddRow(raw, "Колобок повесился.", nil))

		repo := postgres.NewMemRepository(mock)
		saved, err := repo.Add(ctx, newMem(t, raw, "Колобок повесился.", nil))

		require.NoError(t, err)
		_, ok := saved.ImagePath()
		assert.False(t, ok)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Нарушение уникальности", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO memes").
			WithArgs(raw, "Колобок повесился.", (*string)(nil)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "memes_pkey"})

		repo := postgres.NewMemRepository(mock)
		saved, err := repo.Add(ctx, newMem(t, raw, "Колобок повесился.", nil))

		assert.Nil(t, saved)
		require.ErrorIs(t, err, repositories.ErrEntityExists)
		var pgErr *pgconn.PgError
		assert.False(t, errors.As(err, &pgErr), "storage error must not leak")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Общая ошибка БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbErr := errors.New("connection reset")
		mock.ExpectQuery("INSERT INTO memes").
			WithArgs(raw, "Колобок повесился.", (*string)(nil)).
			WillReturnError(dbErr)

		repo := postgres.NewMemRepository(mock)
		_, err = repo.Add(ctx, newMem(t, raw, "Колобок повесился.", nil))

		require.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, repositories.ErrEntityExists)
	})
}

func TestMemRepository_Update(t *testing.T) {
	ctx := testContext(t)
	raw := uuid.New()

	t.Run("Успешное обновление", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`UPDATE memes SET text = \$1, image_path = \$2 WHERE id = \$3 RETURNING`).
			WithArgs("new text value", (*string)(nil), raw.String()).
			WillReturnRows(pgxmock.NewRows(memColumns).AddRow(raw, "new text value", nil))

		repo := postgres.NewMemRepository(mock)
		updated, err := repo.Update(ctx, newMem(t, raw, "new text value", nil))

		require.NoError(t, err)
		assert.Equal(t, "new text value", updated.Text().Value())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Запись не найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE memes").
			WithArgs("new text value", (*string)(nil), raw.String()).
			WillReturnRows(pgxmock.NewRows(memColumns))

		repo := postgres.NewMemRepository(mock)
		_, err = repo.Update(ctx, newMem(t, raw, "new text value", nil))

		require.ErrorIs(t, err, repositories.ErrEntityNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Нарушение уникальности", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("UPDATE memes").
			WithArgs("new text value", (*string)(nil), raw.String()).
			WillReturnError(&pgconn.PgError{Code: "23505"})

		repo := postgres.NewMemRepository(mock)
		_, err = repo.Update(ctx, newMem(t, raw, "new text value", nil))

		require.ErrorIs(t, err, repositories.ErrEntityExists)
	})
}

func TestMemRepository_GetByID(t *testing.T) {
	ctx := testContext(t)
	raw := uuid.New()

	t.Run("Мем найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, text, image_path FROM memes WHERE id = \$1`).
			WithArgs(raw.String()).
			WillReturnRows(pgxmock.NewRows(memColumns).AddRow(raw, "found text", nil))

		repo := postgres.NewMemRepository(mock)
		mem, err := repo.GetByID(ctx, identifier(t, raw))

		require.NoError(t, err)
		require.NotNil(t, mem)
		assert.Equal(t, raw, mem.ID().Value())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Мем не найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, text, image_path FROM memes").
			WithArgs(raw.String()).
			WillReturnRows(pgxmock.NewRows(memColumns))

		repo := postgres.NewMemRepository(mock)
		mem, err := repo.GetByID(ctx, identifier(t, raw))

		require.NoError(t, err)
		assert.Nil(t, mem)
	})

	t.Run("Некорректная строка в БД", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, text, image_path FROM memes").
			WithArgs(raw.String()).
			WillReturnRows(pgxmock.NewRows(memColumns).AddRow(raw, "bad", nil))

		repo := postgres.NewMemRepository(mock)
		_, err = repo.GetByID(ctx, identifier(t, raw))

		require.ErrorIs(t, err, values.ErrTooShort)
	})
}

func TestMemRepository_ListAndGetAll(t *testing.T) {
	ctx := testContext(t)
	first, second := uuid.New(), uuid.New()

	t.Run("Страница мемов", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, text, image_path FROM memes ORDER BY id LIMIT 2 OFFSET 2`).
			WillReturnRows(pgxmock.NewRows(memColumns).
				AddRow(first, "first text", nil).
				AddRow(second, "second text", nil))

		page, err := values.NewPage(2, 2)
		require.NoError(t, err)

		repo := postgres.NewMemRepository(mock)
		memes, err := repo.List(ctx, page)

		require.NoError(t, err)
		require.Len(t, memes, 2)
		assert.Equal(t, first, memes[0].ID().Value())
		assert.Equal(t, second, memes[1].ID().Value())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пустая выборка", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, text, image_path FROM memes ORDER BY id$`).
			WillReturnRows(pgxmock.NewRows(memColumns))

		repo := postgres.NewMemRepository(mock)
		memes, err := repo.GetAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, memes)
		assert.Empty(t, memes)
	})

	t.Run("Ошибка запроса", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbErr := errors.New("timeout")
		mock.ExpectQuery("SELECT id, text, image_path FROM memes").WillReturnError(dbErr)

		repo := postgres.NewMemRepository(mock)
		_, err = repo.GetAll(ctx)

		require.ErrorIs(t, err, dbErr)
	})
}

func TestMemRepository_DeleteByID(t *testing.T) {
	ctx := testContext(t)
	raw := uuid.New()

	t.Run("Успешное удаление", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM memes WHERE id = \$1`).
			WithArgs(raw.String()).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewMemRepository(mock)
		require.NoError(t, repo.DeleteByID(ctx, identifier(t, raw)))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Запись не найдена", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM memes").
			WithArgs(raw.String()).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewMemRepository(mock)
		err = repo.DeleteByID(ctx, identifier(t, raw))

		require.ErrorIs(t, err, repositories.ErrEntityNotFound)
	})
}
