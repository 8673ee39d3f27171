package app_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"memhub/internal/memes/domain/entities"
	"memhub/internal/memes/domain/values"
)

func newMem(t *testing.T, id uuid.UUID, text string, path string) *entities.Mem {
	t.Helper()
	memID, err := values.NewIdentifier(id)
	require.NoError(t, err)
	memText, err := values.NewText(text)
	require.NoError(t, err)
	var imagePath *values.ImagePath
	if path != "" {
		p, err := values.NewImagePath(path)
		require.NoError(t, err)
		imagePath = &p
	}
	mem, err := entities.NewMem(memID, memText, imagePath)
	require.NoError(t, err)
	return mem
}

func newUser(t *testing.T, id uuid.UUID, login, hash string, role values.Role) *entities.User {
	t.Helper()
	userID, err := values.NewIdentifier(id)
	require.NoError(t, err)
	userLogin, err := values.NewLogin(login)
	require.NoError(t, err)
	passwordHash, err := values.NewPasswordHash(hash)
	require.NoError(t, err)
	email, err := values.NewEmail(login + "@example.com")
	require.NoError(t, err)
	name, err := values.NewPersonName("Иван", nil)
	require.NoError(t, err)
	user, err := entities.NewUser(entities.UserParams{
		ID:           userID,
		Login:        userLogin,
		PasswordHash: passwordHash,
		Email:        email,
		Name:         name,
		Role:         role,
	})
	require.NoError(t, err)
	return user
}

func identifier(t *testing.T, id uuid.UUID) values.Identifier {
	t.Helper()
	v, err := values.NewIdentifier(id)
	require.NoError(t, err)
	return v
}
