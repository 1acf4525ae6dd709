package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/room-escape-reservation/internal/model"
)

func TestThemeRepo_CRUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	saved := f.theme(t, "공포")
	got, err := f.themes.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, *got)

	exists, err := f.themes.ExistsByName(ctx, "공포")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, f.themes.DeleteByID(ctx, saved.ID))
	_, err = f.themes.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestThemeRepo_DuplicateName(t *testing.T) {
	f := newFixture(t)
	f.theme(t, "공포")

	err := f.themes.Create(context.Background(), &model.Theme{Name: "공포"})

	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestThemeRepo_DeleteMissingIsNoError(t *testing.T) {
	f := newFixture(t)

	assert.NoError(t, f.themes.DeleteByID(context.Background(), 99))
}
