package db

import (
	"testing"

	"github.com/XeryusTC/projman/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettings(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")

	updated, err := db.UpdateSettings(alice.ID, "nl", false, true)
	require.NoError(t, err)
	assert.Equal(t, "nl", updated.Language)
	assert.False(t, updated.InlistDeleteConfirm)
	assert.True(t, updated.ActionDeleteConfirm)

	got, err := db.GetSettings(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateSettingsInvalidLanguage(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")

	_, err := db.UpdateSettings(alice.ID, "not a tag!", true, true)
	assert.ErrorIs(t, err, model.ErrInvalidLanguage)

	// Settings are unchanged
	got, err := db.GetSettings(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "en", got.Language)
}

func TestSettingsForUnknownUser(t *testing.T) {
	db := testDB(t)

	_, err := db.GetSettings(42)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = db.UpdateSettings(42, "en", true, true)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
