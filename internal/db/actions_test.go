package db

import (
	"testing"
	"time"

	"github.com/XeryusTC/projman/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateActionDefaultsToActionsProject(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")

	action, err := db.CreateAction(alice.ID, "Fix bug", nil)
	require.NoError(t, err)

	deflt, err := db.DefaultProject(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, deflt.ID, action.ProjectID)
}

func TestCreateActionUniquenessScopedByProject(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")
	website, err := db.CreateProject(alice.ID, "Website", "")
	require.NoError(t, err)

	_, err = db.CreateAction(alice.ID, "Fix bug", nil)
	require.NoError(t, err)

	// Same text in the same (default) project is rejected
	_, err = db.CreateAction(alice.ID, "Fix bug", nil)
	assert.ErrorIs(t, err, model.ErrDuplicateAction)

	// Same text in a different project is fine
	_, err = db.CreateAction(alice.ID, "Fix bug", &website.ID)
	assert.NoError(t, err)

	// And again in that project is rejected
	_, err = db.CreateAction(alice.ID, "Fix bug", &website.ID)
	assert.ErrorIs(t, err, model.ErrDuplicateAction)
}

func TestCreateActionSameTextDifferentOwners(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")
	bob := testUser(t, db, "bob@test.org")

	_, err := db.CreateAction(alice.ID, "Call mom", nil)
	require.NoError(t, err)
	_, err = db.CreateAction(bob.ID, "Call mom", nil)
	assert.NoError(t, err)
}

func TestCreateActionRejectsForeignProject(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")
	bob := testUser(t, db, "bob@test.org")
	bobProject, err := db.CreateProject(bob.ID, "Secret", "")
	require.NoError(t, err)

	_, err = db.CreateAction(alice.ID, "Spy on bob", &bobProject.ID)
	assert.ErrorIs(t, err, model.ErrInvalidOwner)

	actions, err := db.GetProjectActions(bob.ID, bobProject.ID)
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestCreateActionEmptyText(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")

	_, err := db.CreateAction(alice.ID, "", nil)
	assert.ErrorIs(t, err, model.ErrEmptyText)
}

func TestToggleActionComplete(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")

	action, err := db.CreateAction(alice.ID, "Fix bug", nil)
	require.NoError(t, err)
	require.False(t, action.Complete)

	toggled, err := db.ToggleActionComplete(alice.ID, action.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Complete)

	// Toggling twice returns it to its original state
	toggled, err = db.ToggleActionComplete(alice.ID, action.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Complete)
}

func TestToggleActionCompleteWrongUser(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")
	bob := testUser(t, db, "bob@test.org")

	action, err := db.CreateAction(alice.ID, "Fix bug", nil)
	require.NoError(t, err)

	_, err = db.ToggleActionComplete(bob.ID, action.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// State is unchanged
	got, err := db.GetAction(alice.ID, action.ID)
	require.NoError(t, err)
	assert.False(t, got.Complete)
}

func TestUpdateActionMove(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")
	website, err := db.CreateProject(alice.ID, "Website", "")
	require.NoError(t, err)

	action, err := db.CreateAction(alice.ID, "Fix bug", nil)
	require.NoError(t, err)

	moved, err := db.UpdateAction(alice.ID, action.ID, action.Text, website.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, website.ID, moved.ProjectID)

	// Moving back to the default project also works
	deflt, err := db.DefaultProject(alice.ID)
	require.NoError(t, err)
	moved, err = db.UpdateAction(alice.ID, action.ID, action.Text, deflt.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, deflt.ID, moved.ProjectID)
}

func TestUpdateActionMoveIntoDuplicateRejected(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")
	website, err := db.CreateProject(alice.ID, "Website", "")
	require.NoError(t, err)

	action, err := db.CreateAction(alice.ID, "Fix bug", nil)
	require.NoError(t, err)
	_, err = db.CreateAction(alice.ID, "Fix bug", &website.ID)
	require.NoError(t, err)

	_, err = db.UpdateAction(alice.ID, action.ID, "Fix bug", website.ID, nil)
	assert.ErrorIs(t, err, model.ErrDuplicateAction)

	// The action did not move
	got, err := db.GetAction(alice.ID, action.ID)
	require.NoError(t, err)
	assert.NotEqual(t, website.ID, got.ProjectID)
}

func TestUpdateActionDeadlineOnly(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")

	action, err := db.CreateAction(alice.ID, "Fix bug", nil)
	require.NoError(t, err)
	require.Nil(t, action.Deadline)

	deadline := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

	// Keeping text and project while setting a deadline must not
	// collide with the action itself
	updated, err := db.UpdateAction(alice.ID, action.ID, action.Text, action.ProjectID, &deadline)
	require.NoError(t, err)
	require.NotNil(t, updated.Deadline)
	assert.True(t, updated.Deadline.Equal(deadline))
}

func TestUpdateActionRenameToDuplicateRejected(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")

	_, err := db.CreateAction(alice.ID, "Fix bug", nil)
	require.NoError(t, err)
	other, err := db.CreateAction(alice.ID, "Write docs", nil)
	require.NoError(t, err)

	_, err = db.UpdateAction(alice.ID, other.ID, "Fix bug", other.ProjectID, nil)
	assert.ErrorIs(t, err, model.ErrDuplicateAction)
}

func TestUpdateActionMoveToForeignProjectRejected(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")
	bob := testUser(t, db, "bob@test.org")
	bobProject, err := db.CreateProject(bob.ID, "Secret", "")
	require.NoError(t, err)

	action, err := db.CreateAction(alice.ID, "Fix bug", nil)
	require.NoError(t, err)

	_, err = db.UpdateAction(alice.ID, action.ID, action.Text, bobProject.ID, nil)
	assert.ErrorIs(t, err, model.ErrInvalidOwner)
}

func TestDeleteAction(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")
	bob := testUser(t, db, "bob@test.org")

	action, err := db.CreateAction(alice.ID, "Ship it", nil)
	require.NoError(t, err)

	// A non-owner cannot delete it; the action remains in storage
	err = db.DeleteAction(bob.ID, action.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = db.GetAction(alice.ID, action.ID)
	assert.NoError(t, err)

	require.NoError(t, db.DeleteAction(alice.ID, action.ID))
	_, err = db.GetAction(alice.ID, action.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestGetActionsOrdersIncompleteFirst(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")

	first, err := db.CreateAction(alice.ID, "first", nil)
	require.NoError(t, err)
	_, err = db.CreateAction(alice.ID, "second", nil)
	require.NoError(t, err)

	_, err = db.ToggleActionComplete(alice.ID, first.ID)
	require.NoError(t, err)

	actions, err := db.GetActions(alice.ID)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, "second", actions[0].Text)
	assert.Equal(t, "first", actions[1].Text)
}
