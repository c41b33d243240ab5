package db

import (
	"testing"

	"github.com/XeryusTC/projman/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProject(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")
	bob := testUser(t, db, "bob@test.org")

	project, err := db.CreateProject(alice.ID, "Website", "company site")
	require.NoError(t, err)
	assert.Equal(t, "Website", project.Name)

	// Duplicate name for the same owner is rejected
	_, err = db.CreateProject(alice.ID, "Website", "")
	assert.ErrorIs(t, err, model.ErrDuplicateProject)

	// A different owner can reuse the name
	_, err = db.CreateProject(bob.ID, "Website", "")
	assert.NoError(t, err)

	_, err = db.CreateProject(alice.ID, "", "")
	assert.ErrorIs(t, err, model.ErrEmptyName)
}

func TestCreateProjectReservedName(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")

	// The default project already occupies the reserved name
	_, err := db.CreateProject(alice.ID, model.DefaultProjectName, "")
	assert.ErrorIs(t, err, model.ErrDuplicateProject)
}

func TestGetProjectsListsDefaultFirst(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")

	_, err := db.CreateProject(alice.ID, "Aquarium", "")
	require.NoError(t, err)

	projects, err := db.GetProjects(alice.ID)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, model.DefaultProjectName, projects[0].Name)
	assert.Equal(t, "Aquarium", projects[1].Name)
}

func TestGetProjectsCountsActions(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")

	a, err := db.CreateAction(alice.ID, "one", nil)
	require.NoError(t, err)
	_, err = db.CreateAction(alice.ID, "two", nil)
	require.NoError(t, err)
	_, err = db.ToggleActionComplete(alice.ID, a.ID)
	require.NoError(t, err)

	projects, err := db.GetProjects(alice.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, 2, projects[0].ActionCount)
	assert.Equal(t, 1, projects[0].CompletedCount)
}

func TestGetProjectHidesForeignProjects(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")
	bob := testUser(t, db, "bob@test.org")

	project, err := db.CreateProject(alice.ID, "Website", "")
	require.NoError(t, err)

	_, err = db.GetProject(bob.ID, project.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUpdateProject(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")

	project, err := db.CreateProject(alice.ID, "Website", "old")
	require.NoError(t, err)

	updated, err := db.UpdateProject(alice.ID, project.ID, "Homepage", "new")
	require.NoError(t, err)
	assert.Equal(t, "Homepage", updated.Name)
	assert.Equal(t, "new", updated.Description)

	// Editing only the description keeps the name without a false
	// duplicate against itself
	_, err = db.UpdateProject(alice.ID, project.ID, "Homepage", "newer")
	assert.NoError(t, err)
}

func TestUpdateProjectDuplicateName(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")

	_, err := db.CreateProject(alice.ID, "Website", "")
	require.NoError(t, err)
	other, err := db.CreateProject(alice.ID, "Garden", "")
	require.NoError(t, err)

	_, err = db.UpdateProject(alice.ID, other.ID, "Website", "")
	assert.ErrorIs(t, err, model.ErrDuplicateProject)
}

func TestDefaultProjectIsProtected(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")
	bob := testUser(t, db, "bob@test.org")

	deflt, err := db.DefaultProject(alice.ID)
	require.NoError(t, err)

	// Not editable or deletable, not even by its owner
	_, err = db.UpdateProject(alice.ID, deflt.ID, "Renamed", "")
	assert.ErrorIs(t, err, model.ErrForbidden)
	err = db.DeleteProject(alice.ID, deflt.ID)
	assert.ErrorIs(t, err, model.ErrForbidden)

	// Other users just get not found
	_, err = db.UpdateProject(bob.ID, deflt.ID, "Renamed", "")
	assert.ErrorIs(t, err, model.ErrNotFound)

	// Still there
	_, err = db.DefaultProject(alice.ID)
	assert.NoError(t, err)
}

func TestDeleteProjectRemovesActions(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")

	website, err := db.CreateProject(alice.ID, "Website", "")
	require.NoError(t, err)
	action, err := db.CreateAction(alice.ID, "Fix bug", &website.ID)
	require.NoError(t, err)

	require.NoError(t, db.DeleteProject(alice.ID, website.ID))

	_, err = db.GetAction(alice.ID, action.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteProjectWrongUser(t *testing.T) {
	db := testDB(t)
	alice := testUser(t, db, "alice@test.org")
	bob := testUser(t, db, "bob@test.org")

	website, err := db.CreateProject(alice.ID, "Website", "")
	require.NoError(t, err)

	err = db.DeleteProject(bob.ID, website.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = db.GetProject(alice.ID, website.ID)
	assert.NoError(t, err)
}
