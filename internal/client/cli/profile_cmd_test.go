package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnihub/portal-cli/internal/client/models"
)

func TestProfileCommand_EmbeddedDepartment(t *testing.T) {
	auth := &fakeAuth{user: &models.UserProfile{
		ID:       "u1",
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		JobTitle: "Engineer",
		Batch:    "2015",
		Department: models.DepartmentField{
			ID:  "d1",
			Ref: &models.DepartmentRef{ID: "d1", Name: "Physics", Code: "PHY"},
		},
	}}
	dep := &fakeDepartments{}
	a, out := newTestApp(auth, &fakeAnnouncements{}, dep)

	err := a.Profile(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Jane Doe")
	assert.Contains(t, out.String(), "Physics (PHY)")
	assert.Empty(t, dep.lastID, "embedded department must not trigger a lookup")
}

func TestProfileCommand_ResolvesDepartmentReference(t *testing.T) {
	auth := &fakeAuth{user: &models.UserProfile{
		ID:         "u1",
		Name:       "Jane Doe",
		Batch:      "2015",
		Department: models.DepartmentField{ID: "d1"},
	}}
	dep := &fakeDepartments{item: &models.DepartmentRef{ID: "d1", Name: "Physics", Code: "PHY"}}
	a, out := newTestApp(auth, &fakeAnnouncements{}, dep)

	err := a.Profile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "d1", dep.lastID)
	assert.Contains(t, out.String(), "Physics (PHY)")
}

func TestProfileCommand_LookupFailureFallsBackToID(t *testing.T) {
	auth := &fakeAuth{user: &models.UserProfile{
		ID:         "u1",
		Name:       "Jane Doe",
		Department: models.DepartmentField{ID: "d1"},
	}}
	dep := &fakeDepartments{getErr: errors.New("failed to fetch department")}
	a, out := newTestApp(auth, &fakeAnnouncements{}, dep)

	err := a.Profile(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Dept:  d1")
}

func TestUpdateProfileCommand(t *testing.T) {
	auth := &fakeAuth{user: &models.UserProfile{ID: "u1", Name: "Jane Updated"}}
	a, out := newTestApp(auth, &fakeAnnouncements{}, &fakeDepartments{})

	stubTextInputs(t, "Jane Updated", "", "Principal Engineer")

	err := a.UpdateProfile(context.Background())
	require.NoError(t, err)

	require.NotNil(t, auth.lastUpdate)
	assert.Equal(t, "Jane Updated", auth.lastUpdate.Name)
	assert.Empty(t, auth.lastUpdate.Phone)
	assert.Equal(t, "Principal Engineer", auth.lastUpdate.JobTitle)
	assert.Contains(t, out.String(), "Profile updated for Jane Updated.")
}

func TestUpdateProfileCommand_AllEmptySkipsCall(t *testing.T) {
	auth := &fakeAuth{}
	a, out := newTestApp(auth, &fakeAnnouncements{}, &fakeDepartments{})

	stubTextInputs(t, "", "", "")

	err := a.UpdateProfile(context.Background())
	require.NoError(t, err)
	assert.Nil(t, auth.lastUpdate)
	assert.Contains(t, out.String(), "Nothing to update.")
}

func TestUpdateProfileCommand_ServerError(t *testing.T) {
	auth := &fakeAuth{updateErr: errors.New("profile update failed")}
	a, out := newTestApp(auth, &fakeAnnouncements{}, &fakeDepartments{})

	stubTextInputs(t, "Jane", "", "")

	err := a.UpdateProfile(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Update unsuccessful: profile update failed")
}
