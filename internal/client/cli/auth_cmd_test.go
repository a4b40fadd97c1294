package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumnihub/portal-cli/internal/client/models"
)

func TestLoginCommand_Success(t *testing.T) {
	auth := &fakeAuth{user: &models.UserProfile{ID: "u1", Name: "Jane Doe"}}
	a, out := newTestApp(auth, &fakeAnnouncements{}, &fakeDepartments{})

	stubTextInputs(t, "jane@example.com")
	stubPasswords(t, "secret1")

	err := a.Login(context.Background())
	require.NoError(t, err)

	require.NotNil(t, auth.lastCreds)
	assert.Equal(t, "jane@example.com", auth.lastCreds.Email)
	assert.Equal(t, "secret1", auth.lastCreds.Password)
	assert.Contains(t, out.String(), "Welcome back, Jane Doe!")
}

func TestLoginCommand_ServerRejects(t *testing.T) {
	auth := &fakeAuth{loginErr: errors.New("invalid credentials")}
	a, out := newTestApp(auth, &fakeAnnouncements{}, &fakeDepartments{})

	stubTextInputs(t, "jane@example.com")
	stubPasswords(t, "secret1")

	err := a.Login(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Login unsuccessful: invalid credentials")
}

func TestLoginCommand_LocalValidationBlocksCall(t *testing.T) {
	auth := &fakeAuth{}
	a, out := newTestApp(auth, &fakeAnnouncements{}, &fakeDepartments{})

	stubTextInputs(t, "not-an-email")
	stubPasswords(t, "secret1")

	err := a.Login(context.Background())
	require.NoError(t, err)

	assert.Nil(t, auth.lastCreds)
	assert.Contains(t, out.String(), "Email is invalid")
}

func TestRegisterCommand_Success(t *testing.T) {
	auth := &fakeAuth{user: &models.UserProfile{ID: "u2", Name: "New Grad"}}
	dep := &fakeDepartments{items: []models.DepartmentRef{{ID: "d1", Name: "Physics", Code: "PHY"}}}
	a, out := newTestApp(auth, &fakeAnnouncements{}, dep)

	stubTextInputs(t, "New Grad", "grad@example.com", "2020", "d1", "Engineer", "")
	stubPasswords(t, "secret1", "secret1")

	err := a.Register(context.Background())
	require.NoError(t, err)

	require.NotNil(t, auth.lastReg)
	assert.Equal(t, "grad@example.com", auth.lastReg.Email)
	assert.Equal(t, "d1", auth.lastReg.Department)
	assert.Equal(t, "2020", auth.lastReg.Batch)
	assert.Contains(t, out.String(), "Welcome, New Grad!")
}

func TestRegisterCommand_PasswordMismatch(t *testing.T) {
	auth := &fakeAuth{}
	a, out := newTestApp(auth, &fakeAnnouncements{}, &fakeDepartments{})

	stubTextInputs(t, "New Grad", "grad@example.com", "2020", "d1", "", "")
	stubPasswords(t, "secret1", "different")

	err := a.Register(context.Background())
	require.NoError(t, err)

	assert.Nil(t, auth.lastReg)
	assert.Contains(t, out.String(), "Passwords do not match")
}

func TestLogoutCommand(t *testing.T) {
	auth := &fakeAuth{user: &models.UserProfile{ID: "u1", Name: "Jane"}}
	a, out := newTestApp(auth, &fakeAnnouncements{}, &fakeDepartments{})

	err := a.Logout(context.Background())
	require.NoError(t, err)
	assert.True(t, auth.loggedOut)
	assert.Contains(t, out.String(), "Logged out.")
}
