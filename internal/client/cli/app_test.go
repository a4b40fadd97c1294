package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/alumnihub/portal-cli/internal/client/api"
	"github.com/alumnihub/portal-cli/internal/client/models"
	"github.com/alumnihub/portal-cli/internal/client/services"
)

// fakeAuth implements services.AuthService for command tests.
type fakeAuth struct {
	user *models.UserProfile

	restoreErr error
	loginErr   error
	regErr     error
	profileErr error
	updateErr  error
	logoutErr  error
	pingErr    error

	lastCreds  *services.Credentials
	lastReg    *services.Registration
	lastUpdate *services.ProfileUpdate
	loggedOut  bool
}

func (f *fakeAuth) Restore(ctx context.Context) error { return f.restoreErr }

func (f *fakeAuth) Login(ctx context.Context, creds services.Credentials) (*models.UserProfile, error) {
	f.lastCreds = &creds
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}

func (f *fakeAuth) Register(ctx context.Context, reg services.Registration) (*models.UserProfile, error) {
	f.lastReg = &reg
	if f.regErr != nil {
		return nil, f.regErr
	}
	return f.user, nil
}

func (f *fakeAuth) Profile(ctx context.Context) (*models.UserProfile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.user, nil
}

func (f *fakeAuth) UpdateProfile(ctx context.Context, update services.ProfileUpdate) (*models.UserProfile, error) {
	f.lastUpdate = &update
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.user, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.loggedOut = true
	return f.logoutErr
}

func (f *fakeAuth) CurrentUser() *models.UserProfile { return f.user }
func (f *fakeAuth) IsAuthenticated() bool { return f.user != nil }
func (f *fakeAuth) State() services.State {
	if f.user != nil {
		return services.StateAuthenticated
	}
	return services.StateAnonymous
}
func (f *fakeAuth) HandleSessionInvalid()          {}
func (f *fakeAuth) Ping(ctx context.Context) error { return f.pingErr }

type fakeAnnouncements struct {
	items      []models.Announcement
	pagination *api.Pagination
	item       *models.Announcement
	created    *models.Announcement

	listErr   error
	getErr    error
	createErr error

	lastPage   int
	lastLimit  int
	lastID     string
	lastCreate *models.NewAnnouncement
}

func (f *fakeAnnouncements) List(ctx context.Context) ([]models.Announcement, error) {
	return f.items, f.listErr
}

func (f *fakeAnnouncements) Paginated(ctx context.Context, page, limit int) ([]models.Announcement, *api.Pagination, error) {
	f.lastPage, f.lastLimit = page, limit
	return f.items, f.pagination, f.listErr
}

func (f *fakeAnnouncements) GetByID(ctx context.Context, id string) (*models.Announcement, error) {
	f.lastID = id
	return f.item, f.getErr
}

func (f *fakeAnnouncements) Create(ctx context.Context, data models.NewAnnouncement) (*models.Announcement, error) {
	f.lastCreate = &data
	return f.created, f.createErr
}

type fakeDepartments struct {
	items   []models.DepartmentRef
	item    *models.DepartmentRef
	listErr error
	getErr  error
	lastID  string
}

func (f *fakeDepartments) List(ctx context.Context) ([]models.DepartmentRef, error) {
	return f.items, f.listErr
}

func (f *fakeDepartments) GetByID(ctx context.Context, id string) (*models.DepartmentRef, error) {
	f.lastID = id
	return f.item, f.getErr
}

// newTestApp wires an App around fakes, with output captured in a buffer.
func newTestApp(auth *fakeAuth, ann *fakeAnnouncements, dep *fakeDepartments) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	a := &App{
		auth:          auth,
		announcements: ann,
		departments:   dep,
		reader:        bufio.NewReader(strings.NewReader("")),
		out:           out,
		mode:          ModeOnline,
	}
	return a, out
}

// stubTextInputs replaces the line-input seam with a queue of canned answers.
func stubTextInputs(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if len(answers) == 0 {
			t.Fatalf("unexpected prompt: %q", prompt)
		}
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

// stubPasswords replaces the password seam with a queue of canned passwords.
func stubPasswords(t *testing.T, passwords ...string) {
	t.Helper()
	orig := getPassword
	getPassword = func(w io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			t.Fatal("unexpected password prompt")
		}
		next := passwords[0]
		passwords = passwords[1:]
		return []byte(next), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func stubMultiline(t *testing.T, text string) {
	t.Helper()
	orig := getMultiline
	getMultiline = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return text, nil
	}
	t.Cleanup(func() { getMultiline = orig })
}
