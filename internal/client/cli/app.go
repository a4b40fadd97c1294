package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/alumnihub/portal-cli/internal/client/api"
	"github.com/alumnihub/portal-cli/internal/client/config"
	"github.com/alumnihub/portal-cli/internal/client/services"
	"github.com/alumnihub/portal-cli/internal/client/session"
	"github.com/alumnihub/portal-cli/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App holds the wired-together client: services, session storage, and the
// I/O the REPL works with.
type App struct {
	config        *config.Config
	auth          services.AuthService
	announcements services.AnnouncementService
	departments   services.DepartmentService
	db            *sql.DB
	log           logging.Logger

	reader *bufio.Reader
	out    io.Writer

	mu   sync.Mutex
	mode Mode
}

// NewApp opens the local session database, builds the HTTP pipeline against
// the configured base URL, and wires the 401 session-invalidated signal to
// the auth controller.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewNop()
	}

	ctx := context.Background()

	store, db, err := session.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}

	apiClient := api.New(c.BaseURL, store, log)
	apiClient.SetTimeout(c.RequestTimeout)

	auth := services.NewAuthService(apiClient, store, log)

	a := &App{
		config:        c,
		auth:          auth,
		announcements: services.NewAnnouncementService(apiClient),
		departments:   services.NewDepartmentService(apiClient),
		db:            db,
		log:           log,
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
		mode:          ModeOnline,
	}

	apiClient.OnSessionInvalid(func() {
		auth.HandleSessionInvalid()
		fmt.Fprintln(a.out, "Session expired, please log in again.")
	})

	return a, nil
}

// Run restores the persisted session and drives the REPL until the user
// exits. The database is closed on return.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// StartOnlineStatusWatcher probes the health endpoint on a fixed interval
// and flips the prompt's online/offline marker.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.auth.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
