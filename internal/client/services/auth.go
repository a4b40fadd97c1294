// Package services contains application services for the portal client.
// This file defines the auth state controller: login, register, logout,
// profile fetch/update, and restoration of a persisted session at startup.
package services

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/alumnihub/portal-cli/internal/client/api"
	"github.com/alumnihub/portal-cli/internal/client/models"
	"github.com/alumnihub/portal-cli/internal/client/session"
	"github.com/alumnihub/portal-cli/internal/logging"
)

// State is the controller's derived authentication state. Exactly one of
// StateAnonymous/StateAuthenticated holds at any settled time;
// StateTransitioning is observable while a network operation is in flight
// but does not lock out concurrent submissions.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
	StateTransitioning State = "transitioning"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the register payload. Department carries the department
// reference id chosen from the department list.
type Registration struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Batch      string `json:"batch"`
	Department string `json:"department"`
	JobTitle   string `json:"job_title,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// ProfileUpdate is a partial profile change. Zero fields are omitted from
// the request; the server merges and returns the authoritative result.
type ProfileUpdate struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	JobTitle string `json:"job_title,omitempty"`
}

// authPayload is the data section of login/register responses.
type authPayload struct {
	Token  string              `json:"token"`
	Alumni *models.UserProfile `json:"alumni"`
}

// Doer is the request pipeline the services depend on. *api.Client
// satisfies it.
type Doer interface {
	Do(ctx context.Context, method, path string, body any, out any) error
	Ping(ctx context.Context) error
}

// AuthService owns the in-memory session for the lifetime of the process
// and keeps it consistent with the durable session store.
//
// Contract:
//   - Restore: adopt a persisted session at startup without a network call.
//   - Login / Register: authenticate, persist token+user, enter
//     StateAuthenticated; on failure stay StateAnonymous and surface the
//     normalized error.
//   - Profile: fetch the current profile (no state change).
//   - UpdateProfile: send a partial change; on success the server's
//     returned object replaces the in-memory and persisted user wholesale.
//   - Logout: clear everything unconditionally; idempotent.
//   - HandleSessionInvalid: out-of-band logout signal from the request
//     pipeline's 401 policy (the durable store is already cleared by then).
type AuthService interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, creds Credentials) (*models.UserProfile, error)
	Register(ctx context.Context, reg Registration) (*models.UserProfile, error)
	Profile(ctx context.Context) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.UserProfile, error)
	Logout(ctx context.Context) error
	CurrentUser() *models.UserProfile
	IsAuthenticated() bool
	State() State
	HandleSessionInvalid()
	Ping(ctx context.Context) error
}

type authService struct {
	api   Doer
	store session.Store
	log   logging.Logger

	mu    sync.Mutex
	state State
	user  *models.UserProfile
}

// NewAuthService constructs an AuthService bound to the given request
// pipeline and session store. The controller starts in StateUninitialized;
// call Restore before anything else.
func NewAuthService(apiClient Doer, store session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.NewNop()
	}
	return &authService{api: apiClient, store: store, log: log, state: StateUninitialized}
}

// Restore reads the persisted session and settles the initial state. A
// cached user is trusted without revalidating the token against the server;
// validity is re-checked lazily on the first 401. The one exception is a
// token that parses as a JWT with an expiry already in the past: that
// session is dead for certain, so it is cleared up front.
func (a *authService) Restore(ctx context.Context) error {
	user, err := a.store.User(ctx)
	if err != nil {
		return err
	}

	if user == nil {
		a.setSession(nil, StateAnonymous)
		return nil
	}

	token, err := a.store.Token(ctx)
	if err != nil {
		return err
	}

	if tokenExpired(token) {
		a.log.Info(ctx, "cached session expired, clearing")
		if err := a.store.Clear(ctx); err != nil {
			return err
		}
		a.setSession(nil, StateAnonymous)
		return nil
	}

	a.setSession(user, StateAuthenticated)
	return nil
}

// tokenExpired reports whether token is a JWT whose exp claim is in the
// past. Opaque tokens and JWTs without an exp claim are never considered
// expired here; the server remains the authority.
func tokenExpired(token string) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (a *authService) Login(ctx context.Context, creds Credentials) (*models.UserProfile, error) {
	return a.authenticate(ctx, api.PathLogin, creds, "invalid credentials")
}

func (a *authService) Register(ctx context.Context, reg Registration) (*models.UserProfile, error) {
	return a.authenticate(ctx, api.PathRegister, reg, "an error occurred during registration")
}

// authenticate runs the shared login/register flow: POST the payload,
// persist token+user from the response, and settle in StateAuthenticated.
func (a *authService) authenticate(ctx context.Context, path string, body any, fallback string) (*models.UserProfile, error) {
	a.setState(StateTransitioning)

	var env api.Envelope[authPayload]
	if err := a.api.Do(ctx, http.MethodPost, path, body, &env); err != nil {
		a.settle()
		return nil, api.Fallback(err, fallback)
	}

	if !env.Success || env.Data.Token == "" || env.Data.Alumni == nil {
		a.settle()
		return nil, &api.Error{Message: orDefault(env.Message, fallback)}
	}

	if err := a.store.Save(ctx, env.Data.Token, env.Data.Alumni); err != nil {
		a.settle()
		return nil, err
	}

	a.setSession(env.Data.Alumni, StateAuthenticated)
	return env.Data.Alumni, nil
}

func (a *authService) Profile(ctx context.Context) (*models.UserProfile, error) {
	var env api.Envelope[*models.UserProfile]
	if err := a.api.Do(ctx, http.MethodGet, api.PathProfile, nil, &env); err != nil {
		return nil, api.Fallback(err, "failed to fetch profile")
	}
	if !env.Success || env.Data == nil {
		return nil, &api.Error{Message: orDefault(env.Message, "failed to fetch profile")}
	}
	return env.Data, nil
}

func (a *authService) UpdateProfile(ctx context.Context, update ProfileUpdate) (*models.UserProfile, error) {
	a.setState(StateTransitioning)

	var env api.Envelope[*models.UserProfile]
	if err := a.api.Do(ctx, http.MethodPut, api.PathProfile, update, &env); err != nil {
		a.settle()
		return nil, api.Fallback(err, "failed to update profile")
	}

	if !env.Success || env.Data == nil {
		a.settle()
		return nil, &api.Error{Message: orDefault(env.Message, "failed to update profile")}
	}

	// The server is the source of truth for the merged result; no local
	// merge happens here.
	token, err := a.store.Token(ctx)
	if err == nil && token != "" {
		if err := a.store.Save(ctx, token, env.Data); err != nil {
			a.log.Error(ctx, "failed to persist updated profile", "error", err)
		}
	}

	a.setSession(env.Data, StateAuthenticated)
	return env.Data, nil
}

// Logout clears the durable session and the in-memory user. Calling it
// twice produces the same end state as calling it once.
func (a *authService) Logout(ctx context.Context) error {
	err := a.store.Clear(ctx)
	a.setSession(nil, StateAnonymous)
	return err
}

// HandleSessionInvalid is invoked by the request pipeline after any 401.
// It may race a user-initiated mutation; whichever runs last still leaves
// the controller anonymous with an empty store.
func (a *authService) HandleSessionInvalid() {
	a.setSession(nil, StateAnonymous)
}

func (a *authService) CurrentUser() *models.UserProfile {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

func (a *authService) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state == StateAuthenticated
}

func (a *authService) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *authService) Ping(ctx context.Context) error {
	return a.api.Ping(ctx)
}

func (a *authService) setSession(user *models.UserProfile, state State) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = user
	a.state = state
}

func (a *authService) setState(state State) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = state
}

// settle returns from StateTransitioning to whichever settled state the
// current user implies.
func (a *authService) settle() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user != nil {
		a.state = StateAuthenticated
	} else {
		a.state = StateAnonymous
	}
}

func orDefault(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
