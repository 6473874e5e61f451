// Package auth owns the console session: login, registration, logout, token
// persistence and the hydration gate that keeps navigation decisions from
// running before the persisted session has been read.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/andrewpaige1/questionbank-console/api"
	"github.com/andrewpaige1/questionbank-console/models"
	"github.com/sirupsen/logrus"
)

const (
	msgConnection      = "Connection error. Check that the server is running."
	msgInternal        = "Internal server error."
	msgBadCredentials  = "Incorrect email or password."
	msgLoginNotFound   = "Login service not found."
	msgLoginFailed     = "Login failed."
	msgInvalidData     = "Invalid data. Check the fields you filled in."
	msgEmailInUse      = "This email is already in use. Try another email."
	msgRegisterMissing = "Registration service not found."
	msgRegisterFailed  = "Account creation failed."
)

var errMissingToken = errors.New("auth: token missing from response")

// Storage is the durable key-value storage the session is persisted in.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(keys ...string) error
}

type Service interface {
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Logout(ctx context.Context) error
}

// State is a snapshot of the session.
type State struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *models.User `json:"user"`
	Token           string       `json:"-"`
	Loading         bool         `json:"loading"`
	Error           string       `json:"error,omitempty"`
	Mounted         bool         `json:"mounted"`
}

// Manager is the session manager. It starts unmounted and loading; Init
// hydrates it from storage.
type Manager struct {
	svc     Service
	storage Storage
	log     *logrus.Entry

	mu     sync.RWMutex
	state  State
	cookie *http.Cookie
}

func NewManager(svc Service, storage Storage, log *logrus.Entry) *Manager {
	return &Manager{
		svc:     svc,
		storage: storage,
		log:     log.WithField("component", "session"),
		state:   State{Loading: true},
	}
}

// Init restores a persisted session. A token and a user that parses make the
// session authenticated; unreadable or corrupt state wipes every persisted
// auth artifact. Either way the manager ends up mounted.
func (m *Manager) Init() {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() {
		m.state.Mounted = true
		m.state.Loading = false
	}()

	token, hasToken, err := m.storage.Get(TokenKey)
	var rawUser string
	var hasUser bool
	if err == nil {
		rawUser, hasUser, err = m.storage.Get(UserKey)
	}
	if err != nil {
		m.log.WithError(err).Error("Init: failed to read persisted session")
		m.wipe()
		return
	}

	if !hasToken || token == "" || !hasUser {
		m.state.IsAuthenticated = false
		m.state.User = nil
		m.state.Token = ""
		return
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		m.log.WithError(err).Error("Init: persisted user is corrupt")
		m.wipe()
		return
	}

	m.state.IsAuthenticated = true
	m.state.User = &user
	m.state.Token = token
}

// Login authenticates and persists the session. It reports success; on
// failure State().Error carries the user-facing message.
func (m *Manager) Login(ctx context.Context, email, password string) bool {
	m.start()

	resp, err := m.svc.Login(ctx, models.LoginRequest{
		Email:    strings.TrimSpace(email),
		Password: strings.TrimSpace(password),
	})
	if err == nil && resp.AccessToken == "" {
		err = errMissingToken
	}
	if err != nil {
		m.fail("Login", err, loginMessage(err))
		return false
	}

	m.establish(resp)
	return true
}

// Register creates an account and signs it in.
func (m *Manager) Register(ctx context.Context, name, email, password string) bool {
	m.start()

	resp, err := m.svc.Register(ctx, models.RegisterRequest{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: strings.TrimSpace(password),
	})
	if err == nil && resp.AccessToken == "" {
		err = errMissingToken
	}
	if err != nil {
		m.fail("Register", err, registerMessage(err))
		return false
	}

	m.establish(resp)
	return true
}

// Logout tells the API, ignoring any failure, then clears the session.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.state.Loading = true
	m.mu.Unlock()

	if err := m.svc.Logout(ctx); err != nil {
		m.log.WithError(err).Warn("Logout: server notification failed")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.wipe()
	m.state.Loading = false
}

func (m *Manager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Error = ""
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.state
	if s.User != nil {
		user := *s.User
		s.User = &user
	}
	return s
}

// Token implements api.TokenSource with the in-memory session token.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Token
}

// Cookie returns the token cookie to mirror after the last login or wipe, or
// nil when nothing changed since hydration.
func (m *Manager) Cookie() *http.Cookie {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.cookie == nil {
		return nil
	}
	c := *m.cookie
	return &c
}

func (m *Manager) start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Loading = true
	m.state.Error = ""
}

func (m *Manager) fail(op string, err error, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log.WithError(err).WithField("status", api.StatusOf(err)).Warnf("%s: %s", op, msg)
	m.state.Error = msg
	m.state.Loading = false
}

// establish persists and activates an authenticated session. Storage write
// failures are logged; the in-memory session is still valid.
func (m *Manager) establish(resp models.AuthResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user := resp.User
	if err := m.storage.Set(TokenKey, resp.AccessToken); err != nil {
		m.log.WithError(err).Warn("establish: failed to persist token")
	}
	if raw, err := json.Marshal(user); err != nil {
		m.log.WithError(err).Warn("establish: failed to encode user")
	} else if err := m.storage.Set(UserKey, string(raw)); err != nil {
		m.log.WithError(err).Warn("establish: failed to persist user")
	}

	m.cookie = AuthCookie(resp.AccessToken)
	m.state.IsAuthenticated = true
	m.state.User = &user
	m.state.Token = resp.AccessToken
	m.state.Loading = false
	m.log.WithField("user_id", user.ID).Info("session established")
}

// wipe clears every persisted auth artifact. Callers hold the lock.
func (m *Manager) wipe() {
	if err := m.storage.Delete(TokenKey, UserKey); err != nil {
		m.log.WithError(err).Warn("wipe: failed to clear persisted session")
	}
	m.cookie = ExpiredCookie()
	m.state.IsAuthenticated = false
	m.state.User = nil
	m.state.Token = ""
}

func loginMessage(err error) string {
	if api.IsNetwork(err) {
		return msgConnection
	}
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return msgLoginFailed
	}
	switch apiErr.Status {
	case http.StatusUnauthorized:
		if msg := apiErr.ServerMessage(); msg != "" {
			return msg
		}
		return msgBadCredentials
	case http.StatusNotFound:
		return msgLoginNotFound
	case http.StatusInternalServerError:
		return msgInternal
	}
	return msgLoginFailed
}

func registerMessage(err error) string {
	if api.IsNetwork(err) {
		return msgConnection
	}
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return msgRegisterFailed
	}
	switch apiErr.Status {
	case http.StatusBadRequest:
		if msg := apiErr.ServerMessage(); msg != "" {
			return msg
		}
		return msgInvalidData
	case http.StatusConflict:
		return msgEmailInUse
	case http.StatusNotFound:
		return msgRegisterMissing
	case http.StatusInternalServerError:
		return msgInternal
	}
	return msgRegisterFailed
}
