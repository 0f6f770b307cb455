// Package services contains the application services used by the CLI.
// This file defines the authentication service: registration, login, the
// single persisted session of this device and its lazy expiry.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/lifecalc/internal/auth"
	"github.com/dmitrijs2005/lifecalc/internal/common"
	"github.com/dmitrijs2005/lifecalc/internal/cryptox"
	"github.com/dmitrijs2005/lifecalc/internal/dbx"
	"github.com/dmitrijs2005/lifecalc/internal/logging"
	"github.com/dmitrijs2005/lifecalc/internal/models"
	"github.com/dmitrijs2005/lifecalc/internal/repositories/metadata"
	"github.com/dmitrijs2005/lifecalc/internal/repositories/users"
	"github.com/go-playground/validator/v10"
)

// Metadata keys of the persisted session.
const (
	sessionPrefix    = "session."
	sessionKeyToken  = sessionPrefix + "token"
	sessionKeyExpiry = sessionPrefix + "expiry"
	sessionKeyUser   = sessionPrefix + "user"
)

// Demo account created on first start.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password123"
	DemoName     = "Demo User"
	DemoPhone    = "9876543210"
)

// Status is the result of CheckStatus. At most one of LoggedIn and
// TokenExpired is set; TokenExpired is reported only by the check that found
// the session expired.
type Status struct {
	LoggedIn     bool
	User         *models.User
	TokenExpired bool
}

// RegisterRequest is the input of Register.
type RegisterRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Name     string `validate:"max=100"`
	Phone    string `validate:"omitempty,numeric,len=10"`
}

// AuthService gates access to per-user data.
//
// Contract:
//   - Register: create an account; duplicate email or phone is rejected.
//   - Login: check credentials and persist a new session, replacing any previous one.
//   - CheckStatus: report the session state, logging out an expired session.
//   - Logout: forget the session; safe to call without one.
//   - CurrentUser: the user of the active session or common.ErrNotLoggedIn.
//   - SeedDemoUser: create the demo account when no users exist yet.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*models.Session, error)
	CheckStatus(ctx context.Context) (Status, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	SeedDemoUser(ctx context.Context) (bool, error)
}

type authService struct {
	db       *sql.DB
	secret   []byte
	ttl      time.Duration
	logger   logging.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewAuthService builds an AuthService storing users and the session in db.
// Sessions are signed with secretKey and last ttl.
func NewAuthService(db *sql.DB, secretKey []byte, ttl time.Duration, logger logging.Logger) AuthService {
	return newAuthService(db, secretKey, ttl, logger)
}

func newAuthService(db *sql.DB, secretKey []byte, ttl time.Duration, logger logging.Logger) *authService {
	return &authService{
		db:       db,
		secret:   secretKey,
		ttl:      ttl,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates req and stores a new user with a password credential.
// Invalid input yields common.ErrInvalidRegistration; a taken email or phone
// yields common.ErrEmailTaken or common.ErrPhoneTaken.
func (a *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)

	if err := a.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrInvalidRegistration, describeValidation(err))
	}

	salt, verifier := cryptox.NewCredential([]byte(req.Password))
	now := a.now().UTC()

	user := &models.User{
		Email:     req.Email,
		Phone:     req.Phone,
		Name:      req.Name,
		Salt:      salt,
		Verifier:  verifier,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)

		if err := ensureFree(ctx, repo.GetByEmail, req.Email, common.ErrEmailTaken); err != nil {
			return err
		}
		if req.Phone != "" {
			if err := ensureFree(ctx, repo.GetByPhone, req.Phone, common.ErrPhoneTaken); err != nil {
				return err
			}
		}

		_, err := repo.Create(ctx, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "User registered", "user_id", user.ID)
	return user, nil
}

func ensureFree(ctx context.Context, lookup func(context.Context, string) (*models.User, error), key string, taken error) error {
	_, err := lookup(ctx, key)
	switch {
	case err == nil:
		return taken
	case errors.Is(err, common.ErrorNotFound):
		return nil
	default:
		return err
	}
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, "email must be a valid email address")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		case "numeric", "len":
			msgs = append(msgs, field+" must be 10 digits")
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}

// Login checks the credentials and persists a new session valid for the
// configured ttl. Unknown email and wrong password both yield
// common.ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	repo := users.NewSQLiteRepository(a.db)

	user, err := repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.logger.Warn(ctx, "Login failed", "reason", "unknown email")
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !cryptox.CheckCredential(password, user.Salt, user.Verifier) {
		a.logger.Warn(ctx, "Login failed", "reason", "wrong password", "user_id", user.ID)
		return nil, common.ErrInvalidCredentials
	}

	now := a.now()
	expiresAt := now.Add(a.ttl).Truncate(time.Second)

	token, err := auth.GenerateToken(user.ID, a.secret, now, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	session := &models.Session{Token: token, ExpiresAt: expiresAt.UTC(), User: *user}
	if err := a.saveSession(ctx, session); err != nil {
		return nil, err
	}

	a.logger.Info(ctx, "User logged in", "user_id", user.ID, "expires_at", session.ExpiresAt)
	return session, nil
}

// saveSession overwrites every session key in a single transaction.
func (a *authService) saveSession(ctx context.Context, s *models.Session) error {
	snapshot, err := json.Marshal(s.User)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		if err := repo.Set(ctx, sessionKeyToken, []byte(s.Token)); err != nil {
			return err
		}
		if err := repo.Set(ctx, sessionKeyExpiry, []byte(s.ExpiresAt.Format(time.RFC3339))); err != nil {
			return err
		}
		if err := repo.Set(ctx, sessionKeyUser, snapshot); err != nil {
			return err
		}
		return nil
	})
}

// loadSession returns nil when no complete session is stored.
func (a *authService) loadSession(ctx context.Context) (*models.Session, error) {
	kv, err := metadata.NewSQLiteRepository(a.db).List(ctx, sessionPrefix)
	if err != nil {
		return nil, err
	}

	token, expiry, user := kv[sessionKeyToken], kv[sessionKeyExpiry], kv[sessionKeyUser]
	if len(token) == 0 || len(expiry) == 0 || len(user) == 0 {
		return nil, nil
	}

	s := &models.Session{Token: string(token)}
	if s.ExpiresAt, err = time.Parse(time.RFC3339, string(expiry)); err != nil {
		return nil, fmt.Errorf("failed to parse session expiry: %w", err)
	}
	if err := json.Unmarshal(user, &s.User); err != nil {
		return nil, fmt.Errorf("failed to decode session user: %w", err)
	}
	return s, nil
}

// CheckStatus reports whether a session is active. A session found past its
// expiry is cleared here and reported once with TokenExpired; later calls see
// no session at all. A session whose token does not verify is cleared and
// reported as logged out.
func (a *authService) CheckStatus(ctx context.Context) (Status, error) {
	s, err := a.loadSession(ctx)
	if err != nil {
		a.logger.Warn(ctx, "Dropping unreadable session", "error", err)
		return Status{}, a.Logout(ctx)
	}
	if s == nil {
		return Status{}, nil
	}

	now := a.now()
	if s.Expired(now) {
		a.logger.Info(ctx, "Session expired", "user_id", s.User.ID, "expired_at", s.ExpiresAt)
		if err := a.Logout(ctx); err != nil {
			return Status{}, err
		}
		return Status{TokenExpired: true}, nil
	}

	userID, err := auth.GetUserIDFromToken(s.Token, a.secret, now)
	switch {
	case errors.Is(err, common.ErrTokenExpired):
		a.logger.Info(ctx, "Session expired", "user_id", s.User.ID)
		if err := a.Logout(ctx); err != nil {
			return Status{}, err
		}
		return Status{TokenExpired: true}, nil
	case err != nil || userID != s.User.ID:
		a.logger.Warn(ctx, "Dropping session with invalid token")
		return Status{}, a.Logout(ctx)
	}

	user := s.User
	return Status{LoggedIn: true, User: &user}, nil
}

// Logout removes the persisted session. Calling it without a session is a no-op.
func (a *authService) Logout(ctx context.Context) error {
	repo := metadata.NewSQLiteRepository(a.db)
	if err := repo.Delete(ctx, sessionKeyToken, sessionKeyExpiry, sessionKeyUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the user of the active session. Without one it returns
// common.ErrNotLoggedIn, also matching common.ErrTokenExpired when the session
// has just expired.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	st, err := a.CheckStatus(ctx)
	if err != nil {
		return nil, err
	}
	if st.TokenExpired {
		return nil, fmt.Errorf("%w: %w", common.ErrNotLoggedIn, common.ErrTokenExpired)
	}
	if !st.LoggedIn {
		return nil, common.ErrNotLoggedIn
	}
	return st.User, nil
}

// SeedDemoUser registers the demo account if the user store is empty and
// reports whether it did.
func (a *authService) SeedDemoUser(ctx context.Context) (bool, error) {
	n, err := users.NewSQLiteRepository(a.db).Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	_, err = a.Register(ctx, RegisterRequest{
		Email:    DemoEmail,
		Password: DemoPassword,
		Name:     DemoName,
		Phone:    DemoPhone,
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed demo user: %w", err)
	}
	return true, nil
}
