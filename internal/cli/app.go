package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/lifecalc/internal/common"
	"github.com/dmitrijs2005/lifecalc/internal/config"
	"github.com/dmitrijs2005/lifecalc/internal/filex"
	"github.com/dmitrijs2005/lifecalc/internal/logging"
	"github.com/dmitrijs2005/lifecalc/internal/models"
	"github.com/dmitrijs2005/lifecalc/internal/pricing"
	"github.com/dmitrijs2005/lifecalc/internal/services"
	"github.com/dmitrijs2005/lifecalc/internal/storage"
)

// quote is the most recent estimate, kept so that it can be saved.
type quote struct {
	policy models.Policy
	result pricing.Result
}

type App struct {
	config             *config.Config
	db                 *sql.DB
	logger             logging.Logger
	authService        services.AuthService
	calculationService services.CalculationService
	user               *models.User
	lastQuote          *quote
	reader             *bufio.Reader
	out                io.Writer
	now                func() time.Time
}

// NewApp opens the database named by c, builds the services and seeds the
// demo account when configured to.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	dsn, err := filex.DataFilePath(c.DataDir, c.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("error preparing data directory: %w", err)
	}

	db, err := storage.Open(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	secret := []byte(c.SecretKey)
	if len(secret) == 0 {
		secret, err = services.DeviceSecret(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error loading device secret: %w", err)
		}
	}

	as := services.NewAuthService(db, secret, c.SessionTTL, logger)
	cs := services.NewCalculationService(db, logger)

	if c.SeedDemoUser {
		seeded, err := as.SeedDemoUser(ctx)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if seeded {
			logger.Info(ctx, "Demo user created", "email", services.DemoEmail)
		}
	}

	return &App{
		config:             c,
		db:                 db,
		logger:             logger,
		authService:        as,
		calculationService: cs,
		reader:             bufio.NewReader(os.Stdin),
		out:                os.Stdout,
		now:                time.Now,
	}, nil
}

// Run restores the persisted session, if any, and runs the REPL until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.db != nil {
			_ = a.db.Close()
		}
	}()

	printlnFn("Welcome to lifecalc premium estimator (type 'help' for commands)")
	if err := a.Status(ctx); err != nil {
		a.logger.Error(ctx, err.Error())
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", a.user.Email)
}

// currentUser re-checks the session before every gated command so that an
// expiry is noticed on the next access.
func (a *App) currentUser(ctx context.Context) (*models.User, error) {
	u, err := a.authService.CurrentUser(ctx)
	if err != nil {
		a.user = nil
		return nil, err
	}
	a.user = u
	return u, nil
}

var errNoQuote = errors.New("there is no quote to save yet, run 'quote' first")

func describeError(err error) string {
	var ve *pricing.ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Reason
	case errors.Is(err, common.ErrTokenExpired):
		return "your session has expired, please log in again"
	case errors.Is(err, common.ErrNotLoggedIn):
		return "please log in first"
	default:
		return err.Error()
	}
}
