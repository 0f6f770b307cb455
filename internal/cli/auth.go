package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lifecalc/internal/common"
	"github.com/dmitrijs2005/lifecalc/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account details and creates the account. It does
// not log the new user in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	name, err := getSimpleText(a.reader, "Enter name (optional)", a.out)
	if err != nil {
		return err
	}

	phone, err := getSimpleText(a.reader, "Enter 10 digit phone number (optional)", a.out)
	if err != nil {
		return err
	}

	_, err = a.authService.Register(ctx, services.RegisterRequest{
		Email:    email,
		Password: string(password),
		Name:     name,
		Phone:    phone,
	})
	if err != nil {
		return err
	}

	printlnFn("Account created, you can log in now.")
	return nil
}

// Login prompts for credentials and opens a new session, replacing any
// previous one.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.user = &session.User
	a.lastQuote = nil
	printlnFn(fmt.Sprintf("Welcome, %s! Session valid until %s.",
		displayName(a.user.Name, a.user.Email), session.ExpiresAt.Local().Format("02 Jan 2006 15:04")))
	return nil
}

// Logout forgets the session. It succeeds without one.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	a.lastQuote = nil
	printlnFn("Logged out.")
	return nil
}

// Status checks the persisted session and reports it.
func (a *App) Status(ctx context.Context) error {
	st, err := a.authService.CheckStatus(ctx)
	if err != nil {
		return err
	}

	switch {
	case st.LoggedIn:
		a.user = st.User
		printlnFn(fmt.Sprintf("Logged in as %s.", displayName(st.User.Name, st.User.Email)))
	case st.TokenExpired:
		a.user = nil
		printlnFn("Your session has expired, please log in again.")
	default:
		a.user = nil
		printlnFn("Not logged in.")
	}
	return nil
}

func displayName(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}
