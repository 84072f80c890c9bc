package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportradar/sportradar-cli/internal/client/api"
)

// Login prompts for credentials and establishes a session. Failures are
// reported to the user; the session stays logged out.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	defer wipe(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			printlnFn("Login failed: wrong email or password")
		case errors.Is(err, api.ErrUnavailable):
			printlnFn("Login failed: server unavailable")
		default:
			printlnFn("Login failed:", err)
		}
		return err
	}

	u := a.session.CurrentUser()
	fmt.Fprintf(a.out, "Welcome back, %s!\n", u.Username)
	return nil
}

// Register creates a new personal or business account.
func (a *App) Register(ctx context.Context) error {
	form := api.RegistrationForm{}

	var err error
	if form.Username, err = GetSimpleText(a.reader, "Choose a username", a.out); err != nil {
		return err
	}
	if form.Email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if form.Type, err = GetOptionalText(a.reader, "Account type (personal/business, default personal)", api.AccountPersonal, a.out); err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)
	form.Password = string(password)

	if err := a.api.Register(ctx, form); err != nil {
		printlnFn("Registration failed:", err)
		return err
	}

	printlnFn("Account created, you can log in now.")
	return nil
}

// Logout drops the session. Calling it when already logged out is fine.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		printlnFn("error:", err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// AcceptInvite joins a company via an invitation token, then sends the user
// to the login flow.
func (a *App) AcceptInvite(ctx context.Context) error {
	token, err := GetSimpleText(a.reader, "Invitation token", a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	if err := a.api.AcceptInvite(ctx, token, username, string(password)); err != nil {
		printlnFn("Could not accept the invitation:", err)
		return err
	}

	printlnFn("Invitation accepted, you can log in now.")
	return nil
}
