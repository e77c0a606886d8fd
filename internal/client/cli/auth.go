package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/timereport/internal/client/models"
	"github.com/dmitrijs2005/timereport/internal/common"
)

// Indirections over the interactive input helpers, swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
	confirm       = Confirm
)

func (a *App) readCredentials() (models.Credentials, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return models.Credentials{}, err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return models.Credentials{}, err
	}
	defer common.WipeByteArray(password)

	return models.Credentials{Username: userName, Password: string(password)}, nil
}

// Register creates an account. It does not log in.
func (a *App) Register(ctx context.Context) error {
	creds, err := a.readCredentials()
	if err != nil {
		return a.report(ctx, err)
	}

	isTeacher, err := confirm(a.reader, "Register as a teacher?", a.out)
	if err != nil {
		return a.report(ctx, err)
	}

	if err := a.authService.Register(ctx, creds, isTeacher); err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintln(a.out, "Registration successful! Please log in.")
	return nil
}

// Login authenticates and opens the landing list for the granted role.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in. Use 'logout' first.")
		return nil
	}

	creds, err := a.readCredentials()
	if err != nil {
		return a.report(ctx, err)
	}

	sess, err := a.authService.Login(ctx, creds)
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "Welcome, %s (%s)\n", sess.DisplayName, sess.Role.Label())
	return a.start(ctx)
}

// Logout forgets the session locally; the workspace is cleared even when
// the stored copy could not be removed.
func (a *App) Logout(ctx context.Context) error {
	err := a.authService.Logout(ctx)
	a.workspace.Reset()
	if err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
