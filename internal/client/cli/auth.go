package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdeck/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for email and password, authenticates and loads the first
// page of users. The password is wiped before returning whatever the outcome.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.session.Authenticate(ctx, email, password); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	return a.Page(ctx, "1")
}

// Logout forgets the credential and everything loaded under it.
func (a *App) Logout(ctx context.Context) error {
	a.collection.Reset()
	if err := a.session.ClearCredential(ctx); err != nil {
		a.logger.Warn(ctx, "error clearing session", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	cred, ok := a.session.CurrentCredential()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintln(a.out, "Logged in as", cred.Identifier)
	return nil
}
