package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkov/termlock/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// login prompts for credentials and performs one authentication attempt.
// On success a.session is set; on a failed check the attempt is reported
// and a.session stays nil. Only I/O or storage failures return an error.
func (a *App) login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.auth.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			printColor(a.out, colorRed,
				fmt.Sprintf("Login failed (attempt %d).", a.auth.Attempts(username)))
			return nil
		}
		return err
	}

	a.session = s
	printColor(a.out, colorGreen, "Login successful!")
	return nil
}

// logout ends the session and drops the resume token.
func (a *App) logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx, a.session); err != nil {
		return err
	}
	a.session = nil
	printColor(a.out, colorGreen, "Logged out.")
	return nil
}
