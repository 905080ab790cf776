package cli

import (
	"context"
	"fmt"

	"github.com/avolkov/termlock/internal/common"
	"github.com/avolkov/termlock/internal/store/users"
)

func (a *App) userManagement(ctx context.Context) error {
	return a.runSubMenu(ctx, "USER MANAGEMENT", []subOption{
		{Title: "Create User", Run: a.createUser},
		{Title: "List Users", Run: a.listUsers},
		{Title: "Delete User", Run: a.deleteUser},
	})
}

func (a *App) createUser(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "New username", a.out)
	if err != nil {
		return err
	}

	roleInput, err := getSimpleText(a.reader, "Role (admin/user, default user)", a.out)
	if err != nil {
		return err
	}
	role := users.RoleUser
	if roleInput != "" {
		role = users.Role(roleInput)
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.users.Create(ctx, a.session, username, password, confirm, role); err != nil {
		return err
	}
	printColor(a.out, colorGreen, fmt.Sprintf("User %q created.", username))
	return nil
}

func (a *App) listUsers(ctx context.Context) error {
	all, err := a.users.List(ctx, a.session)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%-20s %-8s %-20s %-20s\n", "USERNAME", "ROLE", "CREATED", "LAST LOGIN")
	for _, u := range all {
		lastLogin := "never"
		if u.LastLogin != nil {
			lastLogin = u.LastLogin.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(a.out, "%-20s %-8s %-20s %-20s\n",
			u.Username, u.Role, u.CreatedAt.Format("2006-01-02 15:04:05"), lastLogin)
	}
	return nil
}

func (a *App) deleteUser(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username to delete", a.out)
	if err != nil {
		return err
	}
	if err := a.users.Delete(ctx, a.session, username); err != nil {
		return err
	}
	printColor(a.out, colorGreen, fmt.Sprintf("User %q deleted.", username))
	return nil
}
