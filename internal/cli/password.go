package cli

import (
	"context"

	"github.com/avolkov/termlock/internal/common"
)

func (a *App) changePassword(ctx context.Context) error {
	printHeader(a.out, "CHANGE PASSWORD")

	oldPassword, err := getPassword("Old password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldPassword)

	newPassword, err := getPassword("New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newPassword)

	confirm, err := getPassword("Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.users.ChangePassword(ctx, a.session, oldPassword, newPassword, confirm); err != nil {
		return err
	}
	printColor(a.out, colorGreen, "Password changed.")
	return nil
}
