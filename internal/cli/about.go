package cli

import (
	"context"
	"fmt"

	"github.com/avolkov/termlock/internal/buildinfo"
)

func (a *App) about(ctx context.Context) error {
	printHeader(a.out, "ABOUT")
	fmt.Fprintln(a.out, "termlock — terminal login and menu shell")
	buildinfo.PrintBuildData(a.out)
	fmt.Fprintln(a.out, "Features: authentication, role-gated menus, activity log")
	return nil
}
