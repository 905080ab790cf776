package cli

import (
	"context"
	"errors"
	"strings"
)

func (a *App) packageManager(ctx context.Context) error {
	return a.runSubMenu(ctx, "PACKAGE MANAGER", []subOption{
		{Title: "Install Package", Run: a.installPackage},
		{Title: "Update System", Run: a.updateSystem},
	})
}

func (a *App) installPackage(ctx context.Context) error {
	pkg, err := getSimpleText(a.reader, "Package name", a.out)
	if err != nil {
		return err
	}
	if pkg == "" || strings.ContainsAny(pkg, " \t") {
		return errors.New("invalid package name")
	}
	return a.runner.Run(ctx, a.cfg.PkgManager, "install", pkg)
}

func (a *App) updateSystem(ctx context.Context) error {
	if err := a.runner.Run(ctx, a.cfg.PkgManager, "update"); err != nil {
		return err
	}
	return a.runner.Run(ctx, a.cfg.PkgManager, "upgrade")
}
