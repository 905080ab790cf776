package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/avolkov/termlock/internal/common"
)

// mainMenu loops on the role-filtered action table until logout. Action
// failures are reported and the loop continues; only I/O or storage errors
// end the loop.
func (a *App) mainMenu(ctx context.Context) error {
	for {
		visible := permittedActions(a.actions(), a.session.Role)

		titles := make([]string, len(visible))
		for i, act := range visible {
			titles[i] = act.Title
		}
		printMenu(a.out, "MAIN MENU", titles, "Logout")

		line, err := getSimpleText(a.reader,
			fmt.Sprintf("%s (%s), pick an option [0-%d]", a.session.Username, a.session.Role, len(visible)),
			a.out)
		if err != nil {
			return err
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < 0 || choice > len(visible) {
			printColor(a.out, colorYellow, "Invalid choice.")
			continue
		}

		if choice == 0 {
			return a.logout(ctx)
		}

		if err := a.dispatch(ctx, visible[choice-1]); err != nil {
			return err
		}
	}
}

// dispatch re-checks the role gate, runs the action, and records it. The
// action's own error is shown to the user but does not propagate; the
// returned error signals audit-store failures only.
func (a *App) dispatch(ctx context.Context, act Action) error {
	var actionErr error
	if !act.AllowedFor(a.session.Role) {
		actionErr = common.ErrorActionDenied
	} else {
		actionErr = act.Run(ctx)
	}

	if actionErr != nil {
		printColor(a.out, colorRed, fmt.Sprintf("%s: %s", act.Title, actionErr))
	}
	return a.audit.RecordAction(ctx, a.session, string(act.ID), actionErr)
}
