package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/avolkov/termlock/internal/store/users"
)

func TestMainMenu_UserRoleNeverSeesUserManagement(t *testing.T) {
	f := newTestApp(t, "0\n", users.RoleUser)

	if err := f.app.mainMenu(context.Background()); err != nil {
		t.Fatalf("mainMenu err: %v", err)
	}

	out := f.out.String()
	if strings.Contains(out, "User Management") {
		t.Fatalf("user-role menu must not render User Management:\n%s", out)
	}
	if strings.Contains(out, "View Activity Log") {
		t.Fatalf("user-role menu must not render View Activity Log:\n%s", out)
	}
	if !f.auth.logoutCalled {
		t.Fatalf("choosing 0 must log out")
	}
}

func TestMainMenu_AdminSeesAllActions(t *testing.T) {
	f := newTestApp(t, "0\n", users.RoleAdmin)

	if err := f.app.mainMenu(context.Background()); err != nil {
		t.Fatalf("mainMenu err: %v", err)
	}

	out := f.out.String()
	for _, title := range []string{"System Information", "User Management", "View Activity Log", "Change Password"} {
		if !strings.Contains(out, title) {
			t.Fatalf("admin menu missing %q:\n%s", title, out)
		}
	}
}

func TestMainMenu_InvalidChoiceContinues(t *testing.T) {
	f := newTestApp(t, "banana\n99\n0\n", users.RoleUser)

	if err := f.app.mainMenu(context.Background()); err != nil {
		t.Fatalf("mainMenu err: %v", err)
	}
	if got := strings.Count(f.out.String(), "Invalid choice."); got != 2 {
		t.Fatalf("want 2 invalid-choice reports, got %d", got)
	}
}

func TestMainMenu_DispatchRecordsAction(t *testing.T) {
	// Option 6 for a user role is "About" (sysinfo, files, network, pkg,
	// change-password, about); it runs without further input.
	f := newTestApp(t, "6\n0\n", users.RoleUser)

	if err := f.app.mainMenu(context.Background()); err != nil {
		t.Fatalf("mainMenu err: %v", err)
	}
	if len(f.audit.actions) != 1 || f.audit.actions[0] != string(actionAbout) {
		t.Fatalf("audit actions = %v, want [%s]", f.audit.actions, actionAbout)
	}
}

func TestDispatch_RechecksRole(t *testing.T) {
	f := newTestApp(t, "", users.RoleUser)

	// Bypass the render-time filter on purpose: even a forged dispatch of
	// an admin-only action must be denied and recorded as failed.
	var userMgmt Action
	for _, act := range f.app.actions() {
		if act.ID == actionUserMgmt {
			userMgmt = act
		}
	}

	if err := f.app.dispatch(context.Background(), userMgmt); err != nil {
		t.Fatalf("dispatch err: %v", err)
	}
	if len(f.users.created)+len(f.users.deleted) != 0 {
		t.Fatalf("admin-only action must not reach the service")
	}
	if len(f.audit.failed) != 1 {
		t.Fatalf("denied dispatch must be recorded as failed, got %v", f.audit.failed)
	}
	if !strings.Contains(f.out.String(), "not permitted") {
		t.Fatalf("denial not reported:\n%s", f.out.String())
	}
}

func TestMainMenu_ActionErrorDoesNotEndLoop(t *testing.T) {
	// Option 1 is System Information; its submenu gets "1" (OS info, which
	// fails) and "0" (back), then the main menu gets "0" (logout).
	f := newTestApp(t, "1\n1\n0\n0\n", users.RoleUser)
	f.runner.err = errExec

	if err := f.app.mainMenu(context.Background()); err != nil {
		t.Fatalf("mainMenu err: %v", err)
	}
	if !f.auth.logoutCalled {
		t.Fatalf("loop must survive a failing action and reach logout")
	}
	if len(f.audit.failed) != 1 {
		t.Fatalf("failing action must be audited as failed, got %v", f.audit.failed)
	}
}

var errExec = &execError{}

type execError struct{}

func (*execError) Error() string { return "exit status 1" }
