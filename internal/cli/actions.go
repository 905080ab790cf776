package cli

import (
	"context"

	"github.com/avolkov/termlock/internal/store/users"
)

// ActionID identifies a menu action in the audit log and in the role table.
type ActionID string

const (
	actionSystemInfo ActionID = "system-info"
	actionFileOps    ActionID = "file-operations"
	actionNetwork    ActionID = "network-tools"
	actionPkgManager ActionID = "package-manager"
	actionUserMgmt   ActionID = "user-management"
	actionViewLogs   ActionID = "view-logs"
	actionChangePass ActionID = "change-password"
	actionAbout      ActionID = "about"
)

// Action is one entry of the role-indexed dispatch table. Roles is the full
// set of roles permitted to run the action; it is consulted when the menu is
// rendered and again when the action is dispatched.
type Action struct {
	ID    ActionID
	Title string
	Roles []users.Role
	Run   func(ctx context.Context) error
}

// AllowedFor reports whether role may run the action.
func (a Action) AllowedFor(role users.Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

var (
	allRoles  = []users.Role{users.RoleAdmin, users.RoleUser}
	adminOnly = []users.Role{users.RoleAdmin}
)

// actions returns the full dispatch table. Order is menu order.
func (a *App) actions() []Action {
	return []Action{
		{ID: actionSystemInfo, Title: "System Information", Roles: allRoles, Run: a.systemInfo},
		{ID: actionFileOps, Title: "File Operations", Roles: allRoles, Run: a.fileOperations},
		{ID: actionNetwork, Title: "Network Tools", Roles: allRoles, Run: a.networkTools},
		{ID: actionPkgManager, Title: "Package Manager", Roles: allRoles, Run: a.packageManager},
		{ID: actionUserMgmt, Title: "User Management", Roles: adminOnly, Run: a.userManagement},
		{ID: actionViewLogs, Title: "View Activity Log", Roles: adminOnly, Run: a.viewLogs},
		{ID: actionChangePass, Title: "Change Password", Roles: allRoles, Run: a.changePassword},
		{ID: actionAbout, Title: "About", Roles: allRoles, Run: a.about},
	}
}

// permittedActions filters the table down to what role may see.
func permittedActions(all []Action, role users.Role) []Action {
	result := make([]Action, 0, len(all))
	for _, act := range all {
		if act.AllowedFor(role) {
			result = append(result, act)
		}
	}
	return result
}
