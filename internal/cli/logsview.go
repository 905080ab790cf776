package cli

import (
	"context"
	"fmt"
)

func (a *App) viewLogs(ctx context.Context) error {
	printHeader(a.out, "ACTIVITY LOG")

	entries, err := a.audit.View(ctx, a.cfg.AuditViewLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "(no entries)")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(a.out, "[%s] %s | %s | %s", e.At.Format("2006-01-02 15:04:05"), e.Event, e.Username, e.Status)
		if e.Detail != "" {
			fmt.Fprintf(a.out, " | %s", e.Detail)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}
