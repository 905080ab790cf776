package cli

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

// statfs is a test seam for unix.Statfs.
var statfs = unix.Statfs

func (a *App) systemInfo(ctx context.Context) error {
	return a.runSubMenu(ctx, "SYSTEM INFORMATION", []subOption{
		{Title: "Show OS Info", Run: func(ctx context.Context) error {
			return a.runner.Run(ctx, "uname", "-a")
		}},
		{Title: "Show Disk Usage", Run: a.diskUsage},
		{Title: "Show Memory Info", Run: func(ctx context.Context) error {
			return a.runner.Run(ctx, "free", "-m")
		}},
		{Title: "Show Process List", Run: func(ctx context.Context) error {
			return a.runner.Run(ctx, "ps", "aux")
		}},
	})
}

// diskUsage reports the filesystem holding the app directory via statfs,
// falling back to df when the syscall is unavailable.
func (a *App) diskUsage(ctx context.Context) error {
	var st unix.Statfs_t
	if err := statfs(a.cfg.AppDir, &st); err != nil {
		return a.runner.Run(ctx, "df", "-h")
	}

	bsize := uint64(st.Bsize)
	total := st.Blocks * bsize
	free := st.Bavail * bsize
	used := total - st.Bfree*bsize

	fmt.Fprintf(a.out, "Filesystem of %s\n", a.cfg.AppDir)
	fmt.Fprintf(a.out, "  total: %s\n", formatBytes(total))
	fmt.Fprintf(a.out, "  used:  %s\n", formatBytes(used))
	fmt.Fprintf(a.out, "  free:  %s\n", formatBytes(free))
	return nil
}

func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
