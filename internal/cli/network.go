package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// netInterfaces is a test seam for net.Interfaces.
var netInterfaces = net.Interfaces

func (a *App) networkTools(ctx context.Context) error {
	return a.runSubMenu(ctx, "NETWORK TOOLS", []subOption{
		{Title: "Show IP Addresses", Run: a.showAddresses},
		{Title: "Ping Test", Run: a.pingTest},
	})
}

func (a *App) showAddresses(ctx context.Context) error {
	ifaces, err := netInterfaces()
	if err != nil {
		return err
	}
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			fmt.Fprintf(a.out, "%-10s %s\n", iface.Name, addr.String())
		}
	}
	return nil
}

func (a *App) pingTest(ctx context.Context) error {
	host, err := getSimpleText(a.reader, "Host/URL", a.out)
	if err != nil {
		return err
	}
	if host == "" || strings.ContainsAny(host, " \t") {
		return errors.New("invalid host")
	}
	return a.runner.Run(ctx, "ping", "-c", "4", host)
}
