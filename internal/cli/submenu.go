package cli

import (
	"context"
	"fmt"
	"strconv"
)

// subOption is one entry of an action submenu.
type subOption struct {
	Title string
	Run   func(ctx context.Context) error
}

// runSubMenu loops over the options until the user picks "Back". A failing
// option is reported and the submenu continues; the error of the last option
// run is returned so the dispatcher can audit it. A successful run clears a
// previous failure, so a retried option that recovers audits as a success.
func (a *App) runSubMenu(ctx context.Context, title string, options []subOption) error {
	var lastErr error
	for {
		titles := make([]string, len(options))
		for i, opt := range options {
			titles[i] = opt.Title
		}
		printMenu(a.out, title, titles, "Back")

		line, err := getSimpleText(a.reader, fmt.Sprintf("Pick an option [0-%d]", len(options)), a.out)
		if err != nil {
			return err
		}

		choice, err := strconv.Atoi(line)
		if err != nil || choice < 0 || choice > len(options) {
			printColor(a.out, colorYellow, "Invalid choice.")
			continue
		}
		if choice == 0 {
			return lastErr
		}

		if err := options[choice-1].Run(ctx); err != nil {
			printColor(a.out, colorRed, err.Error())
			lastErr = err
		} else {
			lastErr = nil
		}
	}
}
