package cli

import (
	"fmt"
	"io"
	"strings"
)

// ANSI colors for terminal output, matching the usual Termux look.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[1;31m"
	colorGreen  = "\033[1;32m"
	colorYellow = "\033[1;33m"
	colorCyan   = "\033[1;36m"
)

const headerWidth = 50

// printColor writes text in the given ANSI color followed by a newline.
func printColor(w io.Writer, color, text string) {
	fmt.Fprintf(w, "%s%s%s\n", color, text, colorReset)
}

// printHeader renders a boxed section title.
func printHeader(w io.Writer, title string) {
	line := strings.Repeat("=", headerWidth)
	fmt.Fprintln(w, line)
	printColor(w, colorCyan, "    "+title)
	fmt.Fprintln(w, line)
}

// printMenu renders a header plus numbered options, with "0" reserved for
// the caller's back/exit entry.
func printMenu(w io.Writer, title string, options []string, zeroLabel string) {
	printHeader(w, title)
	for i, opt := range options {
		fmt.Fprintf(w, "  %d. %s\n", i+1, opt)
	}
	fmt.Fprintf(w, "  0. %s\n", zeroLabel)
	fmt.Fprintln(w, strings.Repeat("=", headerWidth))
}
