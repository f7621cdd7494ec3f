package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	successMark = color.New(color.FgGreen, color.Bold)
	infoMark    = color.New(color.FgCyan)
	warningMark = color.New(color.FgYellow, color.Bold)
	errorMark   = color.New(color.FgRed, color.Bold)
)

// Console streams. Commands print their primary output through cobra's
// writers; these carry status lines.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin
)

// SetOutput redirects status output, e.g. to a cobra command's writers.
func SetOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
}

// Confirm prompts the user for confirmation
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}

	fmt.Fprint(stdout, prompt+suffix)

	reader := bufio.NewReader(stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))

	if response == "" {
		return defaultYes, nil
	}

	return response == "y" || response == "yes", nil
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		if !noColor {
			fmt.Fprintf(stdout, "%s %s\n", successMark.Sprint("✓"), msg)
		} else {
			fmt.Fprintf(stdout, "OK: %s\n", msg)
		}
	}
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		if !noColor {
			fmt.Fprintf(stdout, "%s %s\n", infoMark.Sprint("ℹ"), msg)
		} else {
			fmt.Fprintf(stdout, "INFO: %s\n", msg)
		}
	}
}

// PrintWarning prints a warning message to stderr. Its signature matches the
// logging hooks taken by library packages.
func PrintWarning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(stderr, "%s %s\n", warningMark.Sprint("⚠"), msg)
	} else {
		fmt.Fprintf(stderr, "WARNING: %s\n", msg)
	}
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(stderr, "%s %s\n", errorMark.Sprint("✗"), msg)
	} else {
		fmt.Fprintf(stderr, "ERROR: %s\n", msg)
	}
}

// Global flags (will be set from cmd package)
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
	if nc {
		color.NoColor = true
	}
}

// NoColor reports whether colored output is disabled.
func NoColor() bool {
	return noColor || color.NoColor
}
