// Package runner wraps external process invocation for package managers and
// codegen CLIs.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Run spawns name with args, dropping empty-string arguments, and waits for
// completion. Standard streams are inherited so sub-process output goes
// straight to the terminal. A non-zero exit yields an error embedding the
// full command line and exit code.
func Run(ctx context.Context, name string, args ...string) error {
	filtered := make([]string, 0, len(args))
	for _, arg := range args {
		if arg != "" {
			filtered = append(filtered, arg)
		}
	}

	cmd := exec.CommandContext(ctx, name, filtered...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("command `%s` failed with exit code %d",
				strings.TrimSpace(name+" "+strings.Join(filtered, " ")), exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}
