// Package installer shells out to the chosen package manager. Installs are
// best-effort: failures are reported to the console but never abort the
// command that requested them.
package installer

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/kirimase/kirimase/models"
	"github.com/kirimase/kirimase/runner"
)

// runCmd is swapped out in tests.
var runCmd = runner.Run

var progress *spinner.Spinner

// StartProgress shows a progress indicator with the given suffix. Only one
// indicator is active at a time.
func StartProgress(msg string) {
	StopProgress()
	progress = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	progress.Suffix = " " + msg
	progress.Start()
}

// StopProgress stops the active progress indicator, if any. Package-manager
// output streams to the terminal, so the indicator must be gone first.
func StopProgress() {
	if progress != nil {
		progress.Stop()
		progress = nil
	}
}

// Dependencies lists package names to install, space-separated, split by
// regular and dev.
type Dependencies struct {
	Regular string
	Dev     string
}

func installCommand(pm models.PMType) string {
	if pm == models.PMNpm {
		return "install"
	}
	return "add"
}

// Install runs the package manager for the regular list, then again with the
// dev flag for the dev list. Either list may be empty. Failures are logged
// and swallowed so a broken registry never loses the user's scaffolded files.
func Install(ctx context.Context, deps Dependencies, pm models.PMType) {
	StopProgress()

	regular := strings.Fields(deps.Regular)
	dev := strings.Fields(deps.Dev)
	if len(regular) == 0 && len(dev) == 0 {
		return
	}

	color.Cyan("Installing dependencies with %s...", pm)

	subcommand := installCommand(pm)
	if len(regular) > 0 {
		args := append([]string{subcommand}, regular...)
		if err := runCmd(ctx, string(pm), args...); err != nil {
			log.Printf("Error installing dependencies: %v", err)
		}
	}
	if len(dev) > 0 {
		args := append([]string{subcommand, "-D"}, dev...)
		if err := runCmd(ctx, string(pm), args...); err != nil {
			log.Printf("Error installing dev dependencies: %v", err)
		}
	}
}

func shadcnInvocation(pm models.PMType) []string {
	switch pm {
	case models.PMPnpm:
		return []string{"pnpm", "dlx", "shadcn-ui@latest"}
	case models.PMBun:
		return []string{"bunx", "shadcn-ui@latest"}
	default:
		return []string{"npx", "shadcn-ui@latest"}
	}
}

// InstallShadcnComponents scaffolds the named UI components, skipping any
// whose generated file already exists under the conventional components/ui
// directory. Failures are logged and swallowed.
func InstallShadcnComponents(ctx context.Context, cfg *models.Config, names []string) {
	var missing []string
	for _, name := range names {
		path := filepath.Join(cfg.RootPath, "components", "ui", name+".tsx")
		if _, err := os.Stat(path); err == nil {
			continue
		}
		missing = append(missing, name)
	}

	if len(missing) == 0 {
		color.Cyan("All requested UI components already exist, skipping.")
		return
	}

	invocation := shadcnInvocation(cfg.PackageManager)
	args := append(invocation[1:], "add")
	args = append(args, missing...)

	color.Cyan("Installing UI components: %s", strings.Join(missing, ", "))
	if err := runCmd(ctx, invocation[0], args...); err != nil {
		log.Printf("Error installing UI components: %v", err)
	}
}
