package project

import (
	"context"
	"fmt"

	"github.com/kirimase/kirimase/analytics"
	"github.com/kirimase/kirimase/config"
	"github.com/kirimase/kirimase/generate"
	"github.com/kirimase/kirimase/installer"
	"github.com/kirimase/kirimase/models"
	"github.com/kirimase/kirimase/prompts"
)

// AddOptions carries non-interactive answers for the add flow. Existing
// overrides the installed-package set used to filter the prompt; when empty,
// the config's packages list is used instead.
type AddOptions struct {
	Packages []models.PackageID
	Existing []models.PackageID
}

// Add installs extra packages into an initialized project and records them in
// the config.
func Add(ctx context.Context, opts *AddOptions) error {
	// Older configs may predate the orm/auth fields.
	if err := config.Backfill(); err != nil {
		return err
	}

	cfg, err := config.Read()
	if err != nil {
		return err
	}
	if cfg == nil {
		return fmt.Errorf("no %s found, run `kirimase init` first", config.FileName)
	}

	selected, err := prompts.AskMiscPackages(opts.Packages, cfg, opts.Existing)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return nil
	}

	installer.StartProgress("Resolving dependencies")
	installDeps(ctx, dependenciesFor(selected), cfg.PackageManager)

	for _, id := range selected {
		if err := config.AddPackage(id); err != nil {
			return err
		}
	}

	if cfg.ComponentLib != nil && *cfg.ComponentLib == models.ComponentLibShadcn {
		installShadcn(ctx, cfg, []string{"button", "toast"})
	}

	for _, id := range selected {
		if id == models.PackageTRPC {
			if err := generate.ScaffoldRootRouter(cfg); err != nil {
				return err
			}
		}
	}

	analytics.Notify(ctx, cfg, "add", map[string]any{"packages": selected})
	return nil
}
