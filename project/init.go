// Package project holds the init and add flows that tie prompts, config,
// installers and generators together.
package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/kirimase/kirimase/analytics"
	"github.com/kirimase/kirimase/config"
	"github.com/kirimase/kirimase/installer"
	"github.com/kirimase/kirimase/models"
	"github.com/kirimase/kirimase/prompts"
)

// Seams for tests: installs shell out to package managers otherwise.
var (
	installDeps   = installer.Install
	installShadcn = installer.InstallShadcnComponents
)

// InitOptions carries non-interactive answers for the init flow. Nil or empty
// fields are asked interactively.
type InitOptions struct {
	HasSrc         *bool
	PackageManager models.PMType
	DBType         *models.DBType
	DBProvider     *models.DBProvider
	ORM            *models.ORMType
	Auth           *models.AuthType
	ComponentLib   *models.ComponentLibType
	Packages       []models.PackageID
	T3             bool
	NoAnalytics    bool
}

// dependenciesFor collects the npm package lists for the given identifiers
// from the catalog.
func dependenciesFor(ids []models.PackageID) installer.Dependencies {
	var regular, dev []string
	for _, id := range ids {
		meta, ok := models.Lookup(id)
		if !ok {
			continue
		}
		regular = append(regular, meta.Deps...)
		dev = append(dev, meta.DevDeps...)
	}
	return installer.Dependencies{
		Regular: strings.Join(regular, " "),
		Dev:     strings.Join(dev, " "),
	}
}

// Init runs the full initialization flow: prompt for every choice not already
// supplied, persist the config, install the chosen stack and fire the init
// event.
func Init(ctx context.Context, opts *InitOptions) error {
	existing, err := config.Read()
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%s already exists, use `kirimase add` to add packages", config.FileName)
	}

	hasSrc, err := prompts.AskHasSrc(opts.HasSrc)
	if err != nil {
		return err
	}
	pm, err := prompts.AskPackageManager(opts.PackageManager)
	if err != nil {
		return err
	}
	driver, err := prompts.AskDBType(opts.DBType)
	if err != nil {
		return err
	}
	provider, err := prompts.AskDBProvider(opts.DBProvider, driver, pm)
	if err != nil {
		return err
	}

	cfg := models.Config{
		HasSrc:         hasSrc,
		PackageManager: pm,
		T3:             opts.T3,
		Analytics:      !opts.NoAnalytics,
		Driver:         &driver,
		Provider:       &provider,
		RootPath:       config.RootPath(hasSrc),
	}

	orm, err := prompts.AskORM(opts.ORM, &cfg)
	if err != nil {
		return err
	}
	cfg.ORM = orm

	auth, err := prompts.AskAuth(opts.Auth, &cfg)
	if err != nil {
		return err
	}
	cfg.Auth = auth

	componentLib, err := prompts.AskComponentLib(opts.ComponentLib, &cfg)
	if err != nil {
		return err
	}
	cfg.ComponentLib = componentLib

	misc, err := prompts.AskMiscPackages(opts.Packages, &cfg, nil)
	if err != nil {
		return err
	}

	var packages []models.PackageID
	if orm != nil {
		packages = append(packages, models.PackageID(*orm))
	}
	if auth != nil {
		packages = append(packages, models.PackageID(*auth))
	}
	if componentLib != nil {
		packages = append(packages, models.PackageID(*componentLib))
	}
	packages = append(packages, misc...)
	cfg.Packages = packages

	if err := config.Create(cfg); err != nil {
		return err
	}

	installer.StartProgress("Resolving dependencies")
	installDeps(ctx, dependenciesFor(packages), pm)

	if componentLib != nil && *componentLib == models.ComponentLibShadcn {
		installShadcn(ctx, &cfg, []string{"button", "toast"})
	}

	analytics.Notify(ctx, &cfg, "init", map[string]any{"packages": packages})
	return nil
}
