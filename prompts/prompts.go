// Package prompts gathers the user's stack choices interactively. Every ask
// function returns immediately when the value was already supplied through
// non-interactive options.
package prompts

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"

	"github.com/kirimase/kirimase/models"
)

func selectOne(message string, options []string) (string, error) {
	var choice string
	prompt := &survey.Select{Message: message, Options: options}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return choice, nil
}

// AskHasSrc asks whether the project keeps sources under src/.
func AskHasSrc(preset *bool) (bool, error) {
	if preset != nil {
		return *preset, nil
	}
	var hasSrc bool
	prompt := &survey.Confirm{Message: "Does your project use a src/ directory?", Default: true}
	if err := survey.AskOne(prompt, &hasSrc); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return hasSrc, nil
}

// AskPackageManager asks for the dependency-installation tool.
func AskPackageManager(preset models.PMType) (models.PMType, error) {
	if preset != "" {
		return preset, nil
	}
	choice, err := selectOne("Which package manager do you use?",
		[]string{string(models.PMNpm), string(models.PMYarn), string(models.PMPnpm), string(models.PMBun)})
	if err != nil {
		return "", err
	}
	return models.PMType(choice), nil
}

// AskDBType asks for the database engine.
func AskDBType(preset *models.DBType) (models.DBType, error) {
	if preset != nil {
		return *preset, nil
	}
	choice, err := selectOne("Which database would you like to use?",
		[]string{string(models.DBTypePg), string(models.DBTypeMySQL), string(models.DBTypeSQLite)})
	if err != nil {
		return "", err
	}
	return models.DBType(choice), nil
}

// FilterProviders drops providers that are incompatible with the chosen
// runtime: bun projects cannot use better-sqlite3, everything else cannot use
// bun's built-in sqlite.
func FilterProviders(driver models.DBType, pm models.PMType) []models.DBProvider {
	var filtered []models.DBProvider
	for _, p := range models.ProvidersFor(driver) {
		if pm == models.PMBun && p == models.ProviderBetterSQLite3 {
			continue
		}
		if pm != models.PMBun && p == models.ProviderBunSQLite {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// AskDBProvider asks for the provider, filtered by package-manager
// compatibility.
func AskDBProvider(preset *models.DBProvider, driver models.DBType, pm models.PMType) (models.DBProvider, error) {
	if preset != nil {
		return *preset, nil
	}
	providers := FilterProviders(driver, pm)
	options := make([]string, len(providers))
	for i, p := range providers {
		options[i] = string(p)
	}
	choice, err := selectOne(fmt.Sprintf("Which %s provider would you like to use?", driver), options)
	if err != nil {
		return "", err
	}
	return models.DBProvider(choice), nil
}

const noneOption = "None"

func selectFromCatalog(message string, cat models.PackageCategory, cfg *models.Config) (*models.PackageID, error) {
	choices := models.Choices(models.PackagesByCategory(cat), cfg)

	byName := make(map[string]models.PackageID, len(choices))
	options := make([]string, 0, len(choices)+1)
	for _, c := range choices {
		if c.Disabled != "" {
			color.Yellow("%s is unavailable: %s", c.Name, c.Disabled)
			continue
		}
		byName[c.Name] = c.ID
		options = append(options, c.Name)
	}
	options = append(options, noneOption)

	choice, err := selectOne(message, options)
	if err != nil {
		return nil, err
	}
	if choice == noneOption {
		return nil, nil
	}
	id := byName[choice]
	return &id, nil
}

// AskORM asks for the ORM, or none.
func AskORM(preset *models.ORMType, cfg *models.Config) (*models.ORMType, error) {
	if preset != nil {
		return preset, nil
	}
	id, err := selectFromCatalog("Which ORM would you like to use?", models.CategoryORM, cfg)
	if err != nil || id == nil {
		return nil, err
	}
	orm := models.ORMType(*id)
	return &orm, nil
}

// AskAuth asks for the authentication provider, or none.
func AskAuth(preset *models.AuthType, cfg *models.Config) (*models.AuthType, error) {
	if preset != nil {
		return preset, nil
	}
	id, err := selectFromCatalog("Which auth provider would you like to use?", models.CategoryAuth, cfg)
	if err != nil || id == nil {
		return nil, err
	}
	auth := models.AuthType(*id)
	return &auth, nil
}

// AskComponentLib asks for the component library, or none.
func AskComponentLib(preset *models.ComponentLibType, cfg *models.Config) (*models.ComponentLibType, error) {
	if preset != nil {
		return preset, nil
	}
	id, err := selectFromCatalog("Which component library would you like to use?", models.CategoryComponentLib, cfg)
	if err != nil || id == nil {
		return nil, err
	}
	lib := models.ComponentLibType(*id)
	return &lib, nil
}

// MiscChoices evaluates the miscellaneous-package catalog against the current
// config, excluding packages already installed. The installed set comes from
// the explicit existing list, or from the config's packages when that list is
// empty.
func MiscChoices(cfg *models.Config, existing []models.PackageID) []models.PackageChoice {
	installed := make(map[models.PackageID]bool)
	if len(existing) > 0 {
		for _, id := range existing {
			installed[id] = true
		}
	} else if cfg != nil {
		for _, id := range cfg.Packages {
			installed[id] = true
		}
	}

	var ids []models.PackageID
	for _, id := range models.PackagesByCategory(models.CategoryMisc) {
		if !installed[id] {
			ids = append(ids, id)
		}
	}
	return models.Choices(ids, cfg)
}

// AskMiscPackages asks for extra packages via a checkbox prompt. An empty
// filtered choice list logs an informational message and returns no packages
// instead of prompting.
func AskMiscPackages(preset []models.PackageID, cfg *models.Config, existing []models.PackageID) ([]models.PackageID, error) {
	if len(preset) > 0 {
		return preset, nil
	}

	choices := MiscChoices(cfg, existing)

	byName := make(map[string]models.PackageID, len(choices))
	options := make([]string, 0, len(choices))
	for _, c := range choices {
		if c.Disabled != "" {
			color.Yellow("%s is unavailable: %s", c.Name, c.Disabled)
			continue
		}
		byName[c.Name] = c.ID
		options = append(options, c.Name)
	}

	if len(options) == 0 {
		color.Cyan("No packages available to add.")
		return nil, nil
	}

	var selected []string
	prompt := &survey.MultiSelect{Message: "Which packages would you like to add?", Options: options}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}

	packages := make([]models.PackageID, 0, len(selected))
	for _, name := range selected {
		packages = append(packages, byName[name])
	}
	return packages, nil
}
