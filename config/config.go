// Package config persists the scaffolding choices to kirimase.config.json in
// the project root. The file is user-owned: the tool creates and merges into
// it but never deletes it.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kirimase/kirimase/models"
)

// FileName is the fixed config path, relative to the current working
// directory.
const FileName = "kirimase.config.json"

// Read loads the config from the project root. It returns (nil, nil) when the
// file does not exist. Malformed JSON propagates as an error. The returned
// config carries the derived RootPath ("src/" when hasSrc, else "").
func Read() (*models.Config, error) {
	data, err := os.ReadFile(FileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	cfg.RootPath = RootPath(cfg.HasSrc)
	return &cfg, nil
}

// RootPath derives the source-root prefix applied to generated file paths.
func RootPath(hasSrc bool) string {
	if hasSrc {
		return "src/"
	}
	return ""
}

// Create writes the full config as pretty-printed JSON, creating parent
// directories as needed and overwriting any existing file.
func Create(cfg models.Config) error {
	if err := write(cfg); err != nil {
		return err
	}
	log.Printf("Created %s", FileName)
	return nil
}

// Patch is the typed merge input for Update. Set fields win over the stored
// config; Packages is replaced wholesale when non-nil, never merged.
type Patch struct {
	HasSrc         *bool
	PackageManager *models.PMType
	T3             *bool
	Analytics      *bool
	Packages       []models.PackageID
	Driver         *models.DBType
	Provider       *models.DBProvider
	ORM            *models.ORMType
	Auth           *models.AuthType
	ComponentLib   *models.ComponentLibType
}

func merge(cfg models.Config, patch Patch) models.Config {
	if patch.HasSrc != nil {
		cfg.HasSrc = *patch.HasSrc
	}
	if patch.PackageManager != nil {
		cfg.PackageManager = *patch.PackageManager
	}
	if patch.T3 != nil {
		cfg.T3 = *patch.T3
	}
	if patch.Analytics != nil {
		cfg.Analytics = *patch.Analytics
	}
	if patch.Packages != nil {
		cfg.Packages = patch.Packages
	}
	if patch.Driver != nil {
		cfg.Driver = patch.Driver
	}
	if patch.Provider != nil {
		cfg.Provider = patch.Provider
	}
	if patch.ORM != nil {
		cfg.ORM = patch.ORM
	}
	if patch.Auth != nil {
		cfg.Auth = patch.Auth
	}
	if patch.ComponentLib != nil {
		cfg.ComponentLib = patch.ComponentLib
	}
	return cfg
}

// Update shallow-merges patch over the stored config and writes the result
// back, without the success log used by Create. It is an error to update a
// project that has no config yet.
func Update(patch Patch) error {
	cfg, err := Read()
	if err != nil {
		return err
	}
	if cfg == nil {
		return fmt.Errorf("no %s found, run init first", FileName)
	}
	return write(merge(*cfg, patch))
}

// AddPackage appends one identifier to the packages array, preserving order
// and skipping identifiers already present. A config written before the
// packages field existed is treated as having an empty list.
func AddPackage(id models.PackageID) error {
	cfg, err := Read()
	if err != nil {
		return err
	}
	if cfg == nil {
		return fmt.Errorf("no %s found, run init first", FileName)
	}
	if cfg.HasPackage(id) {
		return nil
	}
	packages := append(cfg.Packages, id)
	return Update(Patch{Packages: packages})
}

// Backfill derives absent orm/auth fields from the packages array. It keeps
// configs written by older releases readable without a version field.
func Backfill() error {
	cfg, err := Read()
	if err != nil {
		return err
	}
	if cfg == nil {
		return nil
	}

	var patch Patch
	if cfg.ORM == nil {
		for _, id := range []models.PackageID{models.PackageDrizzle, models.PackagePrisma} {
			if cfg.HasPackage(id) {
				orm := models.ORMType(id)
				patch.ORM = &orm
				break
			}
		}
	}
	if cfg.Auth == nil {
		for _, id := range []models.PackageID{models.PackageNextAuth, models.PackageClerk, models.PackageLucia, models.PackageKinde} {
			if cfg.HasPackage(id) {
				auth := models.AuthType(id)
				patch.Auth = &auth
				break
			}
		}
	}

	if patch.ORM == nil && patch.Auth == nil {
		return nil
	}
	return Update(patch)
}

func write(cfg models.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if dir := filepath.Dir(FileName); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(FileName, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return nil
}
