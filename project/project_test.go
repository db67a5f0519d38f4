package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirimase/kirimase/config"
	"github.com/kirimase/kirimase/installer"
	"github.com/kirimase/kirimase/models"
)

// stubInstalls swaps the install seams for recorders so the flows run without
// shelling out to a package manager.
func stubInstalls(t *testing.T) (*installer.Dependencies, *[][]string) {
	t.Helper()
	var deps installer.Dependencies
	var shadcn [][]string
	origDeps, origShadcn := installDeps, installShadcn
	installDeps = func(ctx context.Context, d installer.Dependencies, pm models.PMType) {
		deps = d
	}
	installShadcn = func(ctx context.Context, cfg *models.Config, names []string) {
		shadcn = append(shadcn, names)
	}
	t.Cleanup(func() {
		installDeps, installShadcn = origDeps, origShadcn
		installer.StopProgress()
	})
	return &deps, &shadcn
}

func TestDependenciesFor(t *testing.T) {
	deps := dependenciesFor([]models.PackageID{models.PackageDrizzle, models.PackageResend})

	assert.Contains(t, deps.Regular, "drizzle-orm")
	assert.Contains(t, deps.Regular, "resend")
	assert.Contains(t, deps.Dev, "drizzle-kit")
}

func TestDependenciesFor_UnknownID(t *testing.T) {
	deps := dependenciesFor([]models.PackageID{"not-a-package"})
	assert.Empty(t, deps.Regular)
	assert.Empty(t, deps.Dev)
}

func TestInit_RefusesExistingConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, config.Create(models.Config{PackageManager: models.PMNpm}))

	err := Init(context.Background(), &InitOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.FileName)
}

func TestAdd_RequiresConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	err := Add(context.Background(), &AddOptions{Packages: []models.PackageID{models.PackageTRPC}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init")
}

func TestAdd_InstallsRecordsAndScaffolds(t *testing.T) {
	t.Chdir(t.TempDir())
	deps, shadcn := stubInstalls(t)

	lib := models.ComponentLibShadcn
	require.NoError(t, config.Create(models.Config{
		HasSrc:         true,
		PackageManager: models.PMNpm,
		ComponentLib:   &lib,
	}))

	err := Add(context.Background(), &AddOptions{Packages: []models.PackageID{models.PackageTRPC}})
	require.NoError(t, err)

	cfg, err := config.Read()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.HasPackage(models.PackageTRPC))

	assert.Contains(t, deps.Regular, "@trpc/server")

	// A shadcn project gets its component set refreshed on add.
	require.Len(t, *shadcn, 1)
	assert.Equal(t, []string{"button", "toast"}, (*shadcn)[0])

	_, err = os.Stat(filepath.Join("src", "lib", "server", "routers", "_app.ts"))
	assert.NoError(t, err)
}

func TestAdd_SkipsComponentsWithoutLibrary(t *testing.T) {
	t.Chdir(t.TempDir())
	_, shadcn := stubInstalls(t)

	require.NoError(t, config.Create(models.Config{PackageManager: models.PMNpm}))

	err := Add(context.Background(), &AddOptions{Packages: []models.PackageID{models.PackageResend}})
	require.NoError(t, err)

	cfg, err := config.Read()
	require.NoError(t, err)
	assert.True(t, cfg.HasPackage(models.PackageResend))
	assert.Empty(t, *shadcn)
}
