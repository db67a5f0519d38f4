package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasPackage(t *testing.T) {
	cfg := &Config{Packages: []PackageID{PackageTRPC, PackageResend}}
	assert.True(t, cfg.HasPackage(PackageTRPC))
	assert.False(t, cfg.HasPackage(PackageStripe))
}

func TestProvidersFor(t *testing.T) {
	assert.Contains(t, ProvidersFor(DBTypePg), ProviderPostgresJS)
	assert.Contains(t, ProvidersFor(DBTypeMySQL), ProviderPlanetScale)
	assert.Contains(t, ProvidersFor(DBTypeSQLite), ProviderTurso)
	assert.Nil(t, ProvidersFor(DBType("oracle")))
}

func TestPackagesByCategory(t *testing.T) {
	assert.Equal(t, []PackageID{PackageDrizzle, PackagePrisma}, PackagesByCategory(CategoryORM))
	assert.Equal(t, []PackageID{PackageTRPC, PackageResend, PackageStripe}, PackagesByCategory(CategoryMisc))
}

func TestChoices_EvaluatesPrerequisites(t *testing.T) {
	ids := PackagesByCategory(CategoryMisc)

	choices := Choices(ids, &Config{})
	require.Len(t, choices, 3)
	for _, c := range choices {
		if c.ID == PackageStripe {
			assert.NotEmpty(t, c.Disabled)
		} else {
			assert.Empty(t, c.Disabled)
		}
	}

	orm := ORMDrizzle
	auth := AuthNextAuth
	choices = Choices(ids, &Config{ORM: &orm, Auth: &auth})
	for _, c := range choices {
		assert.Empty(t, c.Disabled)
	}
}

func TestChoices_SkipsUnknownIDs(t *testing.T) {
	choices := Choices([]PackageID{"not-a-package", PackageTRPC}, nil)
	require.Len(t, choices, 1)
	assert.Equal(t, PackageTRPC, choices[0].ID)
}

func TestLocations_T3(t *testing.T) {
	loc := Locations(true)
	assert.Equal(t, "~", loc.Alias)
	assert.Equal(t, "server/api/routers", loc.APIRouterDir)
	assert.Equal(t, "root.ts", loc.RootRouterName)
	assert.Equal(t, "server/api/root.ts", loc.RootRouterPath)
}

func TestLocations_Regular(t *testing.T) {
	loc := Locations(false)
	assert.Equal(t, "@", loc.Alias)
	assert.Equal(t, "lib/server/routers", loc.APIRouterDir)
	assert.Equal(t, "_app.ts", loc.RootRouterName)
	assert.Equal(t, "lib/server/routers/_app.ts", loc.RootRouterPath)
}
