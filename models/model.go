package models

// DBType is the database engine choice.
type DBType string

// DBProvider is the concrete driver/hosting choice for a database engine.
type DBProvider string

// ORMType is the object-relational mapper choice.
type ORMType string

// AuthType is the authentication provider choice.
type AuthType string

// ComponentLibType is the component library choice.
type ComponentLibType string

// PMType is the enumerated package-manager preference.
type PMType string

// PackageID identifies one supported add-on package.
type PackageID string

const (
	DBTypePg     DBType = "pg"
	DBTypeMySQL  DBType = "mysql"
	DBTypeSQLite DBType = "sqlite"
)

const (
	ProviderPostgresJS    DBProvider = "postgresjs"
	ProviderNodePostgres  DBProvider = "node-postgres"
	ProviderNeon          DBProvider = "neon"
	ProviderVercelPg      DBProvider = "vercel-pg"
	ProviderSupabase      DBProvider = "supabase"
	ProviderAWS           DBProvider = "aws"
	ProviderPlanetScale   DBProvider = "planetscale"
	ProviderMySQL2        DBProvider = "mysql-2"
	ProviderBetterSQLite3 DBProvider = "better-sqlite3"
	ProviderTurso         DBProvider = "turso"
	ProviderBunSQLite     DBProvider = "bun-sqlite"
)

const (
	ORMDrizzle ORMType = "drizzle"
	ORMPrisma  ORMType = "prisma"
)

const (
	AuthNextAuth AuthType = "next-auth"
	AuthClerk    AuthType = "clerk"
	AuthLucia    AuthType = "lucia"
	AuthKinde    AuthType = "kinde"
)

const ComponentLibShadcn ComponentLibType = "shadcn-ui"

const (
	PMNpm  PMType = "npm"
	PMYarn PMType = "yarn"
	PMPnpm PMType = "pnpm"
	PMBun  PMType = "bun"
)

const (
	PackageDrizzle  PackageID = "drizzle"
	PackagePrisma   PackageID = "prisma"
	PackageTRPC     PackageID = "trpc"
	PackageNextAuth PackageID = "next-auth"
	PackageClerk    PackageID = "clerk"
	PackageLucia    PackageID = "lucia"
	PackageKinde    PackageID = "kinde"
	PackageShadcn   PackageID = "shadcn-ui"
	PackageResend   PackageID = "resend"
	PackageStripe   PackageID = "stripe"
)

// Config mirrors kirimase.config.json. Driver, provider, ORM, auth and the
// component library are single nullable choices; packages is a set of
// distinct identifiers stored as an ordered sequence. RootPath is derived on
// read and never persisted.
type Config struct {
	HasSrc         bool              `json:"hasSrc"`
	PackageManager PMType            `json:"preferredPackageManager"`
	T3             bool              `json:"t3"`
	Analytics      bool              `json:"analytics"`
	Packages       []PackageID       `json:"packages"`
	Driver         *DBType           `json:"driver"`
	Provider       *DBProvider       `json:"provider"`
	ORM            *ORMType          `json:"orm"`
	Auth           *AuthType         `json:"auth"`
	ComponentLib   *ComponentLibType `json:"componentLib"`

	RootPath string `json:"-"`
}

// HasPackage reports whether id is already recorded in the config.
func (c *Config) HasPackage(id PackageID) bool {
	for _, p := range c.Packages {
		if p == id {
			return true
		}
	}
	return false
}

// ProvidersFor lists the provider choices that belong to a database engine.
func ProvidersFor(driver DBType) []DBProvider {
	switch driver {
	case DBTypePg:
		return []DBProvider{ProviderPostgresJS, ProviderNodePostgres, ProviderNeon, ProviderVercelPg, ProviderSupabase, ProviderAWS}
	case DBTypeMySQL:
		return []DBProvider{ProviderPlanetScale, ProviderMySQL2}
	case DBTypeSQLite:
		return []DBProvider{ProviderBetterSQLite3, ProviderTurso, ProviderBunSQLite}
	}
	return nil
}
