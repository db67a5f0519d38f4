package models

// PackageCategory groups catalog entries per prompt.
type PackageCategory string

const (
	CategoryORM          PackageCategory = "orm"
	CategoryAuth         PackageCategory = "auth"
	CategoryComponentLib PackageCategory = "componentLib"
	CategoryMisc         PackageCategory = "misc"
)

// PackageChoice is one entry presented by a prompt: a display name, the
// internal identifier, and an optional reason the entry is greyed out.
type PackageChoice struct {
	Name     string
	ID       PackageID
	Disabled string
}

// PackageMeta is the catalog record for one supported package. Requires is a
// prerequisite predicate evaluated once per prompt invocation; a non-empty
// return value disables the entry with that reason.
type PackageMeta struct {
	Name     string
	Category PackageCategory
	Deps     []string
	DevDeps  []string
	Requires func(cfg *Config) string
}

var catalog = map[PackageID]PackageMeta{
	PackageDrizzle: {
		Name:     "Drizzle",
		Category: CategoryORM,
		Deps:     []string{"drizzle-orm", "drizzle-zod", "zod"},
		DevDeps:  []string{"drizzle-kit"},
	},
	PackagePrisma: {
		Name:     "Prisma",
		Category: CategoryORM,
		Deps:     []string{"@prisma/client", "zod"},
		DevDeps:  []string{"prisma"},
	},
	PackageNextAuth: {
		Name:     "Auth.js (NextAuth)",
		Category: CategoryAuth,
		Deps:     []string{"next-auth", "@auth/core"},
	},
	PackageClerk: {
		Name:     "Clerk",
		Category: CategoryAuth,
		Deps:     []string{"@clerk/nextjs"},
	},
	PackageLucia: {
		Name:     "Lucia",
		Category: CategoryAuth,
		Deps:     []string{"lucia", "oslo"},
	},
	PackageKinde: {
		Name:     "Kinde",
		Category: CategoryAuth,
		Deps:     []string{"@kinde-oss/kinde-auth-nextjs"},
	},
	PackageShadcn: {
		Name:     "Shadcn UI",
		Category: CategoryComponentLib,
		Deps:     []string{"class-variance-authority", "clsx", "tailwind-merge", "lucide-react"},
		DevDeps:  []string{"tailwindcss-animate"},
	},
	PackageTRPC: {
		Name:     "tRPC",
		Category: CategoryMisc,
		Deps:     []string{"@trpc/client", "@trpc/server", "@trpc/react-query", "@tanstack/react-query", "superjson"},
	},
	PackageResend: {
		Name:     "Resend",
		Category: CategoryMisc,
		Deps:     []string{"resend"},
	},
	PackageStripe: {
		Name:     "Stripe",
		Category: CategoryMisc,
		Deps:     []string{"stripe", "@stripe/stripe-js"},
		Requires: func(cfg *Config) string {
			if cfg == nil || cfg.ORM == nil || cfg.Auth == nil {
				return "requires an ORM and an auth provider"
			}
			return ""
		},
	},
}

// Lookup returns the catalog record for id.
func Lookup(id PackageID) (PackageMeta, bool) {
	meta, ok := catalog[id]
	return meta, ok
}

// PackagesByCategory lists catalog identifiers in a category, in a stable
// presentation order.
func PackagesByCategory(cat PackageCategory) []PackageID {
	order := []PackageID{
		PackageDrizzle, PackagePrisma,
		PackageNextAuth, PackageClerk, PackageLucia, PackageKinde,
		PackageShadcn,
		PackageTRPC, PackageResend, PackageStripe,
	}
	var ids []PackageID
	for _, id := range order {
		if catalog[id].Category == cat {
			ids = append(ids, id)
		}
	}
	return ids
}

// Choices evaluates catalog entries against the current config, producing
// prompt choices with disabled reasons filled in.
func Choices(ids []PackageID, cfg *Config) []PackageChoice {
	choices := make([]PackageChoice, 0, len(ids))
	for _, id := range ids {
		meta, ok := catalog[id]
		if !ok {
			continue
		}
		choice := PackageChoice{Name: meta.Name, ID: id}
		if meta.Requires != nil {
			choice.Disabled = meta.Requires(cfg)
		}
		choices = append(choices, choice)
	}
	return choices
}
