package models

// FileLocations holds the path and alias conventions that differ between
// t3-style projects and regular ones. Always recomputed from the t3 flag,
// never cached.
type FileLocations struct {
	Alias          string
	APIRouterDir   string
	RootRouterName string
	RootRouterPath string
}

// Locations derives the file conventions for a project.
func Locations(t3 bool) FileLocations {
	if t3 {
		return FileLocations{
			Alias:          "~",
			APIRouterDir:   "server/api/routers",
			RootRouterName: "root.ts",
			RootRouterPath: "server/api/root.ts",
		}
	}
	return FileLocations{
		Alias:          "@",
		APIRouterDir:   "lib/server/routers",
		RootRouterName: "_app.ts",
		RootRouterPath: "lib/server/routers/_app.ts",
	}
}
