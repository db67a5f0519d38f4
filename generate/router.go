package generate

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/fatih/color"

	"github.com/kirimase/kirimase/models"
)

var rootRouterTemplate = template.Must(template.New("rootRouter").Parse(`import { createTRPCRouter } from "{{.Alias}}/lib/server/trpc";

export const appRouter = createTRPCRouter({});

export type AppRouter = typeof appRouter;
`))

// ScaffoldRootRouter writes the tRPC root router at the location the project
// convention dictates, unless it already exists.
func ScaffoldRootRouter(cfg *models.Config) error {
	loc := models.Locations(cfg.T3)

	var buf bytes.Buffer
	if err := rootRouterTemplate.Execute(&buf, loc); err != nil {
		return fmt.Errorf("failed to render root router template: %w", err)
	}

	if err := CreateFolder(filepath.Join(cfg.RootPath, filepath.FromSlash(loc.APIRouterDir))); err != nil {
		return err
	}

	path := filepath.Join(cfg.RootPath, filepath.FromSlash(loc.RootRouterPath))
	if _, err := WriteIfAbsent(path, buf.Bytes()); err != nil {
		return err
	}

	color.Green("Successfully generated root router at %s", path)
	return nil
}
