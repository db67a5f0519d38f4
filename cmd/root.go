package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kirimase/kirimase/analytics"
	"github.com/kirimase/kirimase/config"
	"github.com/kirimase/kirimase/generate"
	"github.com/kirimase/kirimase/models"
	"github.com/kirimase/kirimase/project"
)

type App struct {
	// This struct can be expanded later with shared dependencies
}

func newInitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a Next.js project: choose a database, ORM, auth provider, component library and packages",
		RunE:  app.handleInit,
	}
	cmd.Flags().Bool("has-src", false, "project keeps sources under src/ (prompted when omitted)")
	cmd.Flags().String("pm", "", "package manager (npm, yarn, pnpm, bun)")
	cmd.Flags().String("db", "", "database engine (pg, mysql, sqlite)")
	cmd.Flags().String("db-provider", "", "database provider")
	cmd.Flags().String("orm", "", "ORM (drizzle, prisma)")
	cmd.Flags().String("auth", "", "auth provider (next-auth, clerk, lucia, kinde)")
	cmd.Flags().String("component-lib", "", "component library (shadcn-ui)")
	cmd.Flags().StringSlice("packages", nil, "extra packages to install")
	cmd.Flags().Bool("t3", false, "follow t3-stack path conventions")
	cmd.Flags().Bool("no-analytics", false, "opt out of anonymized usage events")
	return cmd
}

func newAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add packages to an initialized project",
		RunE:  app.handleAdd,
	}
	cmd.Flags().StringSlice("packages", nil, "packages to add without prompting")
	cmd.Flags().StringSlice("existing", nil, "treat these packages as already installed")
	return cmd
}

func newGenerateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate component <name>",
		Short: "Generate a template file at the project's conventional path",
		Args:  cobra.ExactArgs(2),
		RunE:  app.handleGenerate,
	}
	return cmd
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "kirimase",
		Short:        "CLI for scaffolding Next.js projects",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newInitCmd(app),
		newAddCmd(app),
		newGenerateCmd(app),
	)
	return cmd
}

func boolFlagPtr(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func parsePM(v string) (models.PMType, error) {
	switch models.PMType(v) {
	case "", models.PMNpm, models.PMYarn, models.PMPnpm, models.PMBun:
		return models.PMType(v), nil
	}
	return "", fmt.Errorf("unsupported package manager: %s", v)
}

func parseDB(v string) (*models.DBType, error) {
	if v == "" {
		return nil, nil
	}
	switch models.DBType(v) {
	case models.DBTypePg, models.DBTypeMySQL, models.DBTypeSQLite:
		driver := models.DBType(v)
		return &driver, nil
	}
	return nil, fmt.Errorf("unsupported database: %s", v)
}

func parsePackageIDs(values []string) []models.PackageID {
	var ids []models.PackageID
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			ids = append(ids, models.PackageID(v))
		}
	}
	return ids
}

func (a *App) handleInit(cmd *cobra.Command, args []string) error {
	pmFlag, _ := cmd.Flags().GetString("pm")
	pm, err := parsePM(pmFlag)
	if err != nil {
		return err
	}

	dbFlag, _ := cmd.Flags().GetString("db")
	driver, err := parseDB(dbFlag)
	if err != nil {
		return err
	}

	opts := &project.InitOptions{
		HasSrc:         boolFlagPtr(cmd, "has-src"),
		PackageManager: pm,
		DBType:         driver,
	}

	if v, _ := cmd.Flags().GetString("db-provider"); v != "" {
		provider := models.DBProvider(v)
		opts.DBProvider = &provider
	}
	if v, _ := cmd.Flags().GetString("orm"); v != "" {
		orm := models.ORMType(v)
		opts.ORM = &orm
	}
	if v, _ := cmd.Flags().GetString("auth"); v != "" {
		auth := models.AuthType(v)
		opts.Auth = &auth
	}
	if v, _ := cmd.Flags().GetString("component-lib"); v != "" {
		lib := models.ComponentLibType(v)
		opts.ComponentLib = &lib
	}
	packages, _ := cmd.Flags().GetStringSlice("packages")
	opts.Packages = parsePackageIDs(packages)
	opts.T3, _ = cmd.Flags().GetBool("t3")
	opts.NoAnalytics, _ = cmd.Flags().GetBool("no-analytics")

	return project.Init(cmd.Context(), opts)
}

func (a *App) handleAdd(cmd *cobra.Command, args []string) error {
	packages, _ := cmd.Flags().GetStringSlice("packages")
	existing, _ := cmd.Flags().GetStringSlice("existing")

	opts := &project.AddOptions{
		Packages: parsePackageIDs(packages),
		Existing: parsePackageIDs(existing),
	}
	return project.Add(cmd.Context(), opts)
}

func (a *App) handleGenerate(cmd *cobra.Command, args []string) error {
	if args[0] != "component" {
		return fmt.Errorf("unknown generator: %s", args[0])
	}

	cfg, err := config.Read()
	if err != nil {
		return err
	}
	if cfg == nil {
		return fmt.Errorf("no %s found, run `kirimase init` first", config.FileName)
	}

	if err := generate.ScaffoldComponent(cfg, args[1]); err != nil {
		return err
	}

	analytics.Notify(cmd.Context(), cfg, "generate", map[string]any{"generator": args[0]})
	return nil
}

// Execute initializes and runs the root command. It is the single entry point
// for the command-line interface.
func Execute() {
	app := &App{}
	rootCmd := newRootCmd(app)
	err := rootCmd.Execute()

	// Give fire-and-forget analytics events a chance to leave.
	analytics.Wait(500 * time.Millisecond)

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
