package commands

import (
	"fmt"
	"runtime"

	"gopkg.in/urfave/cli.v1"

	"github.com/sierkje/letsorganize/src/pkg/infrastructure/print"
)

// Run builds the command line application and runs it against args.
func Run(args []string, version string) error {
	app := cli.NewApp()

	app.Authors = []cli.Author{
		{
			Name:  "sierkje",
			Email: "sierkje@users.noreply.github.com",
		},
	}
	app.Name = "letsorganize"
	app.Usage = "Install hooks for Let's Organize projects - a version gate before install and folder scaffolding after."
	app.Description = "Call `letsorganize pre-install` from the pre-install-cmd script and `letsorganize post-install` from the post-install-cmd script of composer.json."
	app.Version = version

	cli.VersionFlag = cli.BoolFlag{
		Name:  "appVersion, V, version",
		Usage: "letsorganize version",
	}

	globalFlags := []cli.Flag{
		cli.BoolFlag{
			Name:   "verbose",
			Usage:  "output all detailed information - useful for debugging",
			EnvVar: "LETSORGANIZE_VERBOSE",
		},
		cli.StringFlag{
			Name:   "dir",
			Value:  ".",
			Usage:  "root of the project - by default, uses the current directory",
			EnvVar: "LETSORGANIZE_ROOT",
		},
	}
	//nolint:lll
	app.Commands = []cli.Command{
		{
			Name:        "pre-install",
			Usage:       "letsorganize pre-install [--host-version version]",
			Description: "Refuses to continue when the package manager is older than the minimum version. Exits non-zero so the install is aborted.",
			Action:      preInstall,
			Flags:       append(globalFlags, preInstallFlags...),
		},
		{
			Name:        "post-install",
			Usage:       "letsorganize post-install [--strict] [--retries n]",
			Description: "Creates the default site folder, its settings files and the required folders of the project. Safe to run repeatedly.",
			Action:      postInstall,
			Flags:       append(globalFlags, postInstallFlags...),
		},
		{
			Name:        "layout",
			Usage:       "letsorganize layout",
			Description: "Lists every path post-install manages, the mode it gets and whether it exists yet.",
			Action:      layoutList,
			Flags:       globalFlags,
		},
		{
			Name:        "config",
			Usage:       "letsorganize config [--json]",
			Description: "Prints the effective configuration after merging the project file, the user file and the defaults.",
			Action:      configShow,
			Flags:       append(globalFlags, configShowFlags...),
		},
		{
			Name:        "init",
			Usage:       "letsorganize init",
			Description: "Asks a few questions and writes a `letsorganize.json`/`letsorganize.yaml` into the project root.",
			Action:      configInit,
			Flags:       append(globalFlags, configInitFlags...),
		},
		{
			Name:        "version",
			Description: "Show version number.",
			Action:      cli.VersionPrinter,
		},
		{
			Name:        "docs",
			Usage:       "letsorganize docs > documentation.md",
			Description: "Generate documentation in markdown format and print to standard out.",
			Action: func(c *cli.Context) error {
				docs := GenerateDocs(c.App)
				fmt.Print(docs)
				return nil
			},
		},
	}

	app.Flags = globalFlags
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("verbose") {
			print.SetVerbose()
			print.Verb("Verbose logging active")
		}
		if runtime.GOOS != "windows" {
			print.SetColoured()
		}
		return nil
	}

	return app.Run(args)
}
