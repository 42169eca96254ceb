package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/urfave/cli.v1"

	"github.com/sierkje/letsorganize/src/pkg/hooks"
	"github.com/sierkje/letsorganize/src/pkg/infrastructure/fs"
	"github.com/sierkje/letsorganize/src/pkg/infrastructure/print"
	"github.com/sierkje/letsorganize/src/pkg/scaffold"
)

var postInstallFlags = []cli.Flag{
	cli.BoolFlag{
		Name:   "strict",
		Usage:  "exit non-zero when any scaffolding step fails",
		EnvVar: "LETSORGANIZE_STRICT",
	},
	cli.IntFlag{
		Name:  "retries",
		Value: -1,
		Usage: "extra attempts for transient filesystem errors, overrides the configuration file",
	},
}

func postInstall(c *cli.Context) error {
	env, err := getCommandEnv(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(env)
	if err != nil {
		return err
	}
	if c.Bool("strict") {
		cfg.Strict = true
	}
	if retries := c.Int("retries"); retries >= 0 {
		cfg.Retries = retries
	}

	ev := hooks.Event{IO: print.Console{}, FS: fs.OS{}}
	result, err := hooks.PostInstall(ev, hooks.Scaffold{
		Root:    env.Root,
		Layout:  cfg.Layout,
		Options: scaffold.Options{Retries: cfg.Retries},
		Strict:  cfg.Strict,
	})
	if result != nil {
		if env.Verbose {
			renderOutcomes(result)
		}
		print.Verb("Scaffolded", env.Root+":", len(result.Created()), "created,", len(result.Failures()), "failed")
	}
	return err
}

func renderOutcomes(result *scaffold.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Step", "Operation", "Path", "Mode", "Status"})
	for _, o := range result.Outcomes {
		t.AppendRow(table.Row{o.Step, o.Op, o.Path, o.Mode, o.Status})
	}
	t.Render()
}
