package commands

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/sierkje/letsorganize/src/pkg/hooks"
	"github.com/sierkje/letsorganize/src/pkg/infrastructure/print"
)

var preInstallFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "host-version",
		Usage:  "version the package manager reports - by default, asks the binary given by --host-binary",
		EnvVar: "LETSORGANIZE_HOST_VERSION",
	},
	cli.StringFlag{
		Name:   "branch-alias",
		Usage:  "branch alias the package manager reports, used when --host-version is a git revision",
		EnvVar: "LETSORGANIZE_HOST_BRANCH_ALIAS",
	},
	cli.StringFlag{
		Name:   "host-binary",
		Value:  "composer",
		Usage:  "package manager binary to ask for its version",
		EnvVar: "COMPOSER_BINARY,LETSORGANIZE_HOST_BINARY",
	},
	cli.DurationFlag{
		Name:  "timeout",
		Value: 30 * time.Second,
		Usage: "how long to wait for --host-binary to report its version",
	},
	cli.StringFlag{
		Name:  "minimum",
		Usage: "oldest version allowed, overrides the configuration file",
	},
}

func preInstall(c *cli.Context) error {
	env, err := getCommandEnv(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(env)
	if err != nil {
		return err
	}
	if minimum := c.String("minimum"); minimum != "" {
		cfg.MinimumVersion = minimum
	}

	host := hooks.Host{
		Name:        cfg.Tool,
		Version:     c.String("host-version"),
		BranchAlias: c.String("branch-alias"),
	}
	if host.Version == "" {
		ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
		defer cancel()

		host, err = hooks.DetectHost(ctx, cfg.Tool, c.String("host-binary"))
		if err != nil {
			return errors.Wrap(err, "failed to determine the package manager version, pass it with --host-version")
		}
	}
	print.Verb("Checking", host.Name, "version", host.Version, "against minimum", cfg.MinimumVersion)

	result, err := hooks.PreInstall(hooks.Event{Host: host, IO: print.Console{}}, hooks.Gate{
		Minimum: cfg.MinimumVersion,
		Product: cfg.Product,
	})
	if err != nil {
		return err
	}

	print.Verb("Version check:", result.Status, "for", result.Version)
	return nil
}
