package commands

import (
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/sierkje/letsorganize/src/config"
	"github.com/sierkje/letsorganize/src/pkg/infrastructure/fs"
	"github.com/sierkje/letsorganize/src/pkg/infrastructure/print"
)

type commandEnv struct {
	Root      string
	ConfigDir string
	Verbose   bool
}

func applyVerboseFlag(c *cli.Context) bool {
	verbose := c.GlobalBool("verbose") || c.Bool("verbose")
	if verbose {
		print.SetVerbose()
	}
	return verbose
}

func projectRoot(c *cli.Context) (string, error) {
	dir := c.String("dir")
	if dir == "" {
		dir = c.GlobalString("dir")
	}
	if dir == "" {
		dir = "."
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", errors.Wrapf(err, "failed to expand %s", dir)
	}
	return fs.MustAbs(expanded), nil
}

func getCommandEnv(c *cli.Context) (commandEnv, error) {
	verbose := applyVerboseFlag(c)
	root, err := projectRoot(c)
	if err != nil {
		return commandEnv{}, err
	}
	return commandEnv{Root: root, ConfigDir: fs.ConfigDir(), Verbose: verbose}, nil
}

func loadConfig(env commandEnv) (*config.Config, error) {
	cfg, err := config.Load(env.Root, env.ConfigDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load configuration for %s", env.Root)
	}
	return cfg, nil
}
