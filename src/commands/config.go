package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"
)

var configShowFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "json",
		Usage: "print JSON instead of YAML",
	},
}

func configShow(c *cli.Context) error {
	env, err := getCommandEnv(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(env)
	if err != nil {
		return err
	}

	var out []byte
	if c.Bool("json") {
		out, err = json.MarshalIndent(cfg, "", "    ")
		out = append(out, '\n')
	} else {
		out, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return errors.Wrap(err, "failed to encode configuration")
	}

	fmt.Print(string(out))
	return nil
}
