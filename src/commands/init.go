package commands

import (
	"github.com/Masterminds/semver"
	"github.com/pkg/errors"
	"gopkg.in/AlecAivazis/survey.v1"
	"gopkg.in/urfave/cli.v1"

	"github.com/sierkje/letsorganize/src/config"
	"github.com/sierkje/letsorganize/src/pkg/infrastructure/fs"
	"github.com/sierkje/letsorganize/src/pkg/infrastructure/print"
)

var configInitFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "force",
		Usage: "overwrite an existing configuration file",
	},
}

type initAnswers struct {
	Format            string
	MinimumVersion    string
	WebRoot           string
	DefaultSiteFolder string
	Strict            bool
}

func configInit(c *cli.Context) error {
	env, err := getCommandEnv(c)
	if err != nil {
		return err
	}

	for _, file := range config.ProjectFiles(env.Root) {
		if fs.Exists(file) && !c.Bool("force") {
			return errors.Errorf("%s already exists, pass --force to replace it", file)
		}
	}

	defaults := config.Default()
	questions := []*survey.Question{
		{
			Name: "Format",
			Prompt: &survey.Select{
				Message: "Preferred configuration format",
				Options: []string{"yaml", "json"},
			},
			Validate: survey.Required,
		},
		{
			Name:     "MinimumVersion",
			Prompt:   &survey.Input{Message: "Minimum " + defaults.Tool + " version", Default: defaults.MinimumVersion},
			Validate: validateVersion,
		},
		{
			Name:     "WebRoot",
			Prompt:   &survey.Input{Message: "Web root, relative to the project", Default: defaults.Layout.Paths.WebRoot},
			Validate: survey.Required,
		},
		{
			Name:     "DefaultSiteFolder",
			Prompt:   &survey.Input{Message: "Default site folder, relative to the project", Default: defaults.Layout.Paths.DefaultSiteFolder},
			Validate: survey.Required,
		},
		{
			Name:   "Strict",
			Prompt: &survey.Confirm{Message: "Fail the install when scaffolding fails?", Default: false},
		},
	}

	answers := initAnswers{}
	err = survey.Ask(questions, &answers)
	if err != nil {
		return err
	}

	path, err := config.WriteConfig(env.Root, answers.apply(defaults), answers.Format)
	if err != nil {
		return err
	}

	print.Info("Wrote", path)
	return nil
}

func (a initAnswers) apply(cfg config.Config) config.Config {
	cfg.MinimumVersion = a.MinimumVersion
	cfg.Strict = a.Strict
	cfg.Layout.Paths.WebRoot = a.WebRoot
	cfg.Layout.Paths.DefaultSiteFolder = a.DefaultSiteFolder
	return cfg
}

func validateVersion(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return errors.New("expected a version string")
	}
	if _, err := semver.NewVersion(s); err != nil {
		return errors.Wrapf(err, "%q is not a semantic version", s)
	}
	return nil
}
