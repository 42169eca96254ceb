package commands

import (
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/urfave/cli.v1"

	"github.com/sierkje/letsorganize/src/pkg/infrastructure/fs"
	"github.com/sierkje/letsorganize/src/pkg/scaffold"
)

type plannedPath struct {
	Role string
	Path string
	Mode fs.Mode
}

// plan lists the paths post-install touches, in the order it touches them.
func plan(layout scaffold.Layout) []plannedPath {
	site := layout.Paths.DefaultSiteFolder
	paths := []plannedPath{{"site folder", site, layout.Modes.SiteFolderCreate}}
	for _, pair := range layout.Files {
		paths = append(paths, plannedPath{
			Role: "from " + pair.Origin,
			Path: filepath.Join(site, pair.Target),
			Mode: layout.Modes.Template,
		})
	}
	paths = append(paths, plannedPath{"site folder (locked)", site, layout.Modes.SiteFolderLock})
	for _, folder := range layout.Folders {
		paths = append(paths, plannedPath{"required folder", folder.Path, folder.Mode})
	}
	return paths
}

func layoutList(c *cli.Context) error {
	env, err := getCommandEnv(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(env)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Role", "Path", "Mode", "Present"})
	for _, p := range plan(cfg.Layout.Resolve(env.Root)) {
		present := "no"
		if fs.Exists(p.Path) {
			present = "yes"
		}
		t.AppendRow(table.Row{p.Role, fs.Rel(env.Root, p.Path), p.Mode, present})
	}
	t.Render()

	return nil
}
