package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config", "load a config file, may be repeated")

var filenames = []string{
	"bf.cue",
	".bf.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	// explicit files take precedence
	paths := append([]string(nil), *configFiles...)

	if mode == modes.ModeProduction {
		paths = append(paths, searchPaths()...)
	}

	loader := configs.NewLoader(paths, schema)
	loaded, err := loader.Paths()
	if err != nil {
		logger.Error("load config files",
			"paths", paths,
			"error", err,
		)
	} else if len(loaded) > 0 {
		logger.Info("config files loaded",
			"paths", loaded,
		)
	}

	return loader
}

func searchPaths() (paths []string) {
	var dirs []string

	// working directory
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}

	// user config dir
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}

	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
