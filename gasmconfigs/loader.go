package gasmconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/braingasm/cmds"
	"github.com/reusee/braingasm/configs"
	"github.com/reusee/braingasm/logs"
)

//go:embed schema.cue
var schema string

var configFlag = cmds.Collect[string]("-config", "extra config file, takes precedence over discovered ones")

var filenames = []string{
	"gasm.cue",
	".gasm.cue",
	"gasm.toml",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {
	paths := append([]string(nil), *configFlag...)

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(configDir, "braingasm"))
	}
	dirs = append(dirs, "/etc")

	paths = append(paths, discover(dirs)...)
	if len(paths) > 0 {
		logger.Debug("config files", "paths", paths)
	}

	return configs.NewLoader(paths, schema)
}

func discover(dirs []string) (paths []string) {
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
