// Package config loads the optional lisgo.json project file from the
// working directory, falling back to $LISGO_PATH.
package config

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/lisgo-lang/lisgo/consts"
	"github.com/lisgo-lang/lisgo/logger"
)

const fileName = "lisgo.json"

var (
	// SidecarPackage is the package clause of generated files.
	SidecarPackage = "main"
	// ReplPrompt is the REPL input prompt.
	ReplPrompt = "> "
)

func init() {
	load()
}

func load() {
	paths := []string{fileName}
	if consts.LisgoPath != "" {
		paths = append(paths, filepath.Join(consts.LisgoPath, fileName))
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if v := gjson.GetBytes(data, "sidecar.package"); v.Exists() {
			SidecarPackage = v.String()
		}
		if v := gjson.GetBytes(data, "repl.prompt"); v.Exists() {
			ReplPrompt = v.String()
		}
		logger.I("[config] loaded %s", p)
		return
	}
}
