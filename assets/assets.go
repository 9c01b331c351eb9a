package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/automoto/wallhop/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// WorldFile is the Tiled world listing the bundled levels.
const WorldFile = "levels/wallhop.world"

// LevelFS returns the bundled level files, or the directory dir when it is
// not empty.
func LevelFS(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return assetFS
}

// LoadWorld loads the levels found in fsys. A .world file is preferred; a
// directory of .tmx files is loaded in name order otherwise.
func LoadWorld(fsys fs.FS) (*leveldata.World, error) {
	worldPath, err := findWorldFile(fsys)
	if err != nil {
		return nil, err
	}
	if worldPath != "" {
		return leveldata.LoadWorld(fsys, worldPath)
	}

	levelsDir := "."
	if _, err := fs.Stat(fsys, "levels"); err == nil {
		levelsDir = "levels"
	}
	return leveldata.LoadAllLevels(fsys, levelsDir)
}

func findWorldFile(fsys fs.FS) (string, error) {
	if _, err := fs.Stat(fsys, WorldFile); err == nil {
		return WorldFile, nil
	}
	for _, pattern := range []string{"*.world", "levels/*.world"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return "", fmt.Errorf("find world file: %w", err)
		}
		if len(matches) > 0 {
			return path.Clean(matches[0]), nil
		}
	}
	return "", nil
}
