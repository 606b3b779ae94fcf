package font

import (
	"os"
	"path/filepath"
)

func getDefaultFontPaths() []string {
	var paths []string
	if windir := os.Getenv("WINDIR"); windir != "" {
		fontDir := filepath.Join(windir, "Fonts")
		if isDir(fontDir) {
			paths = append(paths, fontDir)
		}
	}
	if local := os.Getenv("LOCALAPPDATA"); local != "" {
		userFont := filepath.Join(local, "Microsoft", "Windows", "Fonts")
		if isDir(userFont) {
			paths = append(paths, userFont)
		}
	}
	return paths
}
