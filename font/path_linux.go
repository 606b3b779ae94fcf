package font

import (
	"os"
	"path/filepath"
)

// android 也会使用这个文件
func getDefaultFontPaths() []string {
	var paths []string
	linuxPaths := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/system/fonts",
	}
	for _, p := range linuxPaths {
		if isDir(p) {
			paths = append(paths, p)
		}
	}
	if home := os.Getenv("HOME"); home != "" {
		for _, userFont := range []string{
			filepath.Join(home, ".local", "share", "fonts"),
			filepath.Join(home, ".fonts"),
		} {
			if isDir(userFont) {
				paths = append(paths, userFont)
			}
		}
	}
	return paths
}
