package font

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
)

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

var fontPattern = regexp.MustCompile(`(?i).+\.(ttf|otf|ttc|otc)$`)

// 查找字体文件
func findFontFiles(fontsDirs []string, withSystemFontPath bool) ([]string, error) {
	if withSystemFontPath {
		fontsDirs = slices.Concat(fontsDirs, getDefaultFontPaths())
	}
	fontsPath := make([]string, 0, 10)
	for _, dir := range fontsDirs {
		if dir == "" {
			continue
		}
		filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil // 忽略错误
			}
			if !d.IsDir() && fontPattern.MatchString(d.Name()) {
				absPath, err := filepath.Abs(path)
				if err != nil {
					fontsPath = append(fontsPath, path)
				} else {
					fontsPath = append(fontsPath, absPath)
				}
			}
			return nil
		})
	}
	if len(fontsPath) == 0 {
		return nil, ErrNoFontFileFound
	}
	return fontsPath, nil
}

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

func abs[T Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
