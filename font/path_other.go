//go:build !linux && !darwin && !windows

package font

func getDefaultFontPaths() []string {
	return nil
}
